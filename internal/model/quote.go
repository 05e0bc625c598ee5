package model

// Measurement units recognized on area line items.
const (
	UnitSqft       = "sqft"
	UnitLinearFoot = "linear_foot"
	UnitCount      = "unit"
	UnitHour       = "hour"
)

// Job scopes for whole-home quotes.
const (
	ScopeInterior = "interior"
	ScopeExterior = "exterior"
	ScopeBoth     = "both"
)

// LineItem is a single measured surface inside an area. Unselected items are
// carried on the quote but excluded from every calculation.
type LineItem struct {
	CategoryName    string  `json:"categoryName"`
	Quantity        float64 `json:"quantity"`
	MeasurementUnit string  `json:"measurementUnit"`
	Selected        bool    `json:"selected"`
}

// Area is a named group of line items, e.g. "Living Room".
type Area struct {
	Name  string     `json:"name"`
	Items []LineItem `json:"items"`
}

// FlatRateItems holds per-scope unit counts keyed by item type,
// e.g. {"interior": {"doors": 3, "mediumRooms": 2}}.
type FlatRateItems struct {
	Interior map[string]int `json:"interior,omitempty"`
	Exterior map[string]int `json:"exterior,omitempty"`
}

// Empty reports whether no counts are present in either scope.
func (f FlatRateItems) Empty() bool {
	return len(f.Interior) == 0 && len(f.Exterior) == 0
}

// Measurements is a quote's measurement data. Exactly one shape is active at
// a time, determined by the quote's assigned pricing scheme: HomeSqft+JobScope
// for turnkey, Areas for rate-based and production-based, FlatRateItems for
// flat-rate-unit. Inactive shapes are simply left zero.
type Measurements struct {
	HomeSqft      float64       `json:"homeSqft,omitempty"`
	JobScope      string        `json:"jobScope,omitempty"`
	Areas         []Area        `json:"areas,omitempty"`
	FlatRateItems FlatRateItems `json:"flatRateItems,omitempty"`
}

// QuoteData is the full migratable quote record: measurements, scheme-specific
// attributes, and the last computed pricing output.
type QuoteData struct {
	Measurements

	PropertyCondition string `json:"propertyCondition,omitempty"`
	PaintersOnSite    int    `json:"paintersOnSite,omitempty"`

	Subtotal      float64            `json:"subtotal"`
	LaborTotal    float64            `json:"laborTotal"`
	MaterialTotal float64            `json:"materialTotal"`
	Total         float64            `json:"total"`
	Breakdown     []LineContribution `json:"breakdown,omitempty"`
}
