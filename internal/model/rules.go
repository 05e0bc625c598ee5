package model

// Rules is the scheme's model-specific parameter bag as stored on a
// PricingScheme record. Optional numeric fields are pointers so that an
// absent field can be told apart from an explicit zero; the pricing engine
// fills every absent field from its fixed defaults before calculating.
type Rules struct {
	IncludeMaterials  *bool    `json:"includeMaterials,omitempty"`
	Coverage          *float64 `json:"coverage,omitempty"`
	ApplicationMethod string   `json:"applicationMethod,omitempty"`
	Coats             *float64 `json:"coats,omitempty"`
	CostPerGallon     *float64 `json:"costPerGallon,omitempty"`

	// Turnkey.
	TurnkeyRate  *float64 `json:"turnkeyRate,omitempty"`
	InteriorRate *float64 `json:"interiorRate,omitempty"`
	ExteriorRate *float64 `json:"exteriorRate,omitempty"`

	// Rate-based square foot.
	LaborRates *LaborRates `json:"laborRates,omitempty"`

	// Production-based.
	ProductionRates *ProductionRates `json:"productionRates,omitempty"`
	HourlyLaborRate *float64         `json:"hourlyLaborRate,omitempty"`

	// Flat rate unit.
	UnitPrices *UnitPrices `json:"unitPrices,omitempty"`
}

// LaborRates are per-category direct labor rates for the rate-based model.
type LaborRates struct {
	Walls    *float64 `json:"walls,omitempty"`    // per sqft
	Ceilings *float64 `json:"ceilings,omitempty"` // per sqft
	Trim     *float64 `json:"trim,omitempty"`     // per linear foot
	Doors    *float64 `json:"doors,omitempty"`    // per unit
	Cabinets *float64 `json:"cabinets,omitempty"` // per unit
}

// ProductionRates are per-category throughput rates (units per hour) for the
// production-based model.
type ProductionRates struct {
	Walls    *float64 `json:"walls,omitempty"`
	Ceilings *float64 `json:"ceilings,omitempty"`
	Trim     *float64 `json:"trim,omitempty"`
}

// UnitPrices are flat per-unit prices for the flat-rate model.
type UnitPrices struct {
	Door       *float64 `json:"door,omitempty"`
	Window     *float64 `json:"window,omitempty"`
	SmallRoom  *float64 `json:"smallRoom,omitempty"`
	MediumRoom *float64 `json:"mediumRoom,omitempty"`
	LargeRoom  *float64 `json:"largeRoom,omitempty"`
}

// Merge returns a copy of r with every absent field filled from overlay.
// Fields present on r always win; overlay supplies contractor-level defaults
// resolved by the rate registry.
func (r Rules) Merge(overlay Rules) Rules {
	out := r
	if out.IncludeMaterials == nil {
		out.IncludeMaterials = overlay.IncludeMaterials
	}
	if out.Coverage == nil {
		out.Coverage = overlay.Coverage
	}
	if out.ApplicationMethod == "" {
		out.ApplicationMethod = overlay.ApplicationMethod
	}
	if out.Coats == nil {
		out.Coats = overlay.Coats
	}
	if out.CostPerGallon == nil {
		out.CostPerGallon = overlay.CostPerGallon
	}
	if out.TurnkeyRate == nil {
		out.TurnkeyRate = overlay.TurnkeyRate
	}
	if out.InteriorRate == nil {
		out.InteriorRate = overlay.InteriorRate
	}
	if out.ExteriorRate == nil {
		out.ExteriorRate = overlay.ExteriorRate
	}
	if out.LaborRates == nil {
		out.LaborRates = overlay.LaborRates
	}
	if out.ProductionRates == nil {
		out.ProductionRates = overlay.ProductionRates
	}
	if out.HourlyLaborRate == nil {
		out.HourlyLaborRate = overlay.HourlyLaborRate
	}
	if out.UnitPrices == nil {
		out.UnitPrices = overlay.UnitPrices
	}
	return out
}
