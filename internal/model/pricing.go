package model

// LineContribution records how one area line item (or one whole-home or
// flat-rate entry) contributed to the base labor cost.
type LineContribution struct {
	AreaName     string  `json:"areaName,omitempty"`
	CategoryName string  `json:"categoryName"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit,omitempty"`
	Rate         float64 `json:"rate,omitempty"`
	Hours        float64 `json:"hours,omitempty"`
	Amount       float64 `json:"amount"`
}

// BasePricing is the pricing engine's raw output before markup, overhead,
// profit, and tax. Values carry full float precision; rounding happens only
// when the final customer-facing figures are produced.
type BasePricing struct {
	LaborCost    float64            `json:"laborCost"`
	MaterialCost float64            `json:"materialCost"`
	Gallons      int                `json:"gallons"`
	Total        float64            `json:"total"`
	Breakdown    []LineContribution `json:"breakdown"`
}

// MarkupSettings are the contractor's percentage settings layered on top of a
// base pricing. All values are percents (7.5 means 7.5%). Absent values
// default to zero, except the deposit which defaults to 50%.
type MarkupSettings struct {
	LaborMarkup    float64  `json:"laborMarkup"`
	MaterialMarkup float64  `json:"materialMarkup"`
	Overhead       float64  `json:"overhead"`
	ProfitMargin   float64  `json:"profitMargin"`
	TaxRate        float64  `json:"taxRate"`
	DepositPercent *float64 `json:"depositPercent,omitempty"`
}

// FinalPricing is the customer-facing result of the markup/tax pipeline.
// Every monetary field is rounded to 2 decimal places; Balance is derived as
// Total minus Deposit so the two always sum back exactly.
type FinalPricing struct {
	LaborCost      float64 `json:"laborCost"`
	MaterialCost   float64 `json:"materialCost"`
	OverheadAmount float64 `json:"overheadAmount"`
	ProfitAmount   float64 `json:"profitAmount"`
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"taxAmount"`
	Total          float64 `json:"total"`
	Deposit        float64 `json:"deposit"`
	Balance        float64 `json:"balance"`
}
