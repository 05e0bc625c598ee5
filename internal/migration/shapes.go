// Package migration transforms a quote's data when its pricing scheme
// changes: it judges compatibility up front, converts the measurement
// representation between the four supported shapes, and produces one-shot
// rollback snapshots. Like the pricing engine it is pure; the caller owns
// persistence of results and snapshots.
package migration

import "quote-engine/internal/model"

// dataShape is the measurement representation a pricing model reads.
type dataShape int

const (
	shapeWholeHome dataShape = iota // single homeSqft + job scope
	shapeAreas                      // per-area line items
	shapeFlatRate                   // per-scope unit counts
)

func shapeOf(m model.PricingModel) dataShape {
	switch m {
	case model.ModelTurnkey:
		return shapeWholeHome
	case model.ModelFlatRateUnit:
		return shapeFlatRate
	}
	return shapeAreas
}

// requiredFields is the fixed per-scheme required-field table used for
// compatibility reports and data-loss listings.
var requiredFields = map[model.PricingModel][]string{
	model.ModelTurnkey:       {"homeSqft", "jobScope", "propertyCondition"},
	model.ModelRateBasedSqft: {"areas"},
	model.ModelProduction:    {"areas", "paintersOnSite"},
	model.ModelFlatRateUnit:  {"flatRateItems"},
}

// totalSqftFromAreas sums every sqft-unit line item across all areas,
// selected or not. Used to back-fill homeSqft when leaving an area-based
// scheme.
func totalSqftFromAreas(areas []model.Area) float64 {
	var total float64
	for _, area := range areas {
		for _, item := range area.Items {
			if item.MeasurementUnit == model.UnitSqft {
				total += item.Quantity
			}
		}
	}
	return total
}
