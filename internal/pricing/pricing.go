// Package pricing converts a quote's measurements and a pricing scheme's
// rules into an itemized base cost, then layers markup, overhead, profit,
// tax, and deposit splits on top. Every function is pure: no I/O, no shared
// state, inputs are never mutated.
package pricing

import "quote-engine/internal/model"

type calculator func(rr resolvedRules, m model.Measurements) model.BasePricing

// calculators dispatches on the canonical model tag. Legacy aliases are
// normalized away before lookup, so the table stays closed over the four
// supported models.
var calculators = map[model.PricingModel]calculator{
	model.ModelTurnkey:       calculateTurnkey,
	model.ModelRateBasedSqft: calculateRateBased,
	model.ModelProduction:    calculateProduction,
	model.ModelFlatRateUnit:  calculateFlatRate,
}

// Calculate computes the base pricing for a quote. The only failure mode is
// an unrecognized model tag; every data-quality issue inside the measurements
// (unknown categories, zero quantities, unselected items) degrades to a zero
// contribution instead of an error.
func Calculate(modelTag string, rules model.Rules, m model.Measurements) (model.BasePricing, error) {
	pm, err := model.NormalizeModel(modelTag)
	if err != nil {
		return model.BasePricing{}, err
	}
	rr := resolveRules(rules)
	return calculators[pm](rr, m), nil
}
