package model

import "fmt"

// PricingModel is the canonical tag for one of the four supported pricing
// models. Legacy scheme names from older quotes normalize onto these four.
type PricingModel string

const (
	ModelTurnkey       PricingModel = "turnkey"
	ModelRateBasedSqft PricingModel = "rate_based_sqft"
	ModelProduction    PricingModel = "production_based"
	ModelFlatRateUnit  PricingModel = "flat_rate_unit"
)

// legacyAliases maps historical scheme tags onto the canonical four.
var legacyAliases = map[string]PricingModel{
	"sqft_turnkey":          ModelTurnkey,
	"sqft_labor_paint":      ModelRateBasedSqft,
	"hourly_time_materials": ModelProduction,
	"unit_pricing":          ModelFlatRateUnit,
	"room_flat_rate":        ModelFlatRateUnit,
}

// UnsupportedModelError reports a pricing-model tag that is neither one of the
// four canonical models nor a recognized legacy alias.
type UnsupportedModelError struct {
	Model string
}

func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("unsupported pricing model: %q", e.Model)
}

// NormalizeModel resolves a raw scheme tag to its canonical pricing model.
// Branching on raw strings never happens past this boundary.
func NormalizeModel(tag string) (PricingModel, error) {
	switch PricingModel(tag) {
	case ModelTurnkey, ModelRateBasedSqft, ModelProduction, ModelFlatRateUnit:
		return PricingModel(tag), nil
	}
	if m, ok := legacyAliases[tag]; ok {
		return m, nil
	}
	return "", &UnsupportedModelError{Model: tag}
}
