package pricing

import "quote-engine/internal/model"

// calculateTurnkey prices a whole home at a single rate per square foot. The
// rate prefers a scope-specific override (interior or exterior) when the
// scheme carries one for the quote's job scope, then falls back to the
// general turnkey rate.
func calculateTurnkey(rr resolvedRules, m model.Measurements) model.BasePricing {
	rate := rr.turnkeyRate
	switch m.JobScope {
	case model.ScopeInterior:
		if rr.interiorRate != nil {
			rate = *rr.interiorRate
		}
	case model.ScopeExterior:
		if rr.exteriorRate != nil {
			rate = *rr.exteriorRate
		}
	}

	total := m.HomeSqft * rate
	labor, material := splitTotal(total, rr.includeMaterials)

	return model.BasePricing{
		LaborCost:    labor,
		MaterialCost: material,
		Total:        total,
		Breakdown: []model.LineContribution{{
			CategoryName: "Whole Home",
			Quantity:     m.HomeSqft,
			Unit:         model.UnitSqft,
			Rate:         rate,
			Amount:       total,
		}},
	}
}
