package pricing

import "quote-engine/internal/model"

// calculateRateBased prices every selected line item at its per-category
// labor rate, then runs the shared material routine once over the aggregate
// square footage of all selected sqft items.
func calculateRateBased(rr resolvedRules, m model.Measurements) model.BasePricing {
	var labor, totalSqft float64
	var breakdown []model.LineContribution

	for _, area := range m.Areas {
		for _, item := range area.Items {
			if !item.Selected {
				continue
			}

			var rate float64
			if cat, ok := matchCategory(item.CategoryName); ok {
				rate = rr.laborRateFor(cat)
			}
			amount := rate * item.Quantity
			labor += amount

			if item.MeasurementUnit == model.UnitSqft {
				totalSqft += item.Quantity
			}

			breakdown = append(breakdown, model.LineContribution{
				AreaName:     area.Name,
				CategoryName: item.CategoryName,
				Quantity:     item.Quantity,
				Unit:         item.MeasurementUnit,
				Rate:         rate,
				Amount:       amount,
			})
		}
	}

	gallons, material := materialCost(rr, totalSqft)

	return model.BasePricing{
		LaborCost:    labor,
		MaterialCost: material,
		Gallons:      gallons,
		Total:        labor + material,
		Breakdown:    breakdown,
	}
}
