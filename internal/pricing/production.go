package pricing

import "quote-engine/internal/model"

// calculateProduction prices labor by throughput: each selected item's
// quantity divided by its category's production rate yields hours, billed at
// one global hourly rate. Items whose category has no production rate (doors,
// cabinets, unrecognized names) contribute zero labor and are skipped from
// the hours sum rather than erroring.
func calculateProduction(rr resolvedRules, m model.Measurements) model.BasePricing {
	var labor, totalSqft float64
	var breakdown []model.LineContribution

	for _, area := range m.Areas {
		for _, item := range area.Items {
			if !item.Selected {
				continue
			}

			if item.MeasurementUnit == model.UnitSqft {
				totalSqft += item.Quantity
			}

			var prodRate float64
			if cat, ok := matchCategory(item.CategoryName); ok {
				prodRate = rr.productionRateFor(cat)
			}
			if prodRate <= 0 {
				breakdown = append(breakdown, model.LineContribution{
					AreaName:     area.Name,
					CategoryName: item.CategoryName,
					Quantity:     item.Quantity,
					Unit:         item.MeasurementUnit,
				})
				continue
			}

			hours := item.Quantity / prodRate
			amount := hours * rr.hourlyLaborRate
			labor += amount

			breakdown = append(breakdown, model.LineContribution{
				AreaName:     area.Name,
				CategoryName: item.CategoryName,
				Quantity:     item.Quantity,
				Unit:         item.MeasurementUnit,
				Rate:         rr.hourlyLaborRate,
				Hours:        hours,
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
