package migration

import (
	"fmt"

	"quote-engine/internal/model"
)

// ValidateCompatibility judges a scheme change before it is performed.
// IsCompatible goes false only when a structural precondition of the target
// scheme is unmet and no planned conversion can satisfy it; everything else
// is reported as a non-fatal warning. Unknown scheme tags are the caller's
// error and surface as UnsupportedModelError.
func ValidateCompatibility(data model.QuoteData, fromScheme, toScheme string) (model.CompatibilityReport, error) {
	from, err := model.NormalizeModel(fromScheme)
	if err != nil {
		return model.CompatibilityReport{}, err
	}
	to, err := model.NormalizeModel(toScheme)
	if err != nil {
		return model.CompatibilityReport{}, err
	}

	report := model.CompatibilityReport{
		IsCompatible: true,
		Warnings:     []string{},
		DataLoss:     dataLoss(from, to),
		Migrations:   []string{"reset_pricing_outputs"},
	}

	fromShape, toShape := shapeOf(from), shapeOf(to)

	switch {
	case fromShape == toShape:
		// Same representation; only the output reset runs.

	case toShape == shapeAreas && fromShape == shapeFlatRate:
		if data.FlatRateItems.Empty() {
			report.IsCompatible = false
			report.Warnings = append(report.Warnings,
				"target scheme requires areas and no flat-rate items are available to convert")
		} else {
			report.Migrations = append(report.Migrations, "convert_flat_rate_items_to_areas")
		}

	case toShape == shapeAreas:
		if len(data.Areas) == 0 {
			report.IsCompatible = false
			report.Warnings = append(report.Warnings,
				"target scheme requires areas but none are defined")
		}

	case toShape == shapeFlatRate && fromShape == shapeAreas:
		if len(data.Areas) == 0 {
			report.IsCompatible = false
			report.Warnings = append(report.Warnings,
				"target scheme requires flatRateItems and no areas are available to convert")
		} else {
			report.Migrations = append(report.Migrations, "convert_areas_to_flat_rate_items")
			report.Warnings = append(report.Warnings,
				"area line items without a recognized flat-rate category will be dropped")
		}

	case toShape == shapeFlatRate:
		if data.FlatRateItems.Empty() {
			report.Warnings = append(report.Warnings,
				"flat-rate item counts must be entered manually")
		}

	case toShape == shapeWholeHome:
		if data.HomeSqft == 0 {
			if fromShape == shapeAreas && len(data.Areas) > 0 {
				report.Migrations = append(report.Migrations, "backfill_home_sqft")
			} else {
				report.Warnings = append(report.Warnings,
					"homeSqft is unset and must be entered manually")
			}
		}
	}

	if fromShape == shapeAreas && toShape == shapeWholeHome {
		report.Migrations = append(report.Migrations, "clear_areas")
	}
	if fromShape == shapeWholeHome && toShape == shapeAreas && len(data.Areas) == 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("areas must be defined manually for scheme %s", to))
	}

	if to == model.ModelProduction && data.PaintersOnSite == 0 {
		report.Migrations = append(report.Migrations, "default_painters_on_site")
	}
	if to == model.ModelTurnkey && data.PropertyCondition == "" {
		report.Migrations = append(report.Migrations, "default_property_condition")
	}

	return report, nil
}

// dataLoss lists fields in the source scheme's required set that the target
// scheme does not require.
func dataLoss(from, to model.PricingModel) []string {
	targetSet := make(map[string]bool)
	for _, f := range requiredFields[to] {
		targetSet[f] = true
	}

	loss := []string{}
	for _, f := range requiredFields[from] {
		if !targetSet[f] {
			loss = append(loss, f)
		}
	}
	return loss
}
