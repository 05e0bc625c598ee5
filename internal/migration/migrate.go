package migration

import (
	"fmt"

	"quote-engine/internal/jsonpatch"
	"quote-engine/internal/model"
)

// Migrate transforms a quote's data from one scheme's shape to another's.
// The input is never mutated. Pricing outputs are reset unconditionally: a
// scheme change invalidates every previously computed total. Each decision
// taken appends one entry to the migration log in execution order; the log is
// part of the contract and is surfaced to the end user as a change summary.
func Migrate(data model.QuoteData, fromScheme, toScheme string) (model.MigrationResult, error) {
	from, err := model.NormalizeModel(fromScheme)
	if err != nil {
		return model.MigrationResult{}, err
	}
	to, err := model.NormalizeModel(toScheme)
	if err != nil {
		return model.MigrationResult{}, err
	}

	out := cloneQuote(data)
	log := []string{}

	out.Subtotal = 0
	out.LaborTotal = 0
	out.MaterialTotal = 0
	out.Total = 0
	out.Breakdown = nil
	log = append(log, "Reset pricing outputs; totals must be recalculated under the new scheme")

	log = transformShape(&out, from, to, log)
	log = injectDefaults(&out, to, log)

	fwd, bwd := jsonpatch.DiffValues(data, out)

	return model.MigrationResult{
		Data:          out,
		MigrationLog:  log,
		ChangePatch:   fwd,
		RollbackPatch: bwd,
	}, nil
}

func transformShape(out *model.QuoteData, from, to model.PricingModel, log []string) []string {
	fromShape, toShape := shapeOf(from), shapeOf(to)

	switch {
	case fromShape == toShape:
		// Rate-based and production-based share the areas shape; nothing to
		// convert.

	case fromShape == shapeWholeHome && toShape == shapeAreas:
		// No automatic sqft-to-area synthesis in this direction.
		if len(out.Areas) == 0 {
			log = append(log, "Areas are empty and must be defined manually before pricing")
		} else {
			log = append(log, "Kept previously defined areas")
		}

	case fromShape == shapeAreas && toShape == shapeWholeHome:
		if out.HomeSqft == 0 {
			out.HomeSqft = totalSqftFromAreas(out.Areas)
			log = append(log, fmt.Sprintf("Back-filled homeSqft=%.0f from area measurements", out.HomeSqft))
		}
		out.Areas = nil
		log = append(log, "Cleared area measurements")

	case fromShape == shapeFlatRate && toShape == shapeAreas:
		log = flatRateToAreas(out, log)

	case fromShape == shapeAreas && toShape == shapeFlatRate:
		log = areasToFlatRate(out, log)

	case fromShape == shapeWholeHome && toShape == shapeFlatRate:
		if out.FlatRateItems.Empty() {
			log = append(log, "Flat-rate item counts must be entered manually before pricing")
		}

	case fromShape == shapeFlatRate && toShape == shapeWholeHome:
		if out.HomeSqft == 0 {
			log = append(log, "homeSqft is unset and must be entered manually before pricing")
		}
		out.FlatRateItems = model.FlatRateItems{}
		log = append(log, "Cleared flat-rate item counts")
	}

	return log
}

func injectDefaults(out *model.QuoteData, to model.PricingModel, log []string) []string {
	if to == model.ModelProduction && out.PaintersOnSite == 0 {
		out.PaintersOnSite = 2
		log = append(log, "Defaulted paintersOnSite to 2")
	}
	if to == model.ModelTurnkey && out.PropertyCondition == "" {
		out.PropertyCondition = "average"
		log = append(log, `Defaulted propertyCondition to "average"`)
	}
	return log
}
