package pricing

import (
	"sort"
	"strings"

	"quote-engine/internal/model"
)

// calculateFlatRate prices countable units at fixed prices: doors, windows,
// and room-size buckets resolved by substring match on the item-type key.
// Unrecognized keys contribute nothing. The lump-sum total splits 60/40 into
// labor and material the same way turnkey does.
func calculateFlatRate(rr resolvedRules, m model.Measurements) model.BasePricing {
	var total float64
	var breakdown []model.LineContribution

	scopes := []struct {
		name  string
		items map[string]int
	}{
		{model.ScopeInterior, m.FlatRateItems.Interior},
		{model.ScopeExterior, m.FlatRateItems.Exterior},
	}

	for _, scope := range scopes {
		for _, key := range sortedKeys(scope.items) {
			count := scope.items[key]
			if count <= 0 {
				continue
			}
			price := rr.unitPriceFor(key)
			amount := price * float64(count)
			total += amount

			breakdown = append(breakdown, model.LineContribution{
				AreaName:     scope.name,
				CategoryName: key,
				Quantity:     float64(count),
				Unit:         model.UnitCount,
				Rate:         price,
				Amount:       amount,
			})
		}
	}

	labor, material := splitTotal(total, rr.includeMaterials)

	return model.BasePricing{
		LaborCost:    labor,
		MaterialCost: material,
		Total:        total,
		Breakdown:    breakdown,
	}
}

// unitPriceFor resolves a flat unit price from an item-type key. Room pricing
// nests a size sub-match inside the "room" match; a room key with no
// recognizable size prices at zero.
func (rr resolvedRules) unitPriceFor(key string) float64 {
	lower := strings.ToLower(key)
	switch {
	case strings.Contains(lower, "door"):
		return rr.doorPrice
	case strings.Contains(lower, "window"):
		return rr.windowPrice
	case strings.Contains(lower, "room"):
		switch {
		case strings.Contains(lower, "small"):
			return rr.smallRoomPrice
		case strings.Contains(lower, "medium"):
			return rr.mediumRoomPrice
		case strings.Contains(lower, "large"):
			return rr.largeRoomPrice
		}
	}
	return 0
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
