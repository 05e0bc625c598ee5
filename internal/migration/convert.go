package migration

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"quote-engine/internal/model"
)

// Fixed sqft estimates per room-size bucket, used when expanding flat-rate
// counts into synthetic area items and when dividing back the other way.
// These are sizes, not prices.
const (
	smallRoomSqft  = 300.0
	mediumRoomSqft = 450.0
	largeRoomSqft  = 600.0
	closetSqft     = 100.0
	accentWallSqft = 120.0
)

// flatRateBucket describes how one flat-rate item type expands into an area
// line item. Bucketed types synthesize sqft from the count; the rest map 1:1
// to unit-typed items.
type flatRateBucket struct {
	categoryName string
	sqftEach     float64 // 0 means 1:1 unit item
}

var flatRateBuckets = map[string]flatRateBucket{
	"smallRooms":    {"Small Room Walls", smallRoomSqft},
	"mediumRooms":   {"Medium Room Walls", mediumRoomSqft},
	"largeRooms":    {"Large Room Walls", largeRoomSqft},
	"closets":       {"Closet Walls", closetSqft},
	"accentWalls":   {"Accent Walls", accentWallSqft},
	"doors":         {"Doors", 0},
	"windows":       {"Windows", 0},
	"cabinets":      {"Cabinets", 0},
	"exteriorDoors": {"Exterior Doors", 0},
	"garageDoors":   {"Garage Doors", 0},
	"shutters":      {"Shutters", 0},
}

// flatRateToAreas expands flat-rate unit counts into synthetic areas, at most
// one per scope: "Interior (Converted)" and "Exterior (Converted)".
func flatRateToAreas(out *model.QuoteData, log []string) []string {
	var areas []model.Area

	scopes := []struct {
		areaName string
		items    map[string]int
	}{
		{"Interior (Converted)", out.FlatRateItems.Interior},
		{"Exterior (Converted)", out.FlatRateItems.Exterior},
	}

	for _, scope := range scopes {
		var lineItems []model.LineItem

		keys := make([]string, 0, len(scope.items))
		for k := range scope.items {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			count := scope.items[key]
			if count <= 0 {
				continue
			}
			bucket, ok := flatRateBuckets[key]
			if !ok {
				log = append(log, fmt.Sprintf("Skipped unrecognized flat-rate item type %q", key))
				continue
			}

			item := model.LineItem{
				CategoryName:    bucket.categoryName,
				Quantity:        float64(count),
				MeasurementUnit: model.UnitCount,
				Selected:        true,
			}
			if bucket.sqftEach > 0 {
				item.Quantity = float64(count) * bucket.sqftEach
				item.MeasurementUnit = model.UnitSqft
			}
			lineItems = append(lineItems, item)
			log = append(log, fmt.Sprintf("Converted %d x %s to %s (%.0f %s)",
				count, key, bucket.categoryName, item.Quantity, item.MeasurementUnit))
		}

		if len(lineItems) > 0 {
			areas = append(areas, model.Area{Name: scope.areaName, Items: lineItems})
		}
	}

	out.Areas = areas
	out.FlatRateItems = model.FlatRateItems{}
	log = append(log, "Cleared flat-rate item counts after conversion to areas")
	return log
}

// areasToFlatRate is the best-effort inverse: category names map back to
// flat-rate item types by substring match, with closet and accent-wall square
// footage divided by their fixed size estimates and rounded up to a count.
// Entries with no recognized category are dropped silently; the conversion
// is lossy, not an error.
func areasToFlatRate(out *model.QuoteData, log []string) []string {
	interior := map[string]int{}
	exterior := map[string]int{}

	for _, area := range out.Areas {
		for _, item := range area.Items {
			mapAreaItem(item, interior, exterior)
		}
	}

	out.FlatRateItems = model.FlatRateItems{}
	if len(interior) > 0 {
		out.FlatRateItems.Interior = interior
	}
	if len(exterior) > 0 {
		out.FlatRateItems.Exterior = exterior
	}
	out.Areas = nil
	log = append(log, "Converted area line items to flat-rate counts; unrecognized categories were dropped")
	log = append(log, "Cleared area measurements after conversion")
	return log
}

// mapAreaItem buckets a single line item. Compound names are tested most
// specific first: "Exterior Door" must not fall through to the plain door
// count.
func mapAreaItem(item model.LineItem, interior, exterior map[string]int) {
	lower := strings.ToLower(item.CategoryName)
	count := int(math.Round(item.Quantity))

	switch {
	case strings.Contains(lower, "exterior") && strings.Contains(lower, "door"):
		exterior["exteriorDoors"] += count
	case strings.Contains(lower, "garage"):
		exterior["garageDoors"] += count
	case strings.Contains(lower, "shutter"):
		exterior["shutters"] += count
	case strings.Contains(lower, "closet"):
		interior["closets"] += int(math.Ceil(item.Quantity / closetSqft))
	case strings.Contains(lower, "accent"):
		interior["accentWalls"] += int(math.Ceil(item.Quantity / accentWallSqft))
	case strings.Contains(lower, "door"):
		interior["doors"] += count
	case strings.Contains(lower, "window"):
		interior["windows"] += count
	case strings.Contains(lower, "cabinet"):
		interior["cabinets"] += count
	}
}
