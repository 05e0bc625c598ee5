package pricing

import "strings"

// surfaceCategory is the closed set of surface types the calculators price.
type surfaceCategory int

const (
	categoryWall surfaceCategory = iota
	categoryCeiling
	categoryTrim
	categoryDoor
	categoryCabinet
)

// categoryMatchers is evaluated first-match-wins in this exact order. A name
// like "Trim Door" therefore resolves to trim, never door. The ordering is
// load-bearing for behavioral compatibility with existing quotes; change it
// and historical totals shift.
var categoryMatchers = []struct {
	substr   string
	category surfaceCategory
}{
	{"wall", categoryWall},
	{"ceiling", categoryCeiling},
	{"trim", categoryTrim},
	{"door", categoryDoor},
	{"cabinet", categoryCabinet},
}

// matchCategory resolves a free-text category name to a surface category.
// Matching is case-insensitive substring containment.
func matchCategory(name string) (surfaceCategory, bool) {
	lower := strings.ToLower(name)
	for _, m := range categoryMatchers {
		if strings.Contains(lower, m.substr) {
			return m.category, true
		}
	}
	return 0, false
}

func (rr resolvedRules) laborRateFor(c surfaceCategory) float64 {
	switch c {
	case categoryWall:
		return rr.wallRate
	case categoryCeiling:
		return rr.ceilingRate
	case categoryTrim:
		return rr.trimRate
	case categoryDoor:
		return rr.doorRate
	case categoryCabinet:
		return rr.cabinetRate
	}
	return 0
}

// productionRateFor returns units-per-hour throughput; doors and cabinets have
// no production rate and yield zero.
func (rr resolvedRules) productionRateFor(c surfaceCategory) float64 {
	switch c {
	case categoryWall:
		return rr.wallProduction
	case categoryCeiling:
		return rr.ceilingProduction
	case categoryTrim:
		return rr.trimProduction
	}
	return 0
}
