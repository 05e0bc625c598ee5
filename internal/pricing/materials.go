package pricing

import "math"

// Gallons computes paint gallons for a total square footage. Sprayed jobs
// lose paint to overspray, so when the application method is "spray" and
// coverage sits at the untouched default of 350 the effective coverage drops
// to 300. Any other coverage value was set deliberately and is respected
// as-is.
func Gallons(totalSqft, coats, coverage float64, applicationMethod string) int {
	if totalSqft <= 0 || coverage <= 0 {
		return 0
	}
	if applicationMethod == applicationSpray && coverage == defaultCoverage {
		coverage = sprayCoverage
	}
	return int(math.Ceil(totalSqft * coats / coverage))
}

// materialCost runs the shared material routine over an aggregate square
// footage. When the scheme excludes materials the routine is skipped entirely
// and both outputs are zero.
func materialCost(rr resolvedRules, totalSqft float64) (gallons int, cost float64) {
	if !rr.includeMaterials {
		return 0, 0
	}
	gallons = Gallons(totalSqft, rr.coats, rr.coverage, rr.applicationMethod)
	return gallons, float64(gallons) * rr.costPerGallon
}

// splitTotal divides a lump-sum total into labor and material shares: 60/40
// when materials are included, otherwise all labor. Material is derived as the
// remainder so the two always sum back to the total exactly.
func splitTotal(total float64, includeMaterials bool) (labor, material float64) {
	if !includeMaterials {
		return total, 0
	}
	labor = total * 0.6
	return labor, total - labor
}
