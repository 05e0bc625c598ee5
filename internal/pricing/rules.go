package pricing

import "quote-engine/internal/model"

// Fixed defaults merged under the scheme's rules bag. An absent rule field
// always falls back to its default, never to zero.
const (
	defaultCoverage      = 350.0
	sprayCoverage        = 300.0
	defaultCoats         = 2.0
	defaultCostPerGallon = 40.0

	defaultTurnkeyRate = 3.50

	defaultWallRate    = 0.55 // per sqft
	defaultCeilingRate = 0.65 // per sqft
	defaultTrimRate    = 2.50 // per linear foot
	defaultDoorRate    = 45.0 // per unit
	defaultCabinetRate = 65.0 // per unit

	defaultWallProduction    = 300.0 // sqft per hour
	defaultCeilingProduction = 250.0 // sqft per hour
	defaultTrimProduction    = 75.0  // linear ft per hour
	defaultHourlyLaborRate   = 50.0

	defaultDoorPrice       = 85.0
	defaultWindowPrice     = 75.0
	defaultSmallRoomPrice  = 350.0
	defaultMediumRoomPrice = 500.0
	defaultLargeRoomPrice  = 750.0
)

const applicationSpray = "spray"

// resolvedRules is the fully populated, typed form the four calculators
// operate on. Interior/exterior turnkey rates stay optional because the rate
// choice depends on whether the scheme supplies them at all.
type resolvedRules struct {
	includeMaterials  bool
	coverage          float64
	applicationMethod string
	coats             float64
	costPerGallon     float64

	turnkeyRate  float64
	interiorRate *float64
	exteriorRate *float64

	wallRate    float64
	ceilingRate float64
	trimRate    float64
	doorRate    float64
	cabinetRate float64

	wallProduction    float64
	ceilingProduction float64
	trimProduction    float64
	hourlyLaborRate   float64

	doorPrice       float64
	windowPrice     float64
	smallRoomPrice  float64
	mediumRoomPrice float64
	largeRoomPrice  float64
}

func resolveRules(r model.Rules) resolvedRules {
	rr := resolvedRules{
		includeMaterials:  true,
		coverage:          defaultCoverage,
		applicationMethod: "roll",
		coats:             defaultCoats,
		costPerGallon:     defaultCostPerGallon,

		turnkeyRate:  defaultTurnkeyRate,
		interiorRate: r.InteriorRate,
		exteriorRate: r.ExteriorRate,

		wallRate:    defaultWallRate,
		ceilingRate: defaultCeilingRate,
		trimRate:    defaultTrimRate,
		doorRate:    defaultDoorRate,
		cabinetRate: defaultCabinetRate,

		wallProduction:    defaultWallProduction,
		ceilingProduction: defaultCeilingProduction,
		trimProduction:    defaultTrimProduction,
		hourlyLaborRate:   defaultHourlyLaborRate,

		doorPrice:       defaultDoorPrice,
		windowPrice:     defaultWindowPrice,
		smallRoomPrice:  defaultSmallRoomPrice,
		mediumRoomPrice: defaultMediumRoomPrice,
		largeRoomPrice:  defaultLargeRoomPrice,
	}

	if r.IncludeMaterials != nil {
		rr.includeMaterials = *r.IncludeMaterials
	}
	if r.Coverage != nil {
		rr.coverage = *r.Coverage
	}
	if r.ApplicationMethod != "" {
		rr.applicationMethod = r.ApplicationMethod
	}
	if r.Coats != nil {
		rr.coats = *r.Coats
	}
	if r.CostPerGallon != nil {
		rr.costPerGallon = *r.CostPerGallon
	}
	if r.TurnkeyRate != nil {
		rr.turnkeyRate = *r.TurnkeyRate
	}
	if lr := r.LaborRates; lr != nil {
		setIf(&rr.wallRate, lr.Walls)
		setIf(&rr.ceilingRate, lr.Ceilings)
		setIf(&rr.trimRate, lr.Trim)
		setIf(&rr.doorRate, lr.Doors)
		setIf(&rr.cabinetRate, lr.Cabinets)
	}
	if pr := r.ProductionRates; pr != nil {
		setIf(&rr.wallProduction, pr.Walls)
		setIf(&rr.ceilingProduction, pr.Ceilings)
		setIf(&rr.trimProduction, pr.Trim)
	}
	if r.HourlyLaborRate != nil {
		rr.hourlyLaborRate = *r.HourlyLaborRate
	}
	if up := r.UnitPrices; up != nil {
		setIf(&rr.doorPrice, up.Door)
		setIf(&rr.windowPrice, up.Window)
		setIf(&rr.smallRoomPrice, up.SmallRoom)
		setIf(&rr.mediumRoomPrice, up.MediumRoom)
		setIf(&rr.largeRoomPrice, up.LargeRoom)
	}

	return rr
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
