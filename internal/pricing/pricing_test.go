package pricing

import (
	"errors"
	"math"
	"testing"

	"quote-engine/internal/model"
)

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func TestCalculateUnknownModel(t *testing.T) {
	_, err := Calculate("cost_plus", model.Rules{}, model.Measurements{})
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	var ume *model.UnsupportedModelError
	if !errors.As(err, &ume) {
		t.Fatalf("expected UnsupportedModelError, got %T: %v", err, err)
	}
	if ume.Model != "cost_plus" {
		t.Fatalf("expected model cost_plus in error, got %q", ume.Model)
	}
}

func TestLegacyAliases(t *testing.T) {
	m := model.Measurements{HomeSqft: 1000, JobScope: model.ScopeInterior}

	canonical, err := Calculate("turnkey", model.Rules{}, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	legacy, err := Calculate("sqft_turnkey", model.Rules{}, m)
	if err != nil {
		t.Fatalf("unexpected error for legacy alias: %v", err)
	}
	if canonical.Total != legacy.Total {
		t.Fatalf("alias total %v differs from canonical %v", legacy.Total, canonical.Total)
	}

	for _, alias := range []string{"sqft_labor_paint", "hourly_time_materials", "unit_pricing", "room_flat_rate"} {
		if _, err := Calculate(alias, model.Rules{}, model.Measurements{}); err != nil {
			t.Fatalf("legacy alias %q rejected: %v", alias, err)
		}
	}
}

func TestTurnkeyDefaults(t *testing.T) {
	base, err := Calculate("turnkey", model.Rules{}, model.Measurements{HomeSqft: 1000, JobScope: model.ScopeBoth})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !floatEq(base.Total, 3500) {
		t.Fatalf("expected total 3500 at default rate 3.50, got %v", base.Total)
	}
	if !floatEq(base.LaborCost, 0.6*base.Total) {
		t.Fatalf("expected labor = 60%% of total, got %v of %v", base.LaborCost, base.Total)
	}
	if base.LaborCost+base.MaterialCost != base.Total {
		t.Fatalf("labor %v + material %v != total %v", base.LaborCost, base.MaterialCost, base.Total)
	}
	if len(base.Breakdown) != 1 {
		t.Fatalf("expected 1 breakdown line, got %d", len(base.Breakdown))
	}
}

func TestTurnkeyScopeRates(t *testing.T) {
	rules := model.Rules{
		TurnkeyRate:  fptr(3.00),
		InteriorRate: fptr(2.50),
		ExteriorRate: fptr(4.00),
	}

	tests := []struct {
		name     string
		jobScope string
		expect   float64
	}{
		{"interior uses interior rate", model.ScopeInterior, 2500},
		{"exterior uses exterior rate", model.ScopeExterior, 4000},
		{"both falls back to turnkey rate", model.ScopeBoth, 3000},
		{"empty scope falls back to turnkey rate", "", 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := Calculate("turnkey", rules, model.Measurements{HomeSqft: 1000, JobScope: tt.jobScope})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !floatEq(base.Total, tt.expect) {
				t.Fatalf("expected total %v, got %v", tt.expect, base.Total)
			}
		})
	}
}

func TestTurnkeyWithoutMaterials(t *testing.T) {
	rules := model.Rules{IncludeMaterials: bptr(false)}
	base, err := Calculate("turnkey", rules, model.Measurements{HomeSqft: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base.MaterialCost != 0 {
		t.Fatalf("expected material cost 0, got %v", base.MaterialCost)
	}
	if base.LaborCost != base.Total {
		t.Fatalf("expected labor == total, got %v vs %v", base.LaborCost, base.Total)
	}
}

func TestRateBasedWalls(t *testing.T) {
	m := model.Measurements{Areas: []model.Area{{
		Name: "Living Room",
		Items: []model.LineItem{
			{CategoryName: "Walls", Quantity: 500, MeasurementUnit: model.UnitSqft, Selected: true},
		},
	}}}

	base, err := Calculate("rate_based_sqft", model.Rules{}, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !floatEq(base.LaborCost, 275) {
		t.Fatalf("expected labor 500*0.55 = 275, got %v", base.LaborCost)
	}
	// 500 sqft * 2 coats / 350 coverage = 2.86 -> 3 gallons * $40.
	if base.Gallons != 3 {
		t.Fatalf("expected 3 gallons, got %d", base.Gallons)
	}
	if !floatEq(base.MaterialCost, 120) {
		t.Fatalf("expected material 120, got %v", base.MaterialCost)
	}
	if !floatEq(base.Total, base.LaborCost+base.MaterialCost) {
		t.Fatalf("total %v != labor + material", base.Total)
	}
}

func TestRateBasedUnselectedExcluded(t *testing.T) {
	m := model.Measurements{Areas: []model.Area{{
		Name: "Bedroom",
		Items: []model.LineItem{
			{CategoryName: "Walls", Quantity: 400, MeasurementUnit: model.UnitSqft, Selected: true},
			{CategoryName: "Ceilings", Quantity: 9999, MeasurementUnit: model.UnitSqft, Selected: false},
		},
	}}}

	base, err := Calculate("rate_based_sqft", model.Rules{}, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !floatEq(base.LaborCost, 220) {
		t.Fatalf("expected labor from selected walls only (220), got %v", base.LaborCost)
	}
	// Aggregate sqft must exclude the unselected ceiling: 400*2/350 -> 3 gallons.
	if base.Gallons != 3 {
		t.Fatalf("expected 3 gallons from 400 sqft, got %d", base.Gallons)
	}
	if len(base.Breakdown) != 1 {
		t.Fatalf("expected 1 breakdown line, got %d", len(base.Breakdown))
	}
}

func TestRateBasedCategoryOrder(t *testing.T) {
	// "Trim Door" matches both trim and door; first match in the fixed order
	// wins, so it prices as trim.
	m := model.Measurements{Areas: []model.Area{{
		Name: "Hall",
		Items: []model.LineItem{
			{CategoryName: "Trim Door", Quantity: 10, MeasurementUnit: model.UnitLinearFoot, Selected: true},
		},
	}}}

	rules := model.Rules{IncludeMaterials: bptr(false)}
	base, err := Calculate("rate_based_sqft", rules, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floatEq(base.LaborCost, 25) {
		t.Fatalf("expected trim rate to win (10*2.50 = 25), got %v", base.LaborCost)
	}
}

func TestRateBasedUnknownCategory(t *testing.T) {
	m := model.Measurements{Areas: []model.Area{{
		Name: "Yard",
		Items: []model.LineItem{
			{CategoryName: "Fence", Quantity: 100, MeasurementUnit: model.UnitSqft, Selected: true},
		},
	}}}

	base, err := Calculate("rate_based_sqft", model.Rules{}, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base.LaborCost != 0 {
		t.Fatalf("expected zero labor for unknown category, got %v", base.LaborCost)
	}
	// The sqft still feeds the material aggregate: 100*2/350 -> 1 gallon.
	if base.Gallons != 1 {
		t.Fatalf("expected 1 gallon, got %d", base.Gallons)
	}
}

func TestRateBasedCustomRates(t *testing.T) {
	rules := model.Rules{
		IncludeMaterials: bptr(false),
		LaborRates:       &model.LaborRates{Walls: fptr(1.00), Doors: fptr(50)},
	}
	m := model.Measurements{Areas: []model.Area{{
		Name: "Suite",
		Items: []model.LineItem{
			{CategoryName: "Walls", Quantity: 300, MeasurementUnit: model.UnitSqft, Selected: true},
			{CategoryName: "Doors", Quantity: 2, MeasurementUnit: model.UnitCount, Selected: true},
			{CategoryName: "Ceilings", Quantity: 100, MeasurementUnit: model.UnitSqft, Selected: true},
		},
	}}}

	base, err := Calculate("rate_based_sqft", rules, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 300*1.00 + 2*50 + 100*0.65 (ceiling rate stays at its default).
	if !floatEq(base.LaborCost, 465) {
		t.Fatalf("expected labor 465, got %v", base.LaborCost)
	}
}

func TestProductionHours(t *testing.T) {
	m := model.Measurements{Areas: []model.Area{{
		Name: "Main",
		Items: []model.LineItem{
			{CategoryName: "Walls", Quantity: 600, MeasurementUnit: model.UnitSqft, Selected: true},
			{CategoryName: "Trim", Quantity: 150, MeasurementUnit: model.UnitLinearFoot, Selected: true},
		},
	}}}

	rules := model.Rules{IncludeMaterials: bptr(false)}
	base, err := Calculate("production_based", rules, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 600/300 = 2h walls, 150/75 = 2h trim, 4h * $50.
	if !floatEq(base.LaborCost, 200) {
		t.Fatalf("expected labor 200, got %v", base.LaborCost)
	}
	if len(base.Breakdown) != 2 {
		t.Fatalf("expected 2 breakdown lines, got %d", len(base.Breakdown))
	}
	if !floatEq(base.Breakdown[0].Hours, 2) {
		t.Fatalf("expected 2 hours on first line, got %v", base.Breakdown[0].Hours)
	}
}

func TestProductionSkipsZeroRateCategories(t *testing.T) {
	m := model.Measurements{Areas: []model.Area{{
		Name: "Kitchen",
		Items: []model.LineItem{
			{CategoryName: "Cabinets", Quantity: 10, MeasurementUnit: model.UnitCount, Selected: true},
			{CategoryName: "Walls", Quantity: 300, MeasurementUnit: model.UnitSqft, Selected: true},
		},
	}}}

	rules := model.Rules{IncludeMaterials: bptr(false)}
	base, err := Calculate("production_based", rules, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Cabinets have no production rate: zero labor, no error, still listed.
	if !floatEq(base.LaborCost, 50) {
		t.Fatalf("expected labor 50 from walls only, got %v", base.LaborCost)
	}
	if len(base.Breakdown) != 2 {
		t.Fatalf("expected cabinets to stay in breakdown, got %d lines", len(base.Breakdown))
	}
	if base.Breakdown[0].Amount != 0 {
		t.Fatalf("expected zero amount for cabinets, got %v", base.Breakdown[0].Amount)
	}
}

func TestFlatRateUnits(t *testing.T) {
	m := model.Measurements{FlatRateItems: model.FlatRateItems{
		Interior: map[string]int{"doors": 3, "mediumRooms": 2},
		Exterior: map[string]int{"windows": 4},
	}}

	base, err := Calculate("flat_rate_unit", model.Rules{}, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3*85 + 2*500 + 4*75 = 1555.
	if !floatEq(base.Total, 1555) {
		t.Fatalf("expected total 1555, got %v", base.Total)
	}
	if !floatEq(base.LaborCost, 0.6*base.Total) {
		t.Fatalf("expected 60%% labor split, got %v of %v", base.LaborCost, base.Total)
	}
	if base.LaborCost+base.MaterialCost != base.Total {
		t.Fatalf("labor %v + material %v != total %v", base.LaborCost, base.MaterialCost, base.Total)
	}
}

func TestFlatRateRoomBuckets(t *testing.T) {
	tests := []struct {
		key    string
		expect float64
	}{
		{"smallRooms", 350},
		{"mediumRooms", 500},
		{"largeRooms", 750},
		{"hallwayRoom", 0}, // room with no recognizable size
		{"chandeliers", 0}, // no match at all
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := model.Measurements{FlatRateItems: model.FlatRateItems{
				Interior: map[string]int{tt.key: 1},
			}}
			base, err := Calculate("flat_rate_unit", model.Rules{}, m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !floatEq(base.Total, tt.expect) {
				t.Fatalf("expected total %v for %s, got %v", tt.expect, tt.key, base.Total)
			}
		})
	}
}

func TestFlatRateWithoutMaterials(t *testing.T) {
	m := model.Measurements{FlatRateItems: model.FlatRateItems{
		Interior: map[string]int{"doors": 2},
	}}
	base, err := Calculate("flat_rate_unit", model.Rules{IncludeMaterials: bptr(false)}, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base.MaterialCost != 0 || base.LaborCost != base.Total {
		t.Fatalf("expected 100/0 split without materials, got labor %v material %v total %v",
			base.LaborCost, base.MaterialCost, base.Total)
	}
}

func TestBaseTotalInvariant(t *testing.T) {
	areas := []model.Area{{
		Name: "A",
		Items: []model.LineItem{
			{CategoryName: "Walls", Quantity: 350, MeasurementUnit: model.UnitSqft, Selected: true},
			{CategoryName: "Trim", Quantity: 80, MeasurementUnit: model.UnitLinearFoot, Selected: true},
		},
	}}

	tests := []struct {
		name  string
		model string
		m     model.Measurements
	}{
		{"turnkey", "turnkey", model.Measurements{HomeSqft: 1200, JobScope: model.ScopeInterior}},
		{"rate based", "rate_based_sqft", model.Measurements{Areas: areas}},
		{"production", "production_based", model.Measurements{Areas: areas}},
		{"flat rate", "flat_rate_unit", model.Measurements{FlatRateItems: model.FlatRateItems{
			Interior: map[string]int{"doors": 2, "smallRooms": 1},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := Calculate(tt.model, model.Rules{}, tt.m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !floatEq(base.LaborCost+base.MaterialCost, base.Total) {
				t.Fatalf("labor %v + material %v != total %v", base.LaborCost, base.MaterialCost, base.Total)
			}
		})
	}
}

func TestGallons(t *testing.T) {
	tests := []struct {
		name     string
		sqft     float64
		coats    float64
		coverage float64
		method   string
		expect   int
	}{
		{"roll at default coverage", 1000, 2, 350, "roll", 6},
		{"spray drops default coverage to 300", 1000, 2, 350, "spray", 7},
		{"spray respects overridden coverage", 1000, 2, 400, "spray", 5},
		{"zero sqft", 0, 2, 350, "roll", 0},
		{"single coat", 350, 1, 350, "roll", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gallons(tt.sqft, tt.coats, tt.coverage, tt.method)
			if got != tt.expect {
				t.Fatalf("Gallons(%v, %v, %v, %q) = %d, want %d",
					tt.sqft, tt.coats, tt.coverage, tt.method, got, tt.expect)
			}
		})
	}
}

func TestMaterialRulesOverrides(t *testing.T) {
	rules := model.Rules{
		Coats:         fptr(3),
		Coverage:      fptr(400),
		CostPerGallon: fptr(55),
	}
	m := model.Measurements{Areas: []model.Area{{
		Name: "A",
		Items: []model.LineItem{
			{CategoryName: "Walls", Quantity: 800, MeasurementUnit: model.UnitSqft, Selected: true},
		},
	}}}

	base, err := Calculate("rate_based_sqft", rules, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// ceil(800*3/400) = 6 gallons at $55.
	if base.Gallons != 6 {
		t.Fatalf("expected 6 gallons, got %d", base.Gallons)
	}
	if !floatEq(base.MaterialCost, 330) {
		t.Fatalf("expected material 330, got %v", base.MaterialCost)
	}
}
