package planner

import (
	"math"
	"testing"

	"nestulasli/models"
)

func testTable() models.ScenarioTable {
	return models.ScenarioTable{
		models.ScenarioPessimistic: {DailyFees: []float64{400, 350}, CostRatio: 0.40, Occupancy: 0.60},
		models.ScenarioBase:        {DailyFees: []float64{700, 550}, CostRatio: 0.35, Occupancy: 0.60},
		models.ScenarioOptimistic:  {DailyFees: []float64{1000, 800}, CostRatio: 0.30, Occupancy: 0.60},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestEffectiveYears(t *testing.T) {
	tests := []struct {
		year, ramp, want int
	}{
		{5, 2, 3},
		{10, 2, 8},
		{15, 2, 13},
		{2, 2, 0},
		{1, 2, 0},
		{0, 2, 0},
		{5, 0, 5},
	}
	for _, tt := range tests {
		if got := EffectiveYears(tt.year, tt.ramp); got != tt.want {
			t.Errorf("EffectiveYears(%d, %d) = %d, want %d", tt.year, tt.ramp, got, tt.want)
		}
	}
}

func TestScenarioAnnualNetBaseExample(t *testing.T) {
	// Base scenario, two villas at 700 and 550: 99,645 + 78,292.50.
	profile := testTable()[models.ScenarioBase]

	if got := ScenarioAnnualNet(profile, 2); !almostEqual(got, 177937.5) {
		t.Errorf("ScenarioAnnualNet(base, 2) = %v, want 177937.5", got)
	}
}

func TestScenarioAnnualNetFallbackToFirstFee(t *testing.T) {
	profile := testTable()[models.ScenarioBase]

	// A third villa has no configured fee slot and reuses index 0.
	two := ScenarioAnnualNet(profile, 2)
	three := ScenarioAnnualNet(profile, 3)
	first := ScenarioAnnualNet(profile, 1)
	if !almostEqual(three, two+first) {
		t.Errorf("third villa net = %v, want fallback to index 0 (%v)", three-two, first)
	}
}

func TestProjectMilestones(t *testing.T) {
	rows := Project(testTable(), 2, 2)

	if len(rows) != 3 {
		t.Fatalf("got %d projection rows, want 3", len(rows))
	}
	wantYears := []int{5, 10, 15}
	for i, row := range rows {
		if row.Year != wantYears[i] {
			t.Errorf("row %d year = %d, want %d", i, row.Year, wantYears[i])
		}
	}

	// projectedValue(base, 5) = annual net × 3 under a two-year ramp,
	// projectedValue(base, 10) = annual net × 8.
	if got := rows[0].Values[models.ScenarioBase]; !almostEqual(got, 177937.5*3) {
		t.Errorf("base@5y = %v, want %v", got, 177937.5*3)
	}
	if got := rows[1].Values[models.ScenarioBase]; !almostEqual(got, 1423500) {
		t.Errorf("base@10y = %v, want 1423500", got)
	}
}

func TestVillaRowRawAndAdjustedROI(t *testing.T) {
	v := models.PlannerVilla{ID: "v1", Name: "ALYA", DailyFee: 700, Occupancy: 0.60, CostPct: 0.35}
	row := VillaRow(v, 2)

	if !almostEqual(row.EBITDA, 153300) {
		t.Errorf("EBITDA = %v, want 153300", row.EBITDA)
	}
	if !almostEqual(row.Net, 99645) {
		t.Errorf("Net = %v, want 99645", row.Net)
	}
	if !almostEqual(row.ProjectedROI[5], row.Net*3) {
		t.Errorf("ProjectedROI[5] = %v, want net × 3", row.ProjectedROI[5])
	}
	if !almostEqual(row.RawROI[5], row.Net*5) {
		t.Errorf("RawROI[5] = %v, want net × 5", row.RawROI[5])
	}
}

func TestApplyScenario(t *testing.T) {
	svc := NewService(testTable(), 2, []string{"ALYA", "ZEHRA"})

	villas := []models.PlannerVilla{
		{ID: "a", Name: "Renamed", DailyFee: 900, Occupancy: 0.80, CostPct: 0.10},
		{ID: "b", Name: "Other", DailyFee: 100, Occupancy: 0.20, CostPct: 0.90},
		{ID: "c", Name: "Villa 3", DailyFee: 600, Occupancy: 0.50, CostPct: 0.50},
	}
	out, err := svc.ApplyScenario(models.ScenarioOptimistic, villas)
	if err != nil {
		t.Fatalf("ApplyScenario() error = %v", err)
	}

	if out[0].Name != "ALYA" || out[1].Name != "ZEHRA" {
		t.Errorf("preset names = %q, %q, want ALYA, ZEHRA", out[0].Name, out[1].Name)
	}
	if out[0].DailyFee != 1000 || out[1].DailyFee != 800 {
		t.Errorf("preset fees = %v, %v, want 1000, 800", out[0].DailyFee, out[1].DailyFee)
	}
	// The third villa keeps its identity and fee but follows the scenario
	// occupancy and cost assumptions.
	if out[2].Name != "Villa 3" || out[2].DailyFee != 600 {
		t.Errorf("third villa = %q/%v, want name and fee retained", out[2].Name, out[2].DailyFee)
	}
	for i, v := range out {
		if v.Occupancy != 0.60 {
			t.Errorf("villa %d occupancy = %v, want reset to 0.60", i, v.Occupancy)
		}
		if v.CostPct != 0.30 {
			t.Errorf("villa %d costPct = %v, want 0.30", i, v.CostPct)
		}
	}

	if _, err := svc.ApplyScenario("fantastical", villas); err == nil {
		t.Error("unknown scenario should error")
	}
}

func TestSetTableValidation(t *testing.T) {
	svc := NewService(testTable(), 2, nil)

	bad := []models.ScenarioTable{
		{},
		{models.ScenarioBase: {DailyFees: nil, CostRatio: 0.35, Occupancy: 0.60}},
		{models.ScenarioBase: {DailyFees: []float64{700}, CostRatio: 1.5, Occupancy: 0.60}},
		{models.ScenarioBase: {DailyFees: []float64{700}, CostRatio: 0.35, Occupancy: -0.1}},
		{models.ScenarioBase: {DailyFees: []float64{-700}, CostRatio: 0.35, Occupancy: 0.60}},
	}
	for i, table := range bad {
		if err := svc.SetTable(table); err == nil {
			t.Errorf("table %d should be rejected", i)
		}
	}

	// A rejected table leaves the current one untouched.
	if _, ok := svc.Profile(models.ScenarioOptimistic); !ok {
		t.Fatal("original table lost after failed update")
	}

	replacement := models.ScenarioTable{
		models.ScenarioBase: {DailyFees: []float64{800, 600}, CostRatio: 0.40, Occupancy: 0.55},
	}
	if err := svc.SetTable(replacement); err != nil {
		t.Fatalf("SetTable() error = %v", err)
	}
	p, ok := svc.Profile(models.ScenarioBase)
	if !ok || p.DailyFees[0] != 800 {
		t.Errorf("updated profile = %+v, want new fees in effect", p)
	}
}

func TestTableReturnsCopy(t *testing.T) {
	svc := NewService(testTable(), 2, nil)
	got := svc.Table()
	got[models.ScenarioBase].DailyFees[0] = 1
	if p, _ := svc.Profile(models.ScenarioBase); p.DailyFees[0] != 700 {
		t.Error("mutating a returned table leaked into the service")
	}
}
