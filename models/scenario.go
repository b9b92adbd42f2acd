package models

// ScenarioName identifies one of the named economic scenarios.
type ScenarioName string

const (
	ScenarioPessimistic ScenarioName = "pessimistic"
	ScenarioBase        ScenarioName = "base"
	ScenarioOptimistic  ScenarioName = "optimistic"
)

// ScenarioNames lists the scenarios in display order.
var ScenarioNames = []ScenarioName{ScenarioPessimistic, ScenarioBase, ScenarioOptimistic}

// ScenarioProfile holds the assumptions of one scenario. DailyFees is indexed
// by villa position; villas beyond the configured slots fall back to index 0.
type ScenarioProfile struct {
	DailyFees []float64 `mapstructure:"daily_fees" json:"dailyFees"` // EUR per night, per villa index.
	CostRatio float64   `mapstructure:"cost_ratio" json:"costRatio"` // 0..1 share of revenue consumed by costs.
	Occupancy float64   `mapstructure:"occupancy" json:"occupancy"`  // 0..1, fixed at 0.60 in shipped presets.
}

// ScenarioTable maps scenario names to their profiles. The table is
// configuration, not law: assumptions like the optimistic cost ratio are
// debated, so deployments may override it.
type ScenarioTable map[ScenarioName]ScenarioProfile

// PlannerVilla is one editable row of the profit planner. Unlike Villa it is
// user-adjustable and not tied to the booking configuration.
type PlannerVilla struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	DailyFee  float64 `json:"dailyFee"`  // EUR per night.
	Occupancy float64 `json:"occupancy"` // 0..1.
	CostPct   float64 `json:"costPct"`   // 0..1.
}

// VillaRow is a computed planner table row. ProjectedROI applies the
// marketing-ramp adjustment; RawROI multiplies by the full year count. Both
// are exposed so clients can present either view.
type VillaRow struct {
	PlannerVilla
	EBITDA       float64         `json:"ebitda"` // dailyFee × 365 × occupancy, EUR.
	Net          float64         `json:"net"`    // EBITDA × (1 − costPct), EUR.
	ProjectedROI map[int]float64 `json:"projectedROI"`
	RawROI       map[int]float64 `json:"rawROI"`
}

// ProjectionRow is one milestone of the aggregate scenario projection.
type ProjectionRow struct {
	Year   int                      `json:"year"`
	Values map[ScenarioName]float64 `json:"values"` // EUR per scenario.
}
