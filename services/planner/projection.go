package planner

import (
	"nestulasli/models"
)

// DaysPerYear is the annualization factor used throughout the planner.
const DaysPerYear = 365

// Milestones are the projection horizons shown in the planner, in years.
var Milestones = []int{5, 10, 15}

// EffectiveYears applies the marketing-ramp rule: the first rampYears years
// are assumed to produce zero net profit.
func EffectiveYears(year, rampYears int) int {
	if year < rampYears {
		return 0
	}
	return year - rampYears
}

// ScenarioAnnualNet computes the aggregate annual net profit of villaCount
// properties under the given scenario profile. Villas beyond the configured
// fee slots fall back to the index-0 rate.
func ScenarioAnnualNet(profile models.ScenarioProfile, villaCount int) float64 {
	if len(profile.DailyFees) == 0 || villaCount <= 0 {
		return 0
	}
	var total float64
	for i := 0; i < villaCount; i++ {
		daily := profile.DailyFees[0]
		if i < len(profile.DailyFees) {
			daily = profile.DailyFees[i]
		}
		ebitda := daily * DaysPerYear * profile.Occupancy
		total += ebitda * (1 - profile.CostRatio)
	}
	return total
}

// Project computes the milestone projections for every scenario in the
// table: annual net × ramp-adjusted year count.
func Project(table models.ScenarioTable, villaCount, rampYears int) []models.ProjectionRow {
	rows := make([]models.ProjectionRow, 0, len(Milestones))
	for _, year := range Milestones {
		values := make(map[models.ScenarioName]float64, len(table))
		for name, profile := range table {
			values[name] = ScenarioAnnualNet(profile, villaCount) * float64(EffectiveYears(year, rampYears))
		}
		rows = append(rows, models.ProjectionRow{Year: year, Values: values})
	}
	return rows
}

// VillaRow computes the planner table row for one editable villa, using its
// live fee, occupancy and cost rather than any scenario. Both the
// ramp-adjusted and raw ROI columns are filled in.
func VillaRow(v models.PlannerVilla, rampYears int) models.VillaRow {
	ebitda := v.DailyFee * DaysPerYear * v.Occupancy
	net := ebitda * (1 - v.CostPct)

	row := models.VillaRow{
		PlannerVilla: v,
		EBITDA:       ebitda,
		Net:          net,
		ProjectedROI: make(map[int]float64, len(Milestones)),
		RawROI:       make(map[int]float64, len(Milestones)),
	}
	for _, year := range Milestones {
		row.ProjectedROI[year] = net * float64(EffectiveYears(year, rampYears))
		row.RawROI[year] = net * float64(year)
	}
	return row
}

// Totals sums the EBITDA and net columns over a set of computed rows.
func Totals(rows []models.VillaRow) (ebitda, net float64) {
	for _, r := range rows {
		ebitda += r.EBITDA
		net += r.Net
	}
	return ebitda, net
}
