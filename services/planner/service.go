package planner

import (
	"fmt"
	"sync"

	"nestulasli/models"
)

// Service holds the live scenario table. The table starts from
// configuration and may be replaced at runtime through the admin API, so
// reads and writes are guarded.
type Service struct {
	mu          sync.RWMutex
	table       models.ScenarioTable
	rampYears   int
	presetNames []string // Names forced onto the first villas when a preset is applied.
}

// NewService constructs a planner service from the configured scenario
// table, marketing-ramp length and preset villa names.
func NewService(table models.ScenarioTable, rampYears int, presetNames []string) *Service {
	return &Service{
		table:       cloneTable(table),
		rampYears:   rampYears,
		presetNames: presetNames,
	}
}

// Table returns a copy of the current scenario table.
func (s *Service) Table() models.ScenarioTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTable(s.table)
}

// SetTable replaces the scenario table after validating it.
func (s *Service) SetTable(table models.ScenarioTable) error {
	if err := validateTable(table); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = cloneTable(table)
	return nil
}

// Profile returns the profile of a named scenario.
func (s *Service) Profile(name models.ScenarioName) (models.ScenarioProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.table[name]
	return p, ok
}

// Project computes the milestone projections for the current table.
func (s *Service) Project(villaCount int) []models.ProjectionRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Project(s.table, villaCount, s.rampYears)
}

// Rows computes the planner table rows for a set of editable villas.
func (s *Service) Rows(villas []models.PlannerVilla) []models.VillaRow {
	rows := make([]models.VillaRow, 0, len(villas))
	for _, v := range villas {
		rows = append(rows, VillaRow(v, s.rampYears))
	}
	return rows
}

// ApplyScenario overwrites a set of editable villas with a named preset:
// the first villas take the preset names and per-index fees, later villas
// keep their name and fee, and every villa gets the preset occupancy and
// cost ratio.
func (s *Service) ApplyScenario(name models.ScenarioName, villas []models.PlannerVilla) ([]models.PlannerVilla, error) {
	profile, ok := s.Profile(name)
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", name)
	}

	out := make([]models.PlannerVilla, len(villas))
	for i, v := range villas {
		if i < len(s.presetNames) {
			v.Name = s.presetNames[i]
		}
		if i < len(profile.DailyFees) {
			v.DailyFee = profile.DailyFees[i]
		}
		v.Occupancy = profile.Occupancy
		v.CostPct = profile.CostRatio
		out[i] = v
	}
	return out, nil
}

func validateTable(table models.ScenarioTable) error {
	if len(table) == 0 {
		return fmt.Errorf("scenario table is empty")
	}
	for name, p := range table {
		if len(p.DailyFees) == 0 {
			return fmt.Errorf("scenario %q has no daily fees", name)
		}
		for _, fee := range p.DailyFees {
			if fee < 0 {
				return fmt.Errorf("scenario %q has a negative daily fee", name)
			}
		}
		if p.CostRatio < 0 || p.CostRatio > 1 {
			return fmt.Errorf("scenario %q cost ratio out of range", name)
		}
		if p.Occupancy < 0 || p.Occupancy > 1 {
			return fmt.Errorf("scenario %q occupancy out of range", name)
		}
	}
	return nil
}

func cloneTable(table models.ScenarioTable) models.ScenarioTable {
	out := make(models.ScenarioTable, len(table))
	for name, p := range table {
		fees := make([]float64, len(p.DailyFees))
		copy(fees, p.DailyFees)
		p.DailyFees = fees
		out[name] = p
	}
	return out
}
