// File: services/availability/availability.go
package availability

import (
	"context"
	"time"

	availabilityRepo "nestulasli/database/repository/availability"
	"nestulasli/models"
)

// Service answers whether a villa can host a given date range. The blocked
// calendar comes from an injected repository so a real availability backend
// can be swapped in without touching the quote engine.
type Service interface {
	BlockedPeriods(ctx context.Context, villaKey string) ([]models.BlockedPeriod, error)
	IsRangeFree(ctx context.Context, villaKey string, from, to time.Time) (bool, error)
}

// DefaultAvailabilityService is a concrete implementation.
type DefaultAvailabilityService struct {
	Repo availabilityRepo.Repository
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// BlockedPeriods returns the blocked calendar for a villa.
func (s *DefaultAvailabilityService) BlockedPeriods(ctx context.Context, villaKey string) ([]models.BlockedPeriod, error) {
	return s.Repo.GetByVilla(ctx, villaKey)
}

// IsRangeFree reports whether [from, to) starts no earlier than today and
// misses every blocked period of the villa.
func (s *DefaultAvailabilityService) IsRangeFree(ctx context.Context, villaKey string, from, to time.Time) (bool, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	today := startOfDay(now())
	if from.Before(today) {
		return false, nil
	}

	blocked, err := s.Repo.GetByVilla(ctx, villaKey)
	if err != nil {
		return false, err
	}
	for _, b := range blocked {
		if b.Overlaps(from, to) {
			return false, nil
		}
	}
	return true, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
