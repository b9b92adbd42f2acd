// File: database/repository/availability/memory.go
package availabilityRepo

import (
	"context"
	"sync"
	"time"

	"nestulasli/models"
)

type memoryAvailabilityRepo struct {
	mu      sync.RWMutex
	periods map[string][]models.BlockedPeriod
}

// NewMemoryAvailabilityRepo constructs an in-memory Repository seeded with
// the demo blocked ranges, for deployments without a Mongo backend.
func NewMemoryAvailabilityRepo() Repository {
	year := time.Now().Year()
	date := func(month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
	return &memoryAvailabilityRepo{
		periods: map[string][]models.BlockedPeriod{
			"ALYA": {
				{VillaKey: "ALYA", From: date(time.July, 12), To: date(time.July, 18), Reason: "booked"},
				{VillaKey: "ALYA", From: date(time.August, 3), To: date(time.August, 7), Reason: "booked"},
			},
			"ZEHRA": {
				{VillaKey: "ZEHRA", From: date(time.August, 14), To: date(time.August, 21), Reason: "booked"},
			},
		},
	}
}

func (r *memoryAvailabilityRepo) GetByVilla(_ context.Context, villaKey string) ([]models.BlockedPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.BlockedPeriod, len(r.periods[villaKey]))
	copy(out, r.periods[villaKey])
	return out, nil
}

func (r *memoryAvailabilityRepo) Add(_ context.Context, period models.BlockedPeriod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.periods[period.VillaKey] = append(r.periods[period.VillaKey], period)
	return nil
}

func (r *memoryAvailabilityRepo) DeleteByVilla(_ context.Context, villaKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.periods, villaKey)
	return nil
}
