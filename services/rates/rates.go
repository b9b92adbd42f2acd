// File: services/rates/rates.go
package rates

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"nestulasli/models"
	"nestulasli/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultTable is the rate table in effect until a fetch succeeds. A failed
// or slow fetch is never an error: quotes and projections keep working in
// EUR terms with these display rates.
func DefaultTable() models.RateTable {
	return models.RateTable{
		Base:  "EUR",
		Rates: map[string]float64{"EUR": 1, "USD": 1.08, "GBP": 0.86},
	}
}

// Service keeps the current display-rate table. Refreshes happen off the
// request path; readers always get whatever table is current.
type Service struct {
	mu         sync.RWMutex
	table      models.RateTable
	cache      *redis.Client
	currencies []string
	logger     *zap.Logger
}

// NewService builds a rate service seeded from the defaults, then from the
// last good table in Redis if one survives from an earlier run.
func NewService(cache *redis.Client, currencies []string, logger *zap.Logger) *Service {
	s := &Service{
		table:      DefaultTable(),
		cache:      cache,
		currencies: currencies,
		logger:     logger,
	}
	s.restore()
	return s
}

// Table returns the current rate table.
func (s *Service) Table() models.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.table
	out.Rates = make(map[string]float64, len(s.table.Rates))
	for k, v := range s.table.Rates {
		out.Rates[k] = v
	}
	return out
}

// Convert applies the current display rate to an EUR amount.
func (s *Service) Convert(amountEUR float64, currency string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Convert(amountEUR, currency)
}

// Refresh fetches fresh rates. Any failure leaves the current table in
// place; the caller decides whether to retry later.
func (s *Service) Refresh(ctx context.Context) error {
	fetched, err := utils.FetchExchangeRates("EUR")
	if err != nil {
		s.logger.Warn("rate refresh failed, keeping current table", zap.Error(err))
		return err
	}

	table := models.RateTable{
		Base:      "EUR",
		Rates:     map[string]float64{"EUR": 1},
		FetchedAt: time.Now(),
	}
	for _, code := range s.currencies {
		if rate, ok := fetched[code]; ok && rate > 0 {
			table.Rates[code] = rate
		}
	}

	s.mu.Lock()
	// Keep a previously fetched rate for any currency the new response
	// dropped, so partial data never loses a known rate.
	for code, rate := range s.table.Rates {
		if _, ok := table.Rates[code]; !ok {
			table.Rates[code] = rate
		}
	}
	s.table = table
	s.mu.Unlock()

	s.persist(ctx, table)
	s.logger.Info("rate table refreshed", zap.Int("currencies", len(table.Rates)))
	return nil
}

func (s *Service) persist(ctx context.Context, table models.RateTable) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(table)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, utils.RatesCacheKey, data, 0).Err(); err != nil {
		s.logger.Warn("failed to cache rate table", zap.Error(err))
	}
}

func (s *Service) restore() {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.cache.Get(ctx, utils.RatesCacheKey).Result()
	if err != nil {
		return
	}
	var table models.RateTable
	if err := json.Unmarshal([]byte(data), &table); err != nil || len(table.Rates) == 0 {
		return
	}
	s.mu.Lock()
	s.table = table
	s.mu.Unlock()
}
