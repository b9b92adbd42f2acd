package models

import "time"

// RateTable holds multiplicative conversion rates from the base currency.
// All computation happens in EUR; rates only affect display values.
type RateTable struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt,omitempty"` // Zero when the defaults are still in effect.
}

// Rate returns the conversion rate for the given currency code, falling back
// to 1 for the base currency and for anything unknown.
func (t RateTable) Rate(currency string) float64 {
	if currency == t.Base {
		return 1
	}
	if r, ok := t.Rates[currency]; ok && r > 0 {
		return r
	}
	return 1
}

// Convert applies the display rate for the given currency to an EUR amount.
func (t RateTable) Convert(amountEUR float64, currency string) float64 {
	return amountEUR * t.Rate(currency)
}
