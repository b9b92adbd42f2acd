package models

import "time"

// BlockedPeriod is a date range during which a villa cannot be booked.
// Dates are inclusive of From and exclusive of To, matching night counting.
type BlockedPeriod struct {
	VillaKey string    `bson:"villa_key" json:"villaKey"`
	From     time.Time `bson:"from" json:"from"`
	To       time.Time `bson:"to" json:"to"`
	Reason   string    `bson:"reason,omitempty" json:"reason,omitempty"` // e.g. "booked", "maintenance".
}

// Overlaps reports whether the half-open range [from, to) intersects the
// blocked period.
func (b BlockedPeriod) Overlaps(from, to time.Time) bool {
	return from.Before(b.To) && to.After(b.From)
}
