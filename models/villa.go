package models

// Villa represents one of the bookable properties. Villas are static
// configuration: they are loaded once at startup and never edited through
// the booking flow.
type Villa struct {
	Key         string  `bson:"key" json:"key"`                  // Stable identifier (e.g., "ALYA").
	Name        string  `bson:"name" json:"name"`                // Display label.
	NightlyRate float64 `bson:"nightly_rate" json:"nightlyRate"` // Base accommodation price per night, EUR.
	Capacity    int     `bson:"capacity" json:"capacity"`        // Maximum occupants excluding infants.
}
