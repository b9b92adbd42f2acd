package models

// LineItem is one row of a price breakdown.
type LineItem struct {
	Label    string  `json:"label"`
	Quantity string  `json:"quantity,omitempty"` // Human-readable hint, e.g. "5 × € 700".
	Amount   float64 `json:"amount"`             // EUR.
}

// PriceBreakdown is the itemized result of a quote computation. It is
// immutable once produced; recomputation always builds a fresh one.
type PriceBreakdown struct {
	Items      []LineItem `json:"items"`
	Subtotal   float64    `json:"subtotal"`
	ServiceFee float64    `json:"serviceFee"`
	Total      float64    `json:"total"`
	Deposit    float64    `json:"deposit"` // Refundable, due at arrival, not part of Total.
}

// ValidationFlags reports why a stay cannot be submitted. The flags are
// independent; more than one may be set at once.
type ValidationFlags struct {
	DatesIncomplete bool `json:"datesIncomplete"` // One or both range endpoints missing.
	StayTooShort    bool `json:"stayTooShort"`    // Complete range shorter than the minimum stay.
	OverCapacity    bool `json:"overCapacity"`    // Party (excl. infants) exceeds villa capacity.
}

// Any reports whether at least one validation flag is set.
func (f ValidationFlags) Any() bool {
	return f.DatesIncomplete || f.StayTooShort || f.OverCapacity
}

// Quote bundles the computed breakdown with its eligibility verdict.
type Quote struct {
	VillaKey         string          `json:"villaKey"`
	VillaName        string          `json:"villaName"`
	Nights           int             `json:"nights"`
	ExtraGuests      int             `json:"extraGuests"`
	TransferIncluded bool            `json:"transferIncluded"` // Stay long enough for free transfers.
	TransferWays     int             `json:"transferWays"`     // Effective ways after the waiver rule.
	Currency         string          `json:"currency"`         // Always "EUR"; display conversion is separate.
	Breakdown        PriceBreakdown  `json:"breakdown"`
	Flags            ValidationFlags `json:"flags"`
	CanSubmit        bool            `json:"canSubmit"`
}
