package models

// Enhancements holds the optional add-ons a guest can attach to a stay.
type Enhancements struct {
	PrivateChef  bool `json:"privateChef"`  // Chef dinner service, charged per night.
	QuadHours    int  `json:"quadHours"`    // Quad-bike rental hours, independent of stay length.
	TransferWays int  `json:"transferWays"` // Airport transfer legs (0–2); waived on long stays.
}

// StayRequest is the ephemeral input for a quote. Dates use "YYYY-MM-DD";
// either endpoint may be empty, in which case the stay has zero nights.
type StayRequest struct {
	VillaKey        string       `json:"villaKey"`
	CheckIn         string       `json:"checkIn,omitempty"`
	CheckOut        string       `json:"checkOut,omitempty"`
	Adults          int          `json:"adults"`
	ChildrenOverTwo int          `json:"childrenOverTwo"` // Counted for capacity and the extra-guest fee.
	InfantsUnderTwo int          `json:"infantsUnderTwo"` // Display only; free of charge.
	Enhancements    Enhancements `json:"enhancements"`
	Note            string       `json:"note,omitempty"`
}

// PartySize returns the occupant count that matters for capacity and
// surcharges, i.e. everyone except infants.
func (s StayRequest) PartySize() int {
	return s.Adults + s.ChildrenOverTwo
}

// Clamped returns a copy with out-of-range numeric inputs pulled back to
// their minimums. Clamping happens here, at the binding boundary, so the
// engines themselves stay total functions over sane inputs.
func (s StayRequest) Clamped() StayRequest {
	if s.Adults < 1 {
		s.Adults = 1
	}
	if s.ChildrenOverTwo < 0 {
		s.ChildrenOverTwo = 0
	}
	if s.InfantsUnderTwo < 0 {
		s.InfantsUnderTwo = 0
	}
	if s.Enhancements.QuadHours < 0 {
		s.Enhancements.QuadHours = 0
	}
	if s.Enhancements.TransferWays < 0 {
		s.Enhancements.TransferWays = 0
	}
	if s.Enhancements.TransferWays > 2 {
		s.Enhancements.TransferWays = 2
	}
	return s
}
