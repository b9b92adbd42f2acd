package quote

import (
	"fmt"
	"time"

	"nestulasli/models"
)

const requestDateLayout = "2006-01-02"

// InputFromRequest converts a bound StayRequest into engine input,
// clamping numeric fields and parsing the date endpoints. Empty date
// strings are valid and mean "not chosen yet"; malformed ones are not.
func InputFromRequest(req models.StayRequest, villa models.Villa) (Input, error) {
	req = req.Clamped()

	in := Input{
		Villa:           villa,
		Adults:          req.Adults,
		ChildrenOverTwo: req.ChildrenOverTwo,
		InfantsUnderTwo: req.InfantsUnderTwo,
		Enhancements:    req.Enhancements,
		Note:            req.Note,
	}

	var err error
	if in.CheckIn, err = parseDate(req.CheckIn); err != nil {
		return Input{}, fmt.Errorf("invalid check-in date: %w", err)
	}
	if in.CheckOut, err = parseDate(req.CheckOut); err != nil {
		return Input{}, fmt.Errorf("invalid check-out date: %w", err)
	}

	// A reversed range is treated as the guest picking the dates in the
	// other order rather than rejected.
	if !in.CheckIn.IsZero() && !in.CheckOut.IsZero() && in.CheckOut.Before(in.CheckIn) {
		in.CheckIn, in.CheckOut = in.CheckOut, in.CheckIn
	}
	return in, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(requestDateLayout, s)
}
