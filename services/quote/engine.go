package quote

import (
	"fmt"
	"time"

	"nestulasli/models"
)

// Input is everything the engine needs for one computation. CheckIn and
// CheckOut use their zero values when the guest has not picked dates yet.
type Input struct {
	Villa           models.Villa
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	ChildrenOverTwo int
	InfantsUnderTwo int
	Enhancements    models.Enhancements
	Note            string
}

// PartySize is the occupant count relevant for capacity and surcharges.
func (in Input) PartySize() int {
	return in.Adults + in.ChildrenOverTwo
}

// Nights returns the number of calendar-day boundaries between check-in and
// check-out, clamped at zero. A missing endpoint means zero nights.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	n := daysBetween(checkIn, checkOut)
	if n < 0 {
		return 0
	}
	return n
}

func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// Compute turns a stay into a price breakdown plus an eligibility verdict.
// It is a total function: every input yields a quote, with validation
// reported through flags rather than errors.
func Compute(in Input, cfg models.PricingConfig) models.Quote {
	nights := Nights(in.CheckIn, in.CheckOut)
	party := in.PartySize()

	extraGuests := party - cfg.IncludedGuests
	if extraGuests < 0 {
		extraGuests = 0
	}

	accommodation := float64(nights) * in.Villa.NightlyRate

	// All per-night fees are gated on an actual stay; quad hours are not.
	var extraGuestFee, chefFee, cleaningFee float64
	if nights > 0 {
		extraGuestFee = float64(nights) * cfg.ExtraGuestFeePerNight * float64(extraGuests)
		cleaningFee = cfg.CleaningFee
		if in.Enhancements.PrivateChef {
			chefFee = float64(nights) * cfg.ChefFeePerNight
		}
	}
	quadFee := float64(in.Enhancements.QuadHours) * cfg.QuadRatePerHour

	transferIncluded := nights >= cfg.TransferIncludedNights
	transferWays := in.Enhancements.TransferWays
	var transferFee float64
	if transferIncluded {
		transferWays = 0
	} else {
		transferFee = float64(transferWays) * cfg.TransferRatePerWay
	}

	items := []models.LineItem{
		{
			Label:    "Accommodation",
			Quantity: fmt.Sprintf("%d × € %.0f", nights, in.Villa.NightlyRate),
			Amount:   accommodation,
		},
		{
			Label:    "Extra guest fee",
			Quantity: fmt.Sprintf("%d × € %.0f × %d %s", nights, cfg.ExtraGuestFeePerNight, extraGuests, pluralGuests(extraGuests)),
			Amount:   extraGuestFee,
		},
	}
	if in.Enhancements.PrivateChef {
		items = append(items, models.LineItem{
			Label:    "Private chef",
			Quantity: fmt.Sprintf("%d × € %.0f", nights, cfg.ChefFeePerNight),
			Amount:   chefFee,
		})
	}
	if in.Enhancements.QuadHours > 0 {
		items = append(items, models.LineItem{
			Label:    "Quad bikes",
			Quantity: fmt.Sprintf("%d h × € %.0f", in.Enhancements.QuadHours, cfg.QuadRatePerHour),
			Amount:   quadFee,
		})
	}
	if transferIncluded {
		items = append(items, models.LineItem{
			Label:    "Airport transfer",
			Quantity: fmt.Sprintf("Included for stays of %d+ nights", cfg.TransferIncludedNights),
			Amount:   0,
		})
	} else if transferWays > 0 {
		items = append(items, models.LineItem{
			Label:    "Airport transfer",
			Quantity: fmt.Sprintf("%d × € %.0f", transferWays, cfg.TransferRatePerWay),
			Amount:   transferFee,
		})
	}
	items = append(items, models.LineItem{
		Label:  "Cleaning fee",
		Amount: cleaningFee,
	})

	subtotal := accommodation + extraGuestFee + chefFee + quadFee + transferFee + cleaningFee
	serviceFee := subtotal * cfg.ServiceFeeRate

	flags := models.ValidationFlags{
		DatesIncomplete: in.CheckIn.IsZero() || in.CheckOut.IsZero(),
		StayTooShort:    nights > 0 && nights < cfg.MinNights,
		OverCapacity:    party > in.Villa.Capacity,
	}

	return models.Quote{
		VillaKey:         in.Villa.Key,
		VillaName:        in.Villa.Name,
		Nights:           nights,
		ExtraGuests:      extraGuests,
		TransferIncluded: transferIncluded,
		TransferWays:     transferWays,
		Currency:         "EUR",
		Breakdown: models.PriceBreakdown{
			Items:      items,
			Subtotal:   subtotal,
			ServiceFee: serviceFee,
			Total:      subtotal + serviceFee,
			Deposit:    cfg.Deposit,
		},
		Flags:     flags,
		CanSubmit: nights >= cfg.MinNights && !flags.OverCapacity,
	}
}

func pluralGuests(n int) string {
	if n == 1 {
		return "guest"
	}
	return "guests"
}
