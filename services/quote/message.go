package quote

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"nestulasli/models"
)

const dateLayout = "02 Jan 2006"

// EnquiryMessage renders the plain-text hand-off summary for a computed
// quote. Line order is part of the contract consumed by the WhatsApp and
// email hand-off links.
func EnquiryMessage(in Input, q models.Quote, cfg models.PricingConfig) string {
	checkIn, checkOut := "–", "–"
	if !in.CheckIn.IsZero() {
		checkIn = in.CheckIn.Format(dateLayout)
	}
	if !in.CheckOut.IsZero() {
		checkOut = in.CheckOut.Format(dateLayout)
	}

	lines := []string{
		"Hello NEST ULASLI, I'd like to enquire about a stay.",
		fmt.Sprintf("Villa: %s", q.VillaName),
		fmt.Sprintf("Check-in: %s", checkIn),
		fmt.Sprintf("Check-out: %s", checkOut),
		fmt.Sprintf("Nights: %d", q.Nights),
		fmt.Sprintf("Guests: %d adults, %d children (over 2), %d infants (0–2)",
			in.Adults, in.ChildrenOverTwo, in.InfantsUnderTwo),
		fmt.Sprintf("Included guests: %d; Extra chargeable guests: %d @ €%.0f/night",
			cfg.IncludedGuests, q.ExtraGuests, cfg.ExtraGuestFeePerNight),
		fmt.Sprintf("Private chef: %s", chefStatus(in, q)),
		fmt.Sprintf("Quad bikes: %s", quadStatus(in)),
		fmt.Sprintf("Airport transfer: %s", transferStatus(q, cfg)),
		fmt.Sprintf("Estimate: € %.2f (excl. refundable deposit € %.0f)",
			q.Breakdown.Total, q.Breakdown.Deposit),
	}
	if in.Note != "" {
		lines = append(lines, fmt.Sprintf("Note: %s", in.Note))
	}
	return strings.Join(lines, "\n")
}

func chefStatus(in Input, q models.Quote) string {
	if !in.Enhancements.PrivateChef {
		return "not requested"
	}
	return fmt.Sprintf("requested (%d nights)", q.Nights)
}

func quadStatus(in Input) string {
	if in.Enhancements.QuadHours == 0 {
		return "not requested"
	}
	return fmt.Sprintf("%d hours", in.Enhancements.QuadHours)
}

func transferStatus(q models.Quote, cfg models.PricingConfig) string {
	if q.TransferIncluded {
		return fmt.Sprintf("included free (%d+ nights)", cfg.TransferIncludedNights)
	}
	if q.TransferWays == 0 {
		return "not requested"
	}
	return fmt.Sprintf("%d way(s)", q.TransferWays)
}

// NightsFromMessage parses the night count back out of an enquiry message.
// It returns -1 when the message carries no "Nights:" line.
func NightsFromMessage(message string) int {
	for _, line := range strings.Split(message, "\n") {
		if rest, ok := strings.CutPrefix(line, "Nights: "); ok {
			n, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return -1
			}
			return n
		}
	}
	return -1
}

// WhatsAppLink builds a wa.me link with the message embedded URL-safe.
func WhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

// MailtoLink builds a mailto: draft link for the same message.
func MailtoLink(email, subject, message string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		email, url.QueryEscape(subject), url.QueryEscape(message))
}
