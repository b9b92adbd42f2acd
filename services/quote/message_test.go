package quote

import (
	"strings"
	"testing"
	"time"

	"nestulasli/models"
)

func exampleInput() Input {
	return Input{
		Villa:           testVilla(),
		CheckIn:         date(2026, time.June, 10),
		CheckOut:        date(2026, time.June, 15),
		Adults:          3,
		ChildrenOverTwo: 1,
		InfantsUnderTwo: 1,
	}
}

func TestEnquiryMessageLineOrder(t *testing.T) {
	in := exampleInput()
	q := Compute(in, testPricing())
	msg := EnquiryMessage(in, q, testPricing())

	lines := strings.Split(msg, "\n")
	wantPrefixes := []string{
		"Hello NEST ULASLI",
		"Villa: ALYA",
		"Check-in: 10 Jun 2026",
		"Check-out: 15 Jun 2026",
		"Nights: 5",
		"Guests: 3 adults, 1 children (over 2), 1 infants (0–2)",
		"Included guests: 2; Extra chargeable guests: 2",
		"Private chef: not requested",
		"Quad bikes: not requested",
		"Airport transfer: not requested",
		"Estimate: € 5932.50 (excl. refundable deposit € 500)",
	}
	if len(lines) != len(wantPrefixes) {
		t.Fatalf("message has %d lines, want %d:\n%s", len(lines), len(wantPrefixes), msg)
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

func TestEnquiryMessagePlaceholdersAndNote(t *testing.T) {
	in := exampleInput()
	in.CheckIn = time.Time{}
	in.CheckOut = time.Time{}
	in.Note = "We arrive late in the evening"
	q := Compute(in, testPricing())
	msg := EnquiryMessage(in, q, testPricing())

	if !strings.Contains(msg, "Check-in: –") || !strings.Contains(msg, "Check-out: –") {
		t.Errorf("missing date placeholders:\n%s", msg)
	}
	if !strings.HasSuffix(msg, "Note: We arrive late in the evening") {
		t.Errorf("note should be the final line:\n%s", msg)
	}

	in.Note = ""
	msg = EnquiryMessage(in, Compute(in, testPricing()), testPricing())
	if strings.Contains(msg, "Note:") {
		t.Errorf("empty note should not produce a line:\n%s", msg)
	}
}

func TestNightsFromMessageRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{"five nights", date(2026, time.June, 10), date(2026, time.June, 15)},
		{"no dates", time.Time{}, time.Time{}},
		{"long stay", date(2026, time.July, 1), date(2026, time.July, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := exampleInput()
			in.CheckIn, in.CheckOut = tt.checkIn, tt.checkOut
			q := Compute(in, testPricing())
			msg := EnquiryMessage(in, q, testPricing())
			if got := NightsFromMessage(msg); got != q.Nights {
				t.Errorf("NightsFromMessage() = %d, want %d", got, q.Nights)
			}
		})
	}

	if got := NightsFromMessage("no such line"); got != -1 {
		t.Errorf("NightsFromMessage() on foreign text = %d, want -1", got)
	}
}

func TestEnhancementStatusLines(t *testing.T) {
	in := exampleInput()
	in.CheckIn = date(2026, time.June, 10)
	in.CheckOut = date(2026, time.June, 18) // 8 nights, transfers waived
	in.Enhancements = models.Enhancements{PrivateChef: true, QuadHours: 3, TransferWays: 2}
	q := Compute(in, testPricing())
	msg := EnquiryMessage(in, q, testPricing())

	if !strings.Contains(msg, "Private chef: requested (8 nights)") {
		t.Errorf("chef status missing:\n%s", msg)
	}
	if !strings.Contains(msg, "Quad bikes: 3 hours") {
		t.Errorf("quad status missing:\n%s", msg)
	}
	if !strings.Contains(msg, "Airport transfer: included free (7+ nights)") {
		t.Errorf("transfer waiver status missing:\n%s", msg)
	}
}

func TestOutboundLinksAreURLSafe(t *testing.T) {
	in := exampleInput()
	in.Note = "sea view & breakfast?"
	q := Compute(in, testPricing())
	msg := EnquiryMessage(in, q, testPricing())

	wa := WhatsAppLink("00000000000", msg)
	if !strings.HasPrefix(wa, "https://wa.me/00000000000?text=") {
		t.Errorf("unexpected WhatsApp link: %s", wa)
	}
	for _, forbidden := range []string{"\n", " ", "&b"} {
		if strings.Contains(strings.TrimPrefix(wa, "https://wa.me/00000000000?text="), forbidden) {
			t.Errorf("WhatsApp link payload not encoded, contains %q: %s", forbidden, wa)
		}
	}

	mail := MailtoLink("reservations@nest-ulasli.com", "Booking Enquiry – ALYA", msg)
	if !strings.HasPrefix(mail, "mailto:reservations@nest-ulasli.com?subject=") {
		t.Errorf("unexpected mailto link: %s", mail)
	}
	if strings.Contains(mail[strings.Index(mail, "?"):], "\n") {
		t.Errorf("mailto payload not encoded: %s", mail)
	}
}
