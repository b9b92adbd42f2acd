package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nestulasli/config"
	"nestulasli/models"
	"nestulasli/services/rates"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupBusinessConfig() {
	config.Villas = []models.Villa{
		{Key: "ALYA", Name: "ALYA", NightlyRate: 700, Capacity: 8},
		{Key: "ZEHRA", Name: "ZEHRA", NightlyRate: 550, Capacity: 6},
	}
	config.Pricing = models.PricingConfig{
		ServiceFeeRate:         0.05,
		ExtraGuestFeePerNight:  200,
		IncludedGuests:         2,
		ChefFeePerNight:        120,
		QuadRatePerHour:        50,
		TransferRatePerWay:     60,
		TransferIncludedNights: 7,
		CleaningFee:            150,
		Deposit:                500,
		MinNights:              3,
		MarketingRampYears:     2,
	}
}

func quoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	setupBusinessConfig()

	h := NewQuoteHandler(rates.NewService(nil, []string{"USD", "GBP"}, zap.NewNop()))
	r := gin.New()
	r.POST("/api/quote", h.ComputeQuoteHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestComputeQuoteHandler(t *testing.T) {
	r := quoteRouter()

	body := `{
		"villaKey": "ALYA",
		"checkIn": "2026-06-10",
		"checkOut": "2026-06-15",
		"adults": 3,
		"childrenOverTwo": 1
	}`
	w := postJSON(t, r, "/api/quote", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Quote models.Quote `json:"quote"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Quote.Nights != 5 {
		t.Errorf("nights = %d, want 5", resp.Quote.Nights)
	}
	if resp.Quote.Breakdown.Total != 5932.5 {
		t.Errorf("total = %v, want 5932.5", resp.Quote.Breakdown.Total)
	}
	if !resp.Quote.CanSubmit {
		t.Error("canSubmit = false, want true")
	}
}

func TestComputeQuoteHandlerDisplayCurrency(t *testing.T) {
	r := quoteRouter()

	body := `{"villaKey": "ZEHRA", "checkIn": "2026-06-10", "checkOut": "2026-06-13", "adults": 2}`
	w := postJSON(t, r, "/api/quote?display=USD", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Quote   models.Quote `json:"quote"`
		Display struct {
			Currency string  `json:"currency"`
			Rate     float64 `json:"rate"`
			Total    float64 `json:"total"`
		} `json:"display"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Quote.Currency != "EUR" {
		t.Errorf("quote currency = %q, want EUR", resp.Quote.Currency)
	}
	if resp.Display.Currency != "USD" || resp.Display.Rate != 1.08 {
		t.Errorf("display = %+v, want USD at default 1.08", resp.Display)
	}
}

func TestComputeQuoteHandlerRejectsBadInput(t *testing.T) {
	r := quoteRouter()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"unknown villa", `{"villaKey": "NOPE", "adults": 2}`, http.StatusNotFound},
		{"malformed date", `{"villaKey": "ALYA", "checkIn": "June 10th", "adults": 2}`, http.StatusBadRequest},
		{"invalid json", `{"villaKey": `, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postJSON(t, r, "/api/quote", tt.body); w.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
