package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"nestulasli/config"
)

type ExchangeRateAPIResponse struct {
	Result string             `json:"result"`
	Base   string             `json:"base_code"`
	Rates  map[string]float64 `json:"conversion_rates"`
}

// FetchExchangeRates fetches the full conversion-rate map for the given base
// currency from ExchangeRate-API. Callers treat any error as non-fatal and
// keep whatever table they already have.
func FetchExchangeRates(base string) (map[string]float64, error) {
	url := fmt.Sprintf("https://v6.exchangerate-api.com/v6/%s/latest/%s", config.AppConfig.ExchangeRateAPIKey, base)

	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	var rateResp ExchangeRateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&rateResp); err != nil {
		return nil, fmt.Errorf("decoding response failed: %w", err)
	}

	if rateResp.Result != "success" {
		return nil, fmt.Errorf("exchange API returned failure result")
	}
	if len(rateResp.Rates) == 0 {
		return nil, fmt.Errorf("exchange API returned no rates")
	}
	return rateResp.Rates, nil
}

// RoundMoney rounds an amount to two decimal places for display.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
