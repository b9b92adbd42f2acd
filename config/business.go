package config

import (
	"log"

	"nestulasli/models"

	"github.com/spf13/viper"
)

// Business configuration: the villa table, the fee constants and the
// scenario table. These ship with working defaults and can be overridden
// from the "villas", "pricing" and "scenarios" keys of the config file.
var (
	Villas    []models.Villa
	Pricing   models.PricingConfig
	Scenarios models.ScenarioTable
)

func defaultVillas() []models.Villa {
	return []models.Villa{
		{Key: "ALYA", Name: "ALYA", NightlyRate: 700, Capacity: 8},
		{Key: "ZEHRA", Name: "ZEHRA", NightlyRate: 550, Capacity: 6},
	}
}

func defaultPricing() models.PricingConfig {
	return models.PricingConfig{
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

func defaultScenarios() models.ScenarioTable {
	return models.ScenarioTable{
		models.ScenarioPessimistic: {DailyFees: []float64{400, 350}, CostRatio: 0.40, Occupancy: 0.60},
		models.ScenarioBase:        {DailyFees: []float64{700, 550}, CostRatio: 0.35, Occupancy: 0.60},
		models.ScenarioOptimistic:  {DailyFees: []float64{1000, 800}, CostRatio: 0.30, Occupancy: 0.60},
	}
}

// loadBusinessConfig populates the business tables from defaults, then lets
// the config file override them wholesale per key.
func loadBusinessConfig() {
	Villas = defaultVillas()
	Pricing = defaultPricing()
	Scenarios = defaultScenarios()

	if viper.IsSet("villas") {
		var vs []models.Villa
		if err := viper.UnmarshalKey("villas", &vs); err != nil {
			log.Fatalf("Failed to load villa config: %v", err)
		}
		if len(vs) > 0 {
			Villas = vs
		}
	}
	if viper.IsSet("pricing") {
		if err := viper.UnmarshalKey("pricing", &Pricing); err != nil {
			log.Fatalf("Failed to load pricing config: %v", err)
		}
	}
	if viper.IsSet("scenarios") {
		var st models.ScenarioTable
		if err := viper.UnmarshalKey("scenarios", &st); err != nil {
			log.Fatalf("Failed to load scenario config: %v", err)
		}
		if len(st) > 0 {
			Scenarios = st
		}
	}
}

// VillaByKey looks up a configured villa; ok is false for unknown keys.
func VillaByKey(key string) (models.Villa, bool) {
	for _, v := range Villas {
		if v.Key == key {
			return v, true
		}
	}
	return models.Villa{}, false
}
