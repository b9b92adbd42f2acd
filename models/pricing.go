package models

// PricingConfig carries every fee constant the quote engine uses. It is
// injected configuration so the engine can be exercised against varied
// business rules; the shipped defaults live in the config package.
type PricingConfig struct {
	ServiceFeeRate         float64 `mapstructure:"service_fee_rate" json:"serviceFeeRate"`
	ExtraGuestFeePerNight  float64 `mapstructure:"extra_guest_fee_per_night" json:"extraGuestFeePerNight"`
	IncludedGuests         int     `mapstructure:"included_guests" json:"includedGuests"`
	ChefFeePerNight        float64 `mapstructure:"chef_fee_per_night" json:"chefFeePerNight"`
	QuadRatePerHour        float64 `mapstructure:"quad_rate_per_hour" json:"quadRatePerHour"`
	TransferRatePerWay     float64 `mapstructure:"transfer_rate_per_way" json:"transferRatePerWay"`
	TransferIncludedNights int     `mapstructure:"transfer_included_nights" json:"transferIncludedNights"`
	CleaningFee            float64 `mapstructure:"cleaning_fee" json:"cleaningFee"`
	Deposit                float64 `mapstructure:"deposit" json:"deposit"`
	MinNights              int     `mapstructure:"min_nights" json:"minNights"`
	MarketingRampYears     int     `mapstructure:"marketing_ramp_years" json:"marketingRampYears"`
}
