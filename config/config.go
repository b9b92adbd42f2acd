package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	AdminJWTSecret    string `mapstructure:"ADMIN_JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisRatesDB   int    `mapstructure:"REDIS_RATES_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Availability backend: "memory" (seeded demo data) or "mongo".
	AvailabilityBackend string `mapstructure:"AVAILABILITY_BACKEND"`

	// Exchange-rate API.
	ExchangeRateAPIKey  string `mapstructure:"EXCHANGE_RATE_API_KEY"`
	RateRefreshMinutes  int    `mapstructure:"RATE_REFRESH_MINUTES"`
	DisplayCurrencies   string `mapstructure:"DISPLAY_CURRENCIES"` // Comma-separated, e.g. "USD,GBP".
	EnquiryWhatsAppE164 string `mapstructure:"ENQUIRY_WHATSAPP"`
	EnquiryEmail        string `mapstructure:"ENQUIRY_EMAIL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_RATES_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("AVAILABILITY_BACKEND", "memory")
	viper.SetDefault("EXCHANGE_RATE_API_KEY", "")
	viper.SetDefault("RATE_REFRESH_MINUTES", 60)
	viper.SetDefault("DISPLAY_CURRENCIES", "USD,GBP")
	viper.SetDefault("ENQUIRY_WHATSAPP", "00000000000")
	viper.SetDefault("ENQUIRY_EMAIL", "reservations@nest-ulasli.com")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loadBusinessConfig()
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
