// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"nestulasli/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds enquiry sessions.
	SessionCacheClient *redis.Client
	// RatesCacheClient holds the last fetched currency-rate table.
	RatesCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for enquiry sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the enquiry-session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitRatesCache initializes the Redis client for the currency-rate table.
func InitRatesCache() {
	RatesCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRatesDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := RatesCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Rates): %v", err)
	}
}

// GetRatesCacheClient returns the currency-rate cache client.
func GetRatesCacheClient() *redis.Client {
	if RatesCacheClient == nil {
		InitRatesCache()
	}
	return RatesCacheClient
}
