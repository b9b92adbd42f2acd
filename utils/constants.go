// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis enquiry-session keys.
const SessionCachePrefix = "enquiry:"

// SessionCacheTTL is the time-to-live for enquiry sessions.
const SessionCacheTTL = 30 * time.Minute

// RatesCacheKey is the Redis key the last good rate table is stored under.
const RatesCacheKey = "rates:latest"
