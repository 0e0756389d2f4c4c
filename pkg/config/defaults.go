package config

import "time"

const (
	DefaultMongoURI          = "mongodb://127.0.0.1:27017"
	DefaultMongoDatabaseName = "tourenzo_db"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultRedisDB = 0

	DefaultPort     = "3000"
	DefaultLogLevel = "info"

	DefaultCORSAllowedOrigins = "*"

	DefaultRateLimitRequests = 120
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultTokenTTL   = 24 * time.Hour
	DefaultBcryptCost = 10

	DefaultBookingTimezone     = "UTC"
	DefaultMaxTravelers        = 50
	DefaultBookingEventsTopic  = "tourenzo.bookings"
	DefaultEventPublishTimeout = 5 * time.Second

	MinJWTSecretLength = 16
)
