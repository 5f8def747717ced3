package config

import "time"

const (
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	// Calendar dates are cut from incoming timestamps in this zone unless
	// HOTEL_TIMEZONE says otherwise. The host zone is never consulted.
	DefaultTimezone = "UTC"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB
	DefaultIdempotencyTTL = 24 * time.Hour

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultEventsEnabled  = false
	DefaultEventsTopic    = "hotel.bookings"
	DefaultPublishTimeout = 5 * time.Second
)
