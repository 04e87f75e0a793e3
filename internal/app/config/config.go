package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Sources  Sources    `mapstructure:",squash"`
	Hotels   Hotels     `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Engine   Engine     `mapstructure:",squash"`
	Session  Session    `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Sources holds the flight source configuration. url will route to mock source
type SkyFareSource struct {
	SearchAPIURL string        `mapstructure:"SKYFARE_SOURCE_SEARCH_API_URL"`
	Timeout      time.Duration `mapstructure:"SKYFARE_SOURCE_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"SKYFARE_SOURCE_RATE_LIMIT"`
}

type BackendAPISource struct {
	SearchAPIURL string        `mapstructure:"BACKEND_API_SOURCE_SEARCH_API_URL"`
	Timeout      time.Duration `mapstructure:"BACKEND_API_SOURCE_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"BACKEND_API_SOURCE_RATE_LIMIT"`
}

type Sources struct {
	SkyFare    SkyFareSource    `mapstructure:",squash"`
	BackendAPI BackendAPISource `mapstructure:",squash"`
}

type StayHubSource struct {
	SearchAPIURL string        `mapstructure:"STAYHUB_SOURCE_SEARCH_API_URL"`
	Timeout      time.Duration `mapstructure:"STAYHUB_SOURCE_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"STAYHUB_SOURCE_RATE_LIMIT"`
}

type Hotels struct {
	StayHub StayHubSource `mapstructure:",squash"`
}

// Engine holds the search engine tunables. These are deployment knobs, not
// business rules; defaults live in the loader.
type Engine struct {
	DateToleranceDays    int     `mapstructure:"ENGINE_DATE_TOLERANCE_DAYS"`
	MaxRoundTrips        int     `mapstructure:"ENGINE_MAX_ROUND_TRIPS"`
	MaxBundles           int     `mapstructure:"ENGINE_MAX_BUNDLES"`
	RoundTripSavings     float64 `mapstructure:"ENGINE_ROUND_TRIP_SAVINGS"`
	BundleDiscount       float64 `mapstructure:"ENGINE_BUNDLE_DISCOUNT"`
	SyntheticFlightCount int     `mapstructure:"ENGINE_SYNTHETIC_FLIGHT_COUNT"`
}

type Session struct {
	TTL time.Duration `mapstructure:"SESSION_TTL"`
}
