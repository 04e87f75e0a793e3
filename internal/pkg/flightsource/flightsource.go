package flightsource

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/tripvera/travel-search-service/internal/app/dto"
)

// SourceConfig configures one flight data source. Every adapter call is a
// single attempt bounded by Timeout; the chain handles failure by falling
// through, not by retrying.
type SourceConfig struct {
	BaseURL      string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// FlightSource is one data source in the fallback chain. Adapters normalize
// their own wire format into dto.FlightOption at this boundary.
type FlightSource interface {
	Name() string
	Search(ctx context.Context, req dto.SearchRequest) ([]dto.FlightOption, error)
}
