package hotelsource

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/tripvera/travel-search-service/internal/app/dto"
)

// SourceConfig configures one hotel data source.
type SourceConfig struct {
	BaseURL      string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// HotelSource is one hotel data provider. Adapters normalize their wire
// format into dto.HotelOffer at this boundary.
type HotelSource interface {
	Name() string
	Search(ctx context.Context, query dto.HotelQuery) ([]dto.HotelOffer, dto.HotelSearchMetadata, error)
}
