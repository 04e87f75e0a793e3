package stayhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource/sourceutils"
	"github.com/tripvera/travel-search-service/internal/pkg/hotelsource"
)

const SourceName = "stayhub"

// Provider calls the StayHub hotel API, the primary hotel data source.
type Provider struct {
	searchURL    string
	timeout      time.Duration
	limiter      *redis_rate.Limiter
	rateLimitRPS int
	client       *http.Client
}

func NewProvider(config hotelsource.SourceConfig) *Provider {
	return &Provider{
		searchURL:    config.BaseURL,
		timeout:      config.Timeout,
		limiter:      config.Limiter,
		rateLimitRPS: config.RateLimitRPS,
		client:       &http.Client{Timeout: config.Timeout},
	}
}

func (p *Provider) Name() string { return SourceName }

func (p *Provider) Search(ctx context.Context, query dto.HotelQuery) ([]dto.HotelOffer, dto.HotelSearchMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if p.limiter != nil {
		res, err := p.limiter.Allow(ctx, fmt.Sprintf("limit:%s", SourceName),
			redis_rate.PerSecond(p.rateLimitRPS))
		if err != nil {
			return nil, dto.HotelSearchMetadata{}, fmt.Errorf("failed to rate limit: %w", err)
		}

		if res.Allowed == 0 {
			return nil, dto.HotelSearchMetadata{}, sourceutils.ErrRateLimitExceeded
		}
	}

	payload, err := json.Marshal(SearchRequest{
		DestinationCode: query.Destination,
		CheckIn:         query.CheckIn,
		CheckOut:        query.CheckOut,
		Adults:          query.Adults,
		Children:        query.Children,
		Rooms:           query.Rooms,
		Currency:        query.Currency,
		MaxResults:      query.Limit,
	})
	if err != nil {
		return nil, dto.HotelSearchMetadata{}, fmt.Errorf("marshal hotel request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.searchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, dto.HotelSearchMetadata{}, fmt.Errorf("build hotel request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, dto.HotelSearchMetadata{}, fmt.Errorf("call stayhub search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, dto.HotelSearchMetadata{}, fmt.Errorf("stayhub search API status %d: %w",
			resp.StatusCode, sourceutils.ErrSourceUnavailable)
	}

	var response SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, dto.HotelSearchMetadata{}, fmt.Errorf("decode stayhub response: %w", err)
	}

	offers := p.hotelsToDTO(response.Hotels, query.Limit)

	return offers, dto.HotelSearchMetadata{
		Location: response.SearchMetadata.Location,
		Nights:   response.SearchMetadata.Nights,
		Guests:   response.SearchMetadata.Guests,
		CheckIn:  response.SearchMetadata.CheckIn,
		CheckOut: response.SearchMetadata.CheckOut,
	}, nil
}

func (p *Provider) hotelsToDTO(hotels []Hotel, limit int) []dto.HotelOffer {
	if limit > 0 && len(hotels) > limit {
		hotels = hotels[:limit]
	}

	offers := make([]dto.HotelOffer, len(hotels))
	for i, h := range hotels {
		offers[i] = dto.HotelOffer{
			ID:               fmt.Sprintf("%s_%s", h.HotelID, SourceName),
			Source:           SourceName,
			Name:             h.Name,
			Rating:           h.StarRating,
			ReviewCount:      h.Reviews,
			NightlyPrice:     h.RatePerNight,
			TotalPrice:       h.TotalRate + h.Fees,
			Currency:         h.Currency,
			Amenities:        h.Amenities,
			DistanceKm:       h.CenterDistanceKm,
			Breakfast:        h.BreakfastRate,
			FreeCancellation: h.FreeCancellation,
		}
	}

	return offers
}
