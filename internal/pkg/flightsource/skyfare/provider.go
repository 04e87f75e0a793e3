package skyfare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource/sourceutils"
	"github.com/tripvera/travel-search-service/internal/pkg/utils"
)

const SourceName = "skyfare"

// Provider calls the Skyfare real-time flight API. Highest priority in the
// fallback chain; one attempt per search, bounded by the configured timeout.
type Provider struct {
	searchURL    string
	timeout      time.Duration
	limiter      *redis_rate.Limiter
	rateLimitRPS int
	client       *http.Client
}

func NewProvider(config flightsource.SourceConfig) *Provider {
	return &Provider{
		searchURL:    config.BaseURL,
		timeout:      config.Timeout,
		limiter:      config.Limiter,
		rateLimitRPS: config.RateLimitRPS,
		client:       &http.Client{Timeout: config.Timeout},
	}
}

func (p *Provider) Name() string { return SourceName }

func (p *Provider) Search(ctx context.Context, req dto.SearchRequest) ([]dto.FlightOption, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if p.limiter != nil {
		res, err := p.limiter.Allow(ctx, fmt.Sprintf("limit:%s", SourceName),
			redis_rate.PerSecond(p.rateLimitRPS))
		if err != nil {
			return nil, fmt.Errorf("failed to rate limit: %w", err)
		}

		if res.Allowed == 0 {
			return nil, sourceutils.ErrRateLimitExceeded
		}
	}

	payload, err := json.Marshal(SearchRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.DepartureDate,
		ReturnDate:  req.ReturnDate,
		Passengers:  req.Passengers.Adults + req.Passengers.Children,
		CheckedBags: req.CheckedBags,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.searchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call skyfare search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("skyfare search API status %d: %w",
			resp.StatusCode, sourceutils.ErrSourceUnavailable)
	}

	var response SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode skyfare response: %w", err)
	}

	// "defer to manual search" means no usable data, not a failure
	if response.Status == StatusManualSearch {
		return nil, nil
	}

	return p.itinerariesToDTO(response.Itineraries), nil
}

func (p *Provider) itinerariesToDTO(itineraries []Itinerary) []dto.FlightOption {
	results := make([]dto.FlightOption, 0, len(itineraries))

	for _, it := range itineraries {
		if len(it.Legs) == 0 {
			continue
		}

		first := it.Legs[0]
		last := it.Legs[len(it.Legs)-1]

		departAt := parseWireTime(first.DepartsAt)
		arriveAt := parseWireTime(last.ArrivesAt)
		durationMin := int(arriveAt.Sub(departAt).Minutes())

		results = append(results, dto.FlightOption{
			ID:           fmt.Sprintf("%s_%s", it.ItineraryID, SourceName),
			Source:       SourceName,
			Airline:      dto.Airline{Name: it.Carrier.DisplayName, Code: it.Carrier.IATA},
			FlightNumber: it.Carrier.FlightNumber,
			Departure: dto.FlightPoint{
				Airport:   first.From,
				City:      first.FromCity,
				Date:      departAt.Format(dto.DateLayout),
				Time:      departAt.Format("15:04"),
				Timestamp: departAt.Unix(),
			},
			Arrival: dto.FlightPoint{
				Airport:   last.To,
				City:      last.ToCity,
				Date:      arriveAt.Format(dto.DateLayout),
				Time:      arriveAt.Format("15:04"),
				Timestamp: arriveAt.Unix(),
			},
			Duration: dto.Duration{
				TotalMinutes: durationMin,
				Formatted:    utils.ConvertMinutesToDuration(int64(durationMin)),
			},
			Stops: first.StopCount + len(it.Legs) - 1,
			Price: dto.Price{
				Amount:    it.Fare.Total,
				Currency:  it.Fare.Currency,
				Formatted: utils.FormatAmount(it.Fare.Currency, it.Fare.Total),
			},
			CabinClass: first.CabinClass,
			Baggage: dto.Baggage{
				CarryOn:         it.Luggage.CabinBag,
				CheckedIncluded: it.Luggage.CheckedBags,
				PerBagCost:      it.Luggage.ExtraBagPrice,
				MaxChecked:      it.Luggage.MaxCheckedBags,
			},
			Refundable: it.Fare.Refundable,
			Changeable: it.Fare.Changeable,
			BookingURL: it.DeepLink,
		})
	}

	return results
}

func parseWireTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}

	return t
}
