package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource/sourceutils"
	"github.com/tripvera/travel-search-service/internal/pkg/utils"
)

const SourceName = "backend"

// Provider calls the internal backend search service, the second source in
// the fallback chain.
type Provider struct {
	searchURL string
	timeout   time.Duration
	client    *http.Client
}

func NewProvider(config flightsource.SourceConfig) *Provider {
	return &Provider{
		searchURL: config.BaseURL,
		timeout:   config.Timeout,
		client:    &http.Client{Timeout: config.Timeout},
	}
}

func (p *Provider) Name() string { return SourceName }

func (p *Provider) Search(ctx context.Context, req dto.SearchRequest) ([]dto.FlightOption, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	payload, err := json.Marshal(SearchRequest{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers: Passengers{
			Adults:   req.Passengers.Adults,
			Children: req.Passengers.Children,
			Infants:  req.Passengers.Infants,
		},
		CabinClass: req.CabinClass,
		Currency:   req.Currency,
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
		return nil, fmt.Errorf("call backend search service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend search service status %d: %w",
			resp.StatusCode, sourceutils.ErrSourceUnavailable)
	}

	var response SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode backend response: %w", err)
	}

	if !response.Success {
		return nil, fmt.Errorf("backend search reported failure: %w", sourceutils.ErrSourceUnavailable)
	}

	return p.flightsToDTO(response.Flights), nil
}

func (p *Provider) flightsToDTO(flights []Flight) []dto.FlightOption {
	results := make([]dto.FlightOption, len(flights))

	for i, f := range flights {
		departAt, _ := time.Parse(time.RFC3339, f.DepartAt)
		arriveAt, _ := time.Parse(time.RFC3339, f.ArriveAt)

		durationMin := f.DurationMinutes
		if durationMin == 0 && arriveAt.After(departAt) {
			durationMin = int(arriveAt.Sub(departAt).Minutes())
		}

		results[i] = dto.FlightOption{
			ID:           fmt.Sprintf("%s_%s", f.FlightID, SourceName),
			Source:       SourceName,
			Airline:      dto.Airline{Name: f.AirlineName, Code: f.AirlineCode},
			FlightNumber: f.FlightNumber,
			Departure: dto.FlightPoint{
				Airport:   f.DepartAirport,
				City:      f.DepartCity,
				Date:      departAt.Format(dto.DateLayout),
				Time:      departAt.Format("15:04"),
				Timestamp: departAt.Unix(),
			},
			Arrival: dto.FlightPoint{
				Airport:   f.ArriveAirport,
				City:      f.ArriveCity,
				Date:      arriveAt.Format(dto.DateLayout),
				Time:      arriveAt.Format("15:04"),
				Timestamp: arriveAt.Unix(),
			},
			Duration: dto.Duration{
				TotalMinutes: durationMin,
				Formatted:    utils.ConvertMinutesToDuration(int64(durationMin)),
			},
			Stops: f.Stops,
			Price: dto.Price{
				Amount:    f.PriceAmount,
				Currency:  f.PriceCurrency,
				Formatted: utils.FormatAmount(f.PriceCurrency, f.PriceAmount),
			},
			CabinClass: f.CabinClass,
			Baggage: dto.Baggage{
				CarryOn:         f.CarryOn,
				CheckedIncluded: f.CheckedBags,
				PerBagCost:      f.ExtraBagCost,
				MaxChecked:      f.MaxCheckedBags,
			},
			Refundable: f.Refundable,
			Changeable: f.Changeable,
			BookingURL: f.BookingURL,
		}
	}

	return results
}
