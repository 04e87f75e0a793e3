package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/flight"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource"
	"github.com/tripvera/travel-search-service/internal/pkg/hotelsource"
	"github.com/tripvera/travel-search-service/internal/pkg/vacation"
)

// FlightSearcher is the fallback chain seen from the service side.
type FlightSearcher interface {
	Search(ctx context.Context, req dto.SearchRequest) ([]dto.FlightOption, flightsource.Outcome)
}

// SearchSessions tracks the latest search per client so stale results can be
// flagged when a newer search started while this one was in flight.
type SearchSessions interface {
	Begin(ctx context.Context, clientKey, searchID string) error
	Superseded(ctx context.Context, clientKey, searchID string) bool
}

// Tunables are the pricing and sizing knobs of the engine. They are
// configuration, not business rules baked into code.
type Tunables struct {
	RoundTripSavings float64
	BundleDiscount   float64
	MaxRoundTrips    int
	MaxBundles       int
}

type SearchService struct {
	Chain        FlightSearcher
	HotelSources []hotelsource.HotelSource
	Sessions     SearchSessions
	Tunables     Tunables

	now func() time.Time
}

func NewSearchService(chain FlightSearcher, hotelSources []hotelsource.HotelSource,
	sessions SearchSessions, tunables Tunables) *SearchService {
	return &SearchService{
		Chain:        chain,
		HotelSources: hotelSources,
		Sessions:     sessions,
		Tunables:     tunables,
		now:          time.Now,
	}
}

// WithNow overrides the clock used for validation and timing.
func (s *SearchService) WithNow(now func() time.Time) *SearchService {
	s.now = now

	return s
}

// Search runs one complete travel search: validate, register the search id,
// walk the flight fallback chain, rank and recommend, then build round-trip
// and vacation packages when the request asks for them, and finally apply the
// caller's filters and sort order.
// Search godoc
// @Summary      Search flights, round trips and vacation packages
// @Tags         Search
// @Description  Search flights through the source fallback chain and optionally bundle round trips and hotels
// @Param        request  body      dto.SearchRequest  true  "Search Request"
// @Success      200      {object}  dto.SearchResult
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/search [post]
func (s *SearchService) Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResult, error) {
	startTime := s.now()

	if err := req.ValidateAt(startTime); err != nil {
		return dto.SearchResult{}, err
	}

	searchID := uuid.NewString()

	if req.ClientKey != "" {
		if err := s.Sessions.Begin(ctx, req.ClientKey, searchID); err != nil {
			// a broken session registry must never block a search
			slog.WarnContext(ctx, "failed to register search session",
				slog.String("search_id", searchID),
				slog.Any("error", err))
		}
	}

	outbound, outcome := s.Chain.Search(ctx, req)
	if len(outbound) == 0 {
		slog.WarnContext(ctx, "all flight sources exhausted",
			slog.String("search_id", searchID),
			slog.String("reason", outcome.FallbackReason))

		return dto.SearchResult{}, ErrNoFlightsFound
	}

	outbound = flight.RankFlights(outbound)

	result := dto.SearchResult{
		SearchID:        searchID,
		Request:         req,
		Recommendations: flight.Recommend(outbound),
		ActiveFilters:   req.FilterOption,
	}

	if req.RoundTrip() {
		result.RoundTrips = s.buildRoundTrips(ctx, outbound, req)

		if req.IncludeHotels && len(result.RoundTrips) > 0 {
			result.Vacations = s.buildVacations(ctx, result.RoundTrips, req)
		}
	}

	filtered := flight.FilterFlights(ctx, outbound, req.FilterOption)
	result.Flights = flight.SortFlights(filtered, req.SortOption)

	result.Metadata = dto.Metadata{
		TotalResults:   len(result.Flights),
		SearchTimeMs:   int(time.Since(startTime).Milliseconds()),
		Source:         outcome.Source,
		FallbackUsed:   outcome.FallbackUsed,
		FallbackReason: outcome.FallbackReason,
	}

	if req.ClientKey != "" {
		result.Metadata.Superseded = s.Sessions.Superseded(ctx, req.ClientKey, searchID)
	}

	return result, nil
}

// buildRoundTrips searches the reversed route through the same chain and
// pairs the legs positionally.
func (s *SearchService) buildRoundTrips(ctx context.Context,
	outbound []dto.FlightOption, req dto.SearchRequest) []dto.RoundTripPackage {

	inbound, returnOutcome := s.Chain.Search(ctx, req.ReturnLeg())
	if len(inbound) == 0 {
		slog.WarnContext(ctx, "no return flights found, skipping round-trip packages",
			slog.String("reason", returnOutcome.FallbackReason))

		return nil
	}

	inbound = flight.RankFlights(inbound)

	return flight.BuildRoundTrips(ctx, outbound, inbound, req,
		s.Tunables.MaxRoundTrips, s.Tunables.RoundTripSavings)
}

// buildVacations fetches hotels through the hotel source list, first source
// that answers wins, and bundles them with the round-trip packages.
func (s *SearchService) buildVacations(ctx context.Context,
	roundTrips []dto.RoundTripPackage, req dto.SearchRequest) []dto.VacationPackage {

	rooms := req.Rooms
	if rooms == 0 {
		rooms = 1
	}

	query := dto.HotelQuery{
		Destination: req.Destination,
		CheckIn:     req.DepartureDate,
		CheckOut:    req.ReturnDate,
		Adults:      req.Passengers.Adults,
		Children:    req.Passengers.Children,
		Rooms:       rooms,
		Currency:    req.Currency,
		Limit:       vacation.HotelFetchLimit(len(roundTrips)),
	}

	hotels := s.searchHotels(ctx, query)
	if len(hotels) == 0 {
		return nil
	}

	return vacation.Bundle(roundTrips, hotels, s.Tunables.MaxBundles, s.Tunables.BundleDiscount)
}

func (s *SearchService) searchHotels(ctx context.Context, query dto.HotelQuery) []dto.HotelOffer {
	for _, source := range s.HotelSources {
		offers, _, err := source.Search(ctx, query)
		if err != nil {
			slog.WarnContext(ctx, "hotel source failed, falling through",
				slog.String("source", source.Name()),
				slog.Any("error", err))

			continue
		}

		if len(offers) > 0 {
			return offers
		}
	}

	return nil
}
