package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource"
	"github.com/tripvera/travel-search-service/internal/pkg/hotelsource"
)

func TestMain(m *testing.M) {
	if err := dto.InitValidator(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testTunables() Tunables {
	return Tunables{
		RoundTripSavings: 25,
		BundleDiscount:   50,
		MaxRoundTrips:    10,
		MaxBundles:       10,
	}
}

func baseRequest() dto.SearchRequest {
	return dto.SearchRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-07-10",
		Passengers:    dto.Passengers{Adults: 1},
		CabinClass:    "economy",
		Currency:      "USD",
	}
}

func testFlight(id, origin, destination string, price float64, stops int) dto.FlightOption {
	departure := time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)
	arrival := departure.Add(6 * time.Hour)

	return dto.FlightOption{
		ID:           id,
		Source:       "skyfare",
		Airline:      dto.Airline{Name: "Vera Air", Code: "VA"},
		FlightNumber: "VA100",
		Departure: dto.FlightPoint{
			Airport:   origin,
			Date:      departure.Format(dto.DateLayout),
			Time:      departure.Format("15:04"),
			Timestamp: departure.Unix(),
		},
		Arrival: dto.FlightPoint{
			Airport:   destination,
			Date:      arrival.Format(dto.DateLayout),
			Time:      arrival.Format("15:04"),
			Timestamp: arrival.Unix(),
		},
		Duration: dto.Duration{TotalMinutes: 360},
		Stops:    stops,
		Price:    dto.Price{Amount: price, Currency: "USD"},
	}
}

type searchMocks struct {
	chain    *MockFlightSearcher
	sessions *MockSearchSessions
	hotels   []*hotelsource.MockHotelSource
}

func newSearchService(t *testing.T, hotelCount int) (*SearchService, searchMocks) {
	t.Helper()

	mocks := searchMocks{
		chain:    NewMockFlightSearcher(t),
		sessions: NewMockSearchSessions(t),
	}

	sources := make([]hotelsource.HotelSource, 0, hotelCount)
	for i := 0; i < hotelCount; i++ {
		m := hotelsource.NewMockHotelSource(t)
		mocks.hotels = append(mocks.hotels, m)
		sources = append(sources, m)
	}

	svc := NewSearchService(mocks.chain, sources, mocks.sessions, testTunables()).
		WithNow(func() time.Time { return testNow })

	return svc, mocks
}

func TestSearchService_Search(t *testing.T) {
	t.Run("one_way_search_success", func(t *testing.T) {
		svc, mocks := newSearchService(t, 0)
		req := baseRequest()

		mocks.chain.On("Search", mock.Anything, req).Return(
			[]dto.FlightOption{
				testFlight("f1", "JFK", "LAX", 320, 0),
				testFlight("f2", "JFK", "LAX", 250, 1),
			},
			flightsource.Outcome{Source: "skyfare"},
		)

		result, err := svc.Search(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.SearchID == "" {
			t.Error("expected a search id")
		}
		if len(result.Flights) != 2 {
			t.Fatalf("expected 2 flights, got %d", len(result.Flights))
		}
		if result.Metadata.Source != "skyfare" {
			t.Errorf("expected winning source skyfare, got %s", result.Metadata.Source)
		}
		if result.Metadata.FallbackUsed {
			t.Error("expected no fallback for primary success")
		}
		if result.Metadata.TotalResults != 2 {
			t.Errorf("expected total results 2, got %d", result.Metadata.TotalResults)
		}
		if result.Recommendations.BestPrice != "f2" {
			t.Errorf("expected best price f2, got %s", result.Recommendations.BestPrice)
		}
		if len(result.RoundTrips) != 0 {
			t.Error("one-way search must not build round trips")
		}
	})

	t.Run("invalid_request_fails_before_any_source", func(t *testing.T) {
		svc, _ := newSearchService(t, 0)
		req := baseRequest()
		req.Destination = req.Origin

		if _, err := svc.Search(context.Background(), req); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("exhausted_chain_is_not_found", func(t *testing.T) {
		svc, mocks := newSearchService(t, 0)
		req := baseRequest()

		mocks.chain.On("Search", mock.Anything, req).Return(
			nil,
			flightsource.Outcome{FallbackUsed: true, FallbackReason: "skyfare: timeout"},
		)

		_, err := svc.Search(context.Background(), req)
		if !errors.Is(err, ErrNoFlightsFound) {
			t.Fatalf("expected ErrNoFlightsFound, got %v", err)
		}
	})

	t.Run("round_trip_builds_priced_packages", func(t *testing.T) {
		svc, mocks := newSearchService(t, 0)
		req := baseRequest()
		req.ReturnDate = "2025-07-17"

		mocks.chain.On("Search", mock.Anything, req).Return(
			[]dto.FlightOption{testFlight("out1", "JFK", "LAX", 300, 0)},
			flightsource.Outcome{Source: "skyfare"},
		)
		mocks.chain.On("Search", mock.Anything, req.ReturnLeg()).Return(
			[]dto.FlightOption{testFlight("ret1", "LAX", "JFK", 280, 0)},
			flightsource.Outcome{Source: "skyfare"},
		)

		result, err := svc.Search(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(result.RoundTrips) != 1 {
			t.Fatalf("expected 1 round-trip package, got %d", len(result.RoundTrips))
		}

		pkg := result.RoundTrips[0]
		if pkg.TotalPrice != 580 {
			t.Errorf("expected package total 580, got %v", pkg.TotalPrice)
		}
		if pkg.Savings != 25 {
			t.Errorf("expected configured savings 25, got %v", pkg.Savings)
		}
	})

	t.Run("missing_return_leg_skips_packages", func(t *testing.T) {
		svc, mocks := newSearchService(t, 0)
		req := baseRequest()
		req.ReturnDate = "2025-07-17"

		mocks.chain.On("Search", mock.Anything, req).Return(
			[]dto.FlightOption{testFlight("out1", "JFK", "LAX", 300, 0)},
			flightsource.Outcome{Source: "skyfare"},
		)
		mocks.chain.On("Search", mock.Anything, req.ReturnLeg()).Return(
			nil, flightsource.Outcome{FallbackUsed: true},
		)

		result, err := svc.Search(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(result.RoundTrips) != 0 {
			t.Error("expected no round trips without a return leg")
		}
		if len(result.Flights) != 1 {
			t.Error("one-way results must still be returned")
		}
	})

	t.Run("vacation_packages_use_hotel_fallback", func(t *testing.T) {
		svc, mocks := newSearchService(t, 2)
		req := baseRequest()
		req.ReturnDate = "2025-07-17"
		req.IncludeHotels = true

		mocks.chain.On("Search", mock.Anything, req).Return(
			[]dto.FlightOption{testFlight("out1", "JFK", "LAX", 300, 0)},
			flightsource.Outcome{Source: "skyfare"},
		)
		mocks.chain.On("Search", mock.Anything, req.ReturnLeg()).Return(
			[]dto.FlightOption{testFlight("ret1", "LAX", "JFK", 280, 0)},
			flightsource.Outcome{Source: "skyfare"},
		)

		mocks.hotels[0].On("Name").Return("stayhub")
		mocks.hotels[0].On("Search", mock.Anything, mock.Anything).Return(
			nil, dto.HotelSearchMetadata{}, errors.New("connection refused"))

		mocks.hotels[1].On("Search", mock.Anything, mock.MatchedBy(func(q dto.HotelQuery) bool {
			return q.Destination == "LAX" && q.CheckIn == "2025-07-10" &&
				q.CheckOut == "2025-07-17" && q.Limit == 10 && q.Rooms == 1
		})).Return(
			[]dto.HotelOffer{{ID: "h1", TotalPrice: 400, Currency: "USD"}},
			dto.HotelSearchMetadata{Nights: 7}, nil)

		result, err := svc.Search(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(result.Vacations) != 1 {
			t.Fatalf("expected 1 vacation package, got %d", len(result.Vacations))
		}

		vac := result.Vacations[0]
		if vac.TotalPrice != 980 {
			t.Errorf("expected flight+hotel total 980, got %v", vac.TotalPrice)
		}
		if vac.BundleSavings != 75 {
			t.Errorf("expected bundle discount plus flight savings 75, got %v", vac.BundleSavings)
		}
		if vac.DiscountedTotal != 905 {
			t.Errorf("expected discounted total 905, got %v", vac.DiscountedTotal)
		}
	})

	t.Run("superseded_search_is_flagged", func(t *testing.T) {
		svc, mocks := newSearchService(t, 0)
		req := baseRequest()
		req.ClientKey = "client-1"

		mocks.sessions.On("Begin", mock.Anything, "client-1", mock.Anything).Return(nil)
		mocks.sessions.On("Superseded", mock.Anything, "client-1", mock.Anything).Return(true)
		mocks.chain.On("Search", mock.Anything, req).Return(
			[]dto.FlightOption{testFlight("f1", "JFK", "LAX", 300, 0)},
			flightsource.Outcome{Source: "skyfare"},
		)

		result, err := svc.Search(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !result.Metadata.Superseded {
			t.Error("expected superseded flag when a newer search started")
		}
	})

	t.Run("filters_applied_to_final_list", func(t *testing.T) {
		svc, mocks := newSearchService(t, 0)
		req := baseRequest()
		req.FilterOption = &dto.FilterOption{DirectOnly: true}

		mocks.chain.On("Search", mock.Anything, req).Return(
			[]dto.FlightOption{
				testFlight("direct", "JFK", "LAX", 320, 0),
				testFlight("one_stop", "JFK", "LAX", 250, 1),
			},
			flightsource.Outcome{Source: "skyfare"},
		)

		result, err := svc.Search(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(result.Flights) != 1 || result.Flights[0].ID != "direct" {
			t.Fatalf("expected only the direct flight, got %+v", result.Flights)
		}
		if result.ActiveFilters == nil || !result.ActiveFilters.DirectOnly {
			t.Error("expected active filters echoed in the result")
		}
	})
}
