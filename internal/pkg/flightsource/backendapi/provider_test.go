package backendapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource"
)

func TestProvider_Search(t *testing.T) {
	req := dto.SearchRequest{
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: "2025-06-10",
		Passengers:    dto.Passengers{Adults: 1, Children: 1},
		CabinClass:    "economy",
		Currency:      "USD",
	}

	searchRequest := func(handler http.HandlerFunc, wantLen int, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			server := httptest.NewServer(handler)
			defer server.Close()

			provider := NewProvider(flightsource.SourceConfig{
				BaseURL: server.URL,
				Timeout: 2 * time.Second,
			})

			got, err := provider.Search(context.Background(), req)

			if wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, wantLen)
		}
	}

	t.Run("maps_flights", searchRequest(func(w http.ResponseWriter, r *http.Request) {
		var wire SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if wire.Passengers.Adults != 1 || wire.Passengers.Children != 1 || wire.CabinClass != "economy" {
			t.Errorf("unexpected wire request: %+v", wire)
		}

		_ = json.NewEncoder(w).Encode(SearchResponse{
			Success: true,
			Flights: []Flight{
				{
					FlightID:      "be-1",
					AirlineName:   "United Airlines",
					AirlineCode:   "UA",
					FlightNumber:  "UA902",
					DepartAirport: "JFK", DepartCity: "New York",
					DepartAt:      "2025-06-10T17:10:00Z",
					ArriveAirport: "CDG", ArriveCity: "Paris",
					ArriveAt:        "2025-06-11T06:45:00Z",
					DurationMinutes: 815,
					Stops:           1,
					PriceAmount:     610,
					PriceCurrency:   "USD",
					CabinClass:      "economy",
					CarryOn:         true,
					CheckedBags:     1,
				},
			},
			TotalResults: 1,
			SearchID:     "search-abc",
		})
	}, 1, false))

	t.Run("success_false_is_source_failure", searchRequest(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(SearchResponse{Success: false})
	}, 0, true))

	t.Run("http_error_is_source_failure", searchRequest(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, 0, true))
}

func TestProvider_Search_DurationDerivedFromTimes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(SearchResponse{
			Success: true,
			Flights: []Flight{
				{
					FlightID:      "be-2",
					DepartAirport: "JFK",
					DepartAt:      "2025-06-10T08:00:00Z",
					ArriveAirport: "CDG",
					ArriveAt:      "2025-06-10T15:30:00Z",
					PriceAmount:   500,
					PriceCurrency: "USD",
				},
			},
		})
	}))
	defer server.Close()

	provider := NewProvider(flightsource.SourceConfig{BaseURL: server.URL, Timeout: 2 * time.Second})

	got, err := provider.Search(context.Background(), dto.SearchRequest{
		Origin: "JFK", Destination: "CDG", DepartureDate: "2025-06-10",
	})
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 450, got[0].Duration.TotalMinutes)
	assert.Equal(t, "7h 30m", got[0].Duration.Formatted)
	assert.Equal(t, "be-2_backend", got[0].ID)
}
