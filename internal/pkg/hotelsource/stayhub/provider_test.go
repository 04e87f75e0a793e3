package stayhub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/hotelsource"
)

func newTestProvider(serverURL string) *Provider {
	return NewProvider(hotelsource.SourceConfig{
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
	})
}

func testQuery() dto.HotelQuery {
	return dto.HotelQuery{
		Destination: "BCN",
		CheckIn:     "2025-07-10",
		CheckOut:    "2025-07-14",
		Adults:      2,
		Rooms:       1,
		Currency:    "USD",
		Limit:       10,
	}
}

func TestProvider_Search(t *testing.T) {
	t.Run("maps_hotels_to_offers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req SearchRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode request: %v", err)
			}
			if req.DestinationCode != "BCN" {
				t.Errorf("expected destination BCN, got %s", req.DestinationCode)
			}

			json.NewEncoder(w).Encode(SearchResponse{
				Hotels: []Hotel{{
					HotelID:          "sh-101",
					Name:             "Casa Mar",
					StarRating:       4.4,
					Reviews:          812,
					RatePerNight:     120,
					TotalRate:        480,
					Fees:             35,
					Currency:         "USD",
					Amenities:        []string{"wifi", "pool"},
					CenterDistanceKm: 1.2,
					BreakfastRate:    true,
					FreeCancellation: true,
				}},
				SearchMetadata: SearchMetadata{
					Location: "Barcelona",
					Nights:   4,
					Guests:   2,
					CheckIn:  "2025-07-10",
					CheckOut: "2025-07-14",
				},
			})
		}))
		defer server.Close()

		offers, meta, err := newTestProvider(server.URL).Search(context.Background(), testQuery())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(offers) != 1 {
			t.Fatalf("expected 1 offer, got %d", len(offers))
		}

		offer := offers[0]
		if offer.ID != "sh-101_stayhub" {
			t.Errorf("expected id sh-101_stayhub, got %s", offer.ID)
		}
		if offer.Source != SourceName {
			t.Errorf("expected source %s, got %s", SourceName, offer.Source)
		}
		if offer.TotalPrice != 515 {
			t.Errorf("expected total rate plus fees 515, got %v", offer.TotalPrice)
		}
		if !offer.Breakfast || !offer.FreeCancellation {
			t.Error("expected breakfast and free cancellation flags mapped")
		}
		if meta.Nights != 4 || meta.Location != "Barcelona" {
			t.Errorf("metadata not mapped: %+v", meta)
		}
	})

	t.Run("truncates_to_limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hotels := make([]Hotel, 15)
			for i := range hotels {
				hotels[i] = Hotel{HotelID: "sh", RatePerNight: 100, TotalRate: 400}
			}
			json.NewEncoder(w).Encode(SearchResponse{Hotels: hotels})
		}))
		defer server.Close()

		query := testQuery()
		query.Limit = 10

		offers, _, err := newTestProvider(server.URL).Search(context.Background(), query)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(offers) != 10 {
			t.Fatalf("expected offers truncated to 10, got %d", len(offers))
		}
	})

	t.Run("non_200_is_source_unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, _, err := newTestProvider(server.URL).Search(context.Background(), testQuery())
		if err == nil {
			t.Fatal("expected error for upstream failure")
		}
	})
}
