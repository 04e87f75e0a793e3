package flight

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tripvera/travel-search-service/internal/app/dto"
)

func TestRankFlights(t *testing.T) {
	flights := []dto.FlightOption{
		{
			ID:       "1",
			Price:    dto.Price{Amount: 400},
			Duration: dto.Duration{TotalMinutes: 420},
			Stops:    0,
			Baggage:  dto.Baggage{CarryOn: true, CheckedIncluded: 1},
		},
		{
			ID:       "2",
			Price:    dto.Price{Amount: 900},
			Duration: dto.Duration{TotalMinutes: 700},
			Stops:    2,
			Baggage:  dto.Baggage{},
		},
	}

	rankRequest := func(flights []dto.FlightOption, wantBestID string) func(t *testing.T) {
		return func(t *testing.T) {
			fCopy := make([]dto.FlightOption, len(flights))
			copy(fCopy, flights)

			got := RankFlights(fCopy)

			bestScore := -1.0
			var gotBestID string
			for _, f := range got {
				if f.Score > bestScore {
					bestScore = f.Score
					gotBestID = f.ID
				}
			}

			if gotBestID != wantBestID {
				t.Fatalf("expected best flight ID %s, got %s", wantBestID, gotBestID)
			}
		}
	}

	t.Run("cheap_direct_flexible_wins", rankRequest(flights, "1"))

	t.Run("scores_within_unit_interval", func(t *testing.T) {
		fCopy := make([]dto.FlightOption, len(flights))
		copy(fCopy, flights)

		for _, f := range RankFlights(fCopy) {
			if f.Score < 0 || f.Score > 1 {
				t.Fatalf("score out of [0,1]: %f for %s", f.Score, f.ID)
			}
		}
	})
}

func TestNormalizeValue(t *testing.T) {
	normalizeRequest := func(val, min, max, want float64) func(t *testing.T) {
		return func(t *testing.T) {
			got := normalizeValue(val, min, max)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("normalizeValue mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("mid_value", normalizeRequest(15, 10, 20, 0.5))
	t.Run("min_value", normalizeRequest(10, 10, 20, 0.0))
	t.Run("max_value", normalizeRequest(20, 10, 20, 1.0))
	t.Run("division_by_zero_safety", normalizeRequest(10, 10, 10, 0.0))
}

func TestRecommend(t *testing.T) {
	flights := []dto.FlightOption{
		{ID: "cheap", Price: dto.Price{Amount: 100}, Duration: dto.Duration{TotalMinutes: 600}, Stops: 2, Score: 0.4, Departure: dto.FlightPoint{Timestamp: 10}},
		{ID: "fast", Price: dto.Price{Amount: 500}, Duration: dto.Duration{TotalMinutes: 300}, Stops: 1, Score: 0.6, Departure: dto.FlightPoint{Timestamp: 20}},
		{ID: "direct", Price: dto.Price{Amount: 400}, Duration: dto.Duration{TotalMinutes: 350}, Stops: 0, Score: 0.9, Departure: dto.FlightPoint{Timestamp: 30}},
	}

	got := Recommend(flights)

	want := dto.Recommendations{
		BestPrice:      "cheap",
		BestValue:      "direct",
		Fastest:        "fast",
		MostConvenient: "direct",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Recommend mismatch (-want +got):\n%s", diff)
	}
}

func TestRecommend_Empty(t *testing.T) {
	got := Recommend(nil)
	if got != (dto.Recommendations{}) {
		t.Fatalf("expected empty recommendations, got %+v", got)
	}
}
