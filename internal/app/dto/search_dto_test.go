package dto

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSearchRequest_ValidateAt(t *testing.T) {
	_ = InitValidator()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	validateRequest := func(req SearchRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.ValidateAt(now)
			if (err != nil) != wantErr {
				t.Fatalf("ValidateAt() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && err != nil && wantMsg != "" {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("ValidateAt() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	valid := SearchRequest{
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: "2025-06-10",
		Passengers:    Passengers{Adults: 1},
		CabinClass:    "economy",
	}

	t.Run("valid_request", validateRequest(valid, false, ""))

	t.Run("missing_origin", validateRequest(SearchRequest{
		Destination:   "CDG",
		DepartureDate: "2025-06-10",
		Passengers:    Passengers{Adults: 1},
		CabinClass:    "economy",
	}, true, "origin is a required field"))

	t.Run("same_origin_destination", validateRequest(SearchRequest{
		Origin:        "JFK",
		Destination:   "JFK",
		DepartureDate: "2025-06-10",
		Passengers:    Passengers{Adults: 1},
		CabinClass:    "economy",
	}, true, "origin and destination must differ"))

	t.Run("departure_in_past", validateRequest(SearchRequest{
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: "2025-05-20",
		Passengers:    Passengers{Adults: 1},
		CabinClass:    "economy",
	}, true, "departure_date must not be in the past"))

	t.Run("return_before_departure", validateRequest(SearchRequest{
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: "2025-06-10",
		ReturnDate:    "2025-06-09",
		Passengers:    Passengers{Adults: 1},
		CabinClass:    "economy",
	}, true, "return_date must not be before departure_date"))

	t.Run("bad_date_format", validateRequest(SearchRequest{
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: "10/06/2025",
		Passengers:    Passengers{Adults: 1},
		CabinClass:    "economy",
	}, true, "departure_date must use format 2006-01-02"))

	t.Run("invalid_sort_field", validateRequest(SearchRequest{
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: "2025-06-10",
		Passengers:    Passengers{Adults: 1},
		CabinClass:    "economy",
		SortOption:    &SortOption{Field: "invalid", Order: "asc"},
	}, true, "Invalid sort field invalid"))

	ptrFloat := func(f float64) *float64 { return &f }

	t.Run("invalid_price_range", validateRequest(SearchRequest{
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: "2025-06-10",
		Passengers:    Passengers{Adults: 1},
		CabinClass:    "economy",
		FilterOption: &FilterOption{
			MinPrice: ptrFloat(1000),
			MaxPrice: ptrFloat(500),
		},
	}, true, "max_price must be greater than min_price"))

	t.Run("invalid_filter_column", validateRequest(SearchRequest{
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: "2025-06-10",
		Passengers:    Passengers{Adults: 1},
		CabinClass:    "economy",
		FilterOption: &FilterOption{
			Columns: map[string]string{"seat": "12A"},
		},
	}, true, "Invalid filter column seat"))
}

func TestSearchRequest_ReturnLeg(t *testing.T) {
	req := SearchRequest{
		Origin:        "JFK",
		Destination:   "CDG",
		DepartureDate: "2025-06-10",
		ReturnDate:    "2025-06-17",
		Passengers:    Passengers{Adults: 2},
		CabinClass:    "economy",
	}

	leg := req.ReturnLeg()

	if leg.Origin != "CDG" || leg.Destination != "JFK" {
		t.Fatalf("expected swapped route, got %s -> %s", leg.Origin, leg.Destination)
	}
	if leg.DepartureDate != "2025-06-17" || leg.ReturnDate != "" {
		t.Fatalf("expected return date substituted, got departure %s return %q",
			leg.DepartureDate, leg.ReturnDate)
	}
	if !req.RoundTrip() || leg.RoundTrip() {
		t.Fatalf("RoundTrip flags wrong: req=%v leg=%v", req.RoundTrip(), leg.RoundTrip())
	}
}
