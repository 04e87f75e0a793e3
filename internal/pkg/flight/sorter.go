package flight

import (
	"sort"

	"github.com/tripvera/travel-search-service/internal/app/dto"
)

// SortFlights returns a new ordered view of flights. Sorting is stable, so
// ties keep their original insertion order and repeated sorts of the same
// input are deterministic. The input slice is not reordered.
func SortFlights(flights []dto.FlightOption, sortOption *dto.SortOption) []dto.FlightOption {
	var (
		field = "recommended"
		order = "asc"
	)

	if sortOption != nil {
		if sortOption.Field != "" {
			field = sortOption.Field
		}
		if sortOption.Order != "" {
			order = sortOption.Order
		}
	}

	view := make([]dto.FlightOption, len(flights))
	copy(view, flights)

	switch field {
	case "price":
		sort.SliceStable(view, func(i, j int) bool {
			if order == "desc" {
				return view[i].Price.Amount > view[j].Price.Amount
			}
			return view[i].Price.Amount < view[j].Price.Amount
		})
	case "duration":
		sort.SliceStable(view, func(i, j int) bool {
			if order == "desc" {
				return view[i].Duration.TotalMinutes > view[j].Duration.TotalMinutes
			}
			return view[i].Duration.TotalMinutes < view[j].Duration.TotalMinutes
		})
	case "departure_time":
		sort.SliceStable(view, func(i, j int) bool {
			if order == "desc" {
				return view[i].Departure.Timestamp > view[j].Departure.Timestamp
			}
			return view[i].Departure.Timestamp < view[j].Departure.Timestamp
		})
	default:
		// recommended: relevance score, best first
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Score > view[j].Score
		})
	}

	return view
}
