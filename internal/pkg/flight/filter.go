package flight

import (
	"context"
	"strconv"
	"strings"

	"github.com/tripvera/travel-search-service/internal/app/dto"
)

// FilterFlights applies the request's filter set over an in-memory result
// view. Predicates compose by logical AND; relative order of survivors is
// preserved. The input slice is never mutated.
func FilterFlights(ctx context.Context, flights []dto.FlightOption, filterOpts *dto.FilterOption) []dto.FlightOption {
	if filterOpts == nil {
		return flights
	}

	results := make([]dto.FlightOption, 0, len(flights))

	for _, flight := range flights {
		if !matchesQuery(flight, filterOpts.Query) {
			continue
		}

		if !matchesColumns(flight, filterOpts.Columns) {
			continue
		}

		if filterOpts.MinPrice != nil && flight.Price.Amount < *filterOpts.MinPrice {
			continue
		}

		if filterOpts.MaxPrice != nil && flight.Price.Amount > *filterOpts.MaxPrice {
			continue
		}

		if filterOpts.MaxStops != nil && flight.Stops > *filterOpts.MaxStops {
			continue
		}

		if filterOpts.DirectOnly && flight.Stops != 0 {
			continue
		}

		if filterOpts.RefundableOnly && !flight.Refundable {
			continue
		}

		if filterOpts.CabinClass != nil && flight.CabinClass != *filterOpts.CabinClass {
			continue
		}

		if filterOpts.CheckedBags != nil && flight.Baggage.CheckedIncluded != *filterOpts.CheckedBags {
			continue
		}

		if filterOpts.DepartureFrom != nil && flight.Departure.Date < *filterOpts.DepartureFrom {
			continue
		}

		if filterOpts.DepartureTo != nil && flight.Departure.Date > *filterOpts.DepartureTo {
			continue
		}

		results = append(results, flight)
	}

	return results
}

// matchesQuery is the free-text search: case-insensitive substring over
// airline, flight number and airports/cities.
func matchesQuery(flight dto.FlightOption, query string) bool {
	if query == "" {
		return true
	}

	needle := strings.ToLower(query)

	for _, haystack := range []string{
		flight.Airline.Name,
		flight.Airline.Code,
		flight.FlightNumber,
		flight.Departure.Airport,
		flight.Departure.City,
		flight.Arrival.Airport,
		flight.Arrival.City,
	} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}

	return false
}

func matchesColumns(flight dto.FlightOption, columns map[string]string) bool {
	for column, value := range columns {
		if value == "" {
			continue
		}

		if !strings.Contains(strings.ToLower(columnText(flight, column)), strings.ToLower(value)) {
			return false
		}
	}

	return true
}

// columnText renders the cell value a column filter matches against, the way
// the UI displays it.
func columnText(flight dto.FlightOption, column string) string {
	switch column {
	case "airline":
		return flight.Airline.Name + " " + flight.Airline.Code
	case "flight_number":
		return flight.FlightNumber
	case "price":
		return strconv.FormatFloat(flight.Price.Amount, 'f', -1, 64) + " " + flight.Price.Formatted
	case "duration":
		return flight.Duration.Formatted
	case "stops":
		return strconv.Itoa(flight.Stops)
	case "departure":
		return flight.Departure.Airport + " " + flight.Departure.Time
	case "arrival":
		return flight.Arrival.Airport + " " + flight.Arrival.Time
	}

	return ""
}
