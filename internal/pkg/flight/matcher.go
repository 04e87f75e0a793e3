package flight

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/exception"
)

// DefaultToleranceDays is the date flexibility window. Real inventory rarely
// covers an exact date, so near-date flights are accepted within this bound.
const DefaultToleranceDays = 14

var ErrNoMatch = exception.ApplicationError{
	Message:    "no flights match the requested route within the date window",
	StatusCode: http.StatusNotFound,
}

// MatchCandidates keeps only flights that fly the exact requested route, do
// not depart before today, and depart within toleranceDays of the requested
// date. Zero survivors is reported as ErrNoMatch rather than returning
// off-route flights.
func MatchCandidates(flights []dto.FlightOption, origin, destination, departureDate string,
	toleranceDays int, now time.Time) ([]dto.FlightOption, error) {

	requested, err := time.Parse(dto.DateLayout, departureDate)
	if err != nil {
		return nil, fmt.Errorf("parse requested departure date: %w", err)
	}

	if toleranceDays <= 0 {
		toleranceDays = DefaultToleranceDays
	}

	today := now.Truncate(24 * time.Hour)
	window := time.Duration(toleranceDays) * 24 * time.Hour

	results := make([]dto.FlightOption, 0, len(flights))

	for _, f := range flights {
		if f.Departure.Airport != origin || f.Arrival.Airport != destination {
			continue
		}

		departure, err := time.Parse(dto.DateLayout, f.Departure.Date)
		if err != nil {
			continue
		}

		if departure.Before(today) {
			continue
		}

		diff := departure.Sub(requested)
		if diff < 0 {
			diff = -diff
		}

		if diff > window {
			continue
		}

		results = append(results, f)
	}

	if len(results) == 0 {
		return nil, ErrNoMatch
	}

	return results, nil
}
