package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tripvera/travel-search-service/internal/pkg/exception"
)

const DateLayout = "2006-01-02"

type Passengers struct {
	Adults   int `json:"adults" validate:"required,min=1,max=9"`
	Children int `json:"children" validate:"min=0,max=8"`
	Infants  int `json:"infants" validate:"min=0,max=4"`
}

type SearchRequest struct {
	Origin        string        `json:"origin" validate:"required,len=3,alpha"`
	Destination   string        `json:"destination" validate:"required,len=3,alpha"`
	DepartureDate string        `json:"departure_date" validate:"required"`
	ReturnDate    string        `json:"return_date,omitempty"`
	Passengers    Passengers    `json:"passengers"`
	CabinClass    string        `json:"cabin_class" validate:"required,oneof=economy premium business first"`
	Currency      string        `json:"currency,omitempty" validate:"omitempty,len=3"`
	CheckedBags   int           `json:"checked_bags,omitempty" validate:"min=0,max=5"`
	IncludeHotels bool          `json:"include_hotels,omitempty"`
	Rooms         int           `json:"rooms,omitempty" validate:"min=0,max=8"`
	ClientKey     string        `json:"client_key,omitempty"`
	SortOption    *SortOption   `json:"sort_option,omitempty"`
	FilterOption  *FilterOption `json:"filter_option,omitempty"`
}

func (s *SearchRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchRequest) Validate() error {
	return s.ValidateAt(time.Now())
}

// ValidateAt fails fast on a malformed request before any source is queried.
// now is injectable so date rules stay testable.
func (s *SearchRequest) ValidateAt(now time.Time) error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if s.Origin == s.Destination {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "origin and destination must differ",
		}
	}

	departure, err := time.Parse(DateLayout, s.DepartureDate)
	if err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("departure_date must use format %s", DateLayout),
		}
	}

	today := now.Truncate(24 * time.Hour)
	if departure.Before(today) {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "departure_date must not be in the past",
		}
	}

	if s.ReturnDate != "" {
		ret, err := time.Parse(DateLayout, s.ReturnDate)
		if err != nil {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("return_date must use format %s", DateLayout),
			}
		}

		if ret.Before(departure) {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    "return_date must not be before departure_date",
			}
		}
	}

	if s.SortOption != nil {
		if !AllowedSortField[s.SortOption.Field] {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("Invalid sort field %s", s.SortOption.Field),
			}
		}
	}

	if s.FilterOption != nil {
		if err := s.FilterOption.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// RoundTrip reports whether the request asks for a paired return leg.
func (s *SearchRequest) RoundTrip() bool {
	return s.ReturnDate != ""
}

// ReturnLeg derives the swapped-route request used to search the return
// direction through the same fallback chain.
func (s *SearchRequest) ReturnLeg() SearchRequest {
	leg := *s
	leg.Origin = s.Destination
	leg.Destination = s.Origin
	leg.DepartureDate = s.ReturnDate
	leg.ReturnDate = ""

	return leg
}

// FilterOption composes by logical AND: a flight survives only if it passes
// every populated predicate.
type FilterOption struct {
	Query          string            `json:"query,omitempty"`
	Columns        map[string]string `json:"columns,omitempty"`
	MinPrice       *float64          `json:"min_price,omitempty" validate:"omitempty,gt=0"`
	MaxPrice       *float64          `json:"max_price,omitempty" validate:"omitempty,gt=0"`
	MaxStops       *int              `json:"max_stops,omitempty" validate:"omitempty,gte=0"`
	DirectOnly     bool              `json:"direct_only,omitempty"`
	RefundableOnly bool              `json:"refundable_only,omitempty"`
	CabinClass     *string           `json:"cabin_class,omitempty"`
	CheckedBags    *int              `json:"checked_bags,omitempty" validate:"omitempty,gte=0"`
	DepartureFrom  *string           `json:"departure_from,omitempty"`
	DepartureTo    *string           `json:"departure_to,omitempty"`
}

// AllowedFilterColumn lists the per-column substring filters the engine knows.
var AllowedFilterColumn = map[string]bool{
	"airline":       true,
	"flight_number": true,
	"price":         true,
	"duration":      true,
	"stops":         true,
	"departure":     true,
	"arrival":       true,
}

func (f *FilterOption) Validate() error {
	if err := ValidateSingleError(f); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if f.MinPrice != nil && f.MaxPrice != nil && *f.MaxPrice <= *f.MinPrice {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "max_price must be greater than min_price",
		}
	}

	for column := range f.Columns {
		if !AllowedFilterColumn[column] {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("Invalid filter column %s", column),
			}
		}
	}

	for _, bound := range []*string{f.DepartureFrom, f.DepartureTo} {
		if bound == nil {
			continue
		}
		if _, err := time.Parse(DateLayout, *bound); err != nil {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("departure date bounds must use format %s", DateLayout),
			}
		}
	}

	return nil
}

type SortOption struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

var AllowedSortField = map[string]bool{
	"price":          true,
	"duration":       true,
	"departure_time": true,
	"recommended":    true,
}
