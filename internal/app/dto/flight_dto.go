package dto

// FlightOption is the canonical flight shape every source adapter maps into.
// Downstream code never touches provider wire formats.
type FlightOption struct {
	ID           string      `json:"id"`
	Source       string      `json:"source"`
	Airline      Airline     `json:"airline"`
	FlightNumber string      `json:"flight_number"`
	Departure    FlightPoint `json:"departure"`
	Arrival      FlightPoint `json:"arrival"`
	Duration     Duration    `json:"duration"`
	Stops        int         `json:"stops"`
	Price        Price       `json:"price"`
	CabinClass   string      `json:"cabin_class"`
	Baggage      Baggage     `json:"baggage"`
	Refundable   bool        `json:"refundable"`
	Changeable   bool        `json:"changeable"`
	BookingURL   string      `json:"booking_url,omitempty"`
	Score        float64     `json:"score"`
}

type Airline struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// FlightPoint is one end of a leg. Date and Time are the local calendar
// values the UI renders; Timestamp is the same instant in Unix seconds and is
// what sorting and duration consistency checks use.
type FlightPoint struct {
	Airport   string `json:"airport"`
	City      string `json:"city"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Timestamp int64  `json:"timestamp"`
}

type Duration struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type Baggage struct {
	CarryOn         bool    `json:"carry_on"`
	CheckedIncluded int     `json:"checked_included"`
	PerBagCost      float64 `json:"per_bag_cost"`
	MaxChecked      int     `json:"max_checked"`
}

// RoundTripPackage pairs one outbound with one return leg. Built by the
// pairing engine only; both legs are guaranteed to match the requested route.
type RoundTripPackage struct {
	ID         string       `json:"id"`
	Outbound   FlightOption `json:"outbound"`
	Return     FlightOption `json:"return"`
	TotalPrice float64      `json:"total_price"`
	Currency   string       `json:"currency"`
	Savings    float64      `json:"savings"`
}

// Recommendations carries flight IDs picked from the final candidate set.
type Recommendations struct {
	BestPrice      string `json:"best_price,omitempty"`
	BestValue      string `json:"best_value,omitempty"`
	Fastest        string `json:"fastest,omitempty"`
	MostConvenient string `json:"most_convenient,omitempty"`
}

type Metadata struct {
	TotalResults   int    `json:"total_results"`
	SearchTimeMs   int    `json:"search_time_ms"`
	Source         string `json:"source"`
	FallbackUsed   bool   `json:"fallback_used"`
	FallbackReason string `json:"fallback_reason,omitempty"`
	Superseded     bool   `json:"superseded"`
}

// SearchResult is the response struct for the search endpoint. It is built
// fresh per search and never persisted.
type SearchResult struct {
	SearchID        string             `json:"search_id"`
	Request         SearchRequest      `json:"search_request"`
	Flights         []FlightOption     `json:"flights"`
	RoundTrips      []RoundTripPackage `json:"round_trip_packages,omitempty"`
	Vacations       []VacationPackage  `json:"vacation_packages,omitempty"`
	ActiveFilters   *FilterOption      `json:"active_filters,omitempty"`
	Recommendations Recommendations    `json:"recommendations"`
	Metadata        Metadata           `json:"metadata"`
}
