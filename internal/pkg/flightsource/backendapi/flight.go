package backendapi

// Wire types for the internal backend search service.

type SearchRequest struct {
	Origin        string            `json:"origin"`
	Destination   string            `json:"destination"`
	DepartureDate string            `json:"departure_date"`
	ReturnDate    string            `json:"return_date,omitempty"`
	Passengers    Passengers        `json:"passengers"`
	CabinClass    string            `json:"cabin_class"`
	Currency      string            `json:"currency,omitempty"`
	Filters       map[string]string `json:"filters,omitempty"`
	Preferences   map[string]string `json:"preferences,omitempty"`
}

type Passengers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

type SearchResponse struct {
	Success         bool            `json:"success"`
	Flights         []Flight        `json:"flights"`
	TotalResults    int             `json:"total_results"`
	SearchID        string          `json:"search_id"`
	SearchTimeMs    int             `json:"search_time_ms"`
	Recommendations Recommendations `json:"recommendations"`
	FallbackUsed    bool            `json:"fallback_used"`
	FallbackReason  string          `json:"fallback_reason,omitempty"`
}

type Recommendations struct {
	BestPrice      string `json:"best_price,omitempty"`
	BestValue      string `json:"best_value,omitempty"`
	Fastest        string `json:"fastest,omitempty"`
	MostConvenient string `json:"most_convenient,omitempty"`
}

type Flight struct {
	FlightID        string  `json:"flight_id"`
	AirlineName     string  `json:"airline_name"`
	AirlineCode     string  `json:"airline_code"`
	FlightNumber    string  `json:"flight_number"`
	DepartAirport   string  `json:"depart_airport"`
	DepartCity      string  `json:"depart_city"`
	DepartAt        string  `json:"depart_at"`
	ArriveAirport   string  `json:"arrive_airport"`
	ArriveCity      string  `json:"arrive_city"`
	ArriveAt        string  `json:"arrive_at"`
	DurationMinutes int     `json:"duration_minutes"`
	Stops           int     `json:"stops"`
	PriceAmount     float64 `json:"price_amount"`
	PriceCurrency   string  `json:"price_currency"`
	CabinClass      string  `json:"cabin_class"`
	CarryOn         bool    `json:"carry_on"`
	CheckedBags     int     `json:"checked_bags"`
	ExtraBagCost    float64 `json:"extra_bag_cost"`
	MaxCheckedBags  int     `json:"max_checked_bags"`
	Refundable      bool    `json:"refundable"`
	Changeable      bool    `json:"changeable"`
	BookingURL      string  `json:"booking_url,omitempty"`
}
