package skyfare

// Wire types for the Skyfare real-time flight API. Mapped to the canonical
// dto.FlightOption at the adapter boundary and never used downstream.

type SearchRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	ReturnDate  string `json:"return_date,omitempty"`
	Passengers  int    `json:"passengers"`
	CheckedBags int    `json:"checked_bags"`
}

// StatusManualSearch is the sentinel the API returns when it cannot price a
// route and wants the user sent to its own site. The adapter treats it as
// "no data, fall through".
const StatusManualSearch = "manual_search_required"

type SearchResponse struct {
	Status      string      `json:"status"`
	Itineraries []Itinerary `json:"itineraries"`
}

type Itinerary struct {
	ItineraryID string  `json:"itinerary_id"`
	Carrier     Carrier `json:"carrier"`
	Legs        []Leg   `json:"legs"`
	Fare        Fare    `json:"fare"`
	Luggage     Luggage `json:"luggage"`
	DeepLink    string  `json:"deep_link"`
}

type Carrier struct {
	DisplayName  string `json:"display_name"`
	IATA         string `json:"iata"`
	FlightNumber string `json:"flight_number"`
}

type Leg struct {
	From       string `json:"from"`
	FromCity   string `json:"from_city"`
	To         string `json:"to"`
	ToCity     string `json:"to_city"`
	DepartsAt  string `json:"departs_at"`
	ArrivesAt  string `json:"arrives_at"`
	StopCount  int    `json:"stop_count"`
	CabinClass string `json:"cabin_class"`
}

type Fare struct {
	Total      float64 `json:"total"`
	Currency   string  `json:"currency"`
	Refundable bool    `json:"refundable"`
	Changeable bool    `json:"changeable"`
}

type Luggage struct {
	CabinBag       bool    `json:"cabin_bag"`
	CheckedBags    int     `json:"checked_bags"`
	ExtraBagPrice  float64 `json:"extra_bag_price"`
	MaxCheckedBags int     `json:"max_checked_bags"`
}
