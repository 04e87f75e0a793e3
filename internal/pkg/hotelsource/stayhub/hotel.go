package stayhub

// Wire types for the StayHub hotel API.

type SearchRequest struct {
	DestinationCode string `json:"destination_code"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	Rooms           int    `json:"rooms"`
	Currency        string `json:"currency"`
	MaxResults      int    `json:"max_results,omitempty"`
}

type SearchResponse struct {
	Hotels         []Hotel        `json:"hotels"`
	SearchMetadata SearchMetadata `json:"search_metadata"`
}

type SearchMetadata struct {
	Location string `json:"location"`
	Nights   int    `json:"nights"`
	Guests   int    `json:"guests"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type Hotel struct {
	HotelID          string   `json:"hotel_id"`
	Name             string   `json:"name"`
	StarRating       float64  `json:"star_rating"`
	Reviews          int      `json:"reviews"`
	RatePerNight     float64  `json:"rate_per_night"`
	TotalRate        float64  `json:"total_rate"`
	Fees             float64  `json:"fees"`
	Currency         string   `json:"currency"`
	Amenities        []string `json:"amenities"`
	CenterDistanceKm float64  `json:"center_distance_km"`
	BreakfastRate    bool     `json:"breakfast_rate"`
	FreeCancellation bool     `json:"free_cancellation"`
}
