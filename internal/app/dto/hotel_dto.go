package dto

type HotelOffer struct {
	ID               string   `json:"id"`
	Source           string   `json:"source"`
	Name             string   `json:"name"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"review_count"`
	NightlyPrice     float64  `json:"nightly_price"`
	TotalPrice       float64  `json:"total_price"`
	Currency         string   `json:"currency"`
	Amenities        []string `json:"amenities"`
	DistanceKm       float64  `json:"distance_from_center_km"`
	Breakfast        bool     `json:"breakfast_included"`
	FreeCancellation bool     `json:"free_cancellation"`
}

// HotelQuery is the normalized request every hotel source accepts.
type HotelQuery struct {
	Destination string `json:"destination"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	Rooms       int    `json:"rooms"`
	Currency    string `json:"currency"`
	Limit       int    `json:"limit"`
}

type HotelSearchMetadata struct {
	Location string `json:"location"`
	Nights   int    `json:"nights"`
	Guests   int    `json:"guests"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// VacationPackage bundles one round-trip package with one hotel offer.
// DiscountedTotal = TotalPrice - BundleSavings.
type VacationPackage struct {
	ID              string           `json:"id"`
	Flight          RoundTripPackage `json:"flight"`
	Hotel           HotelOffer       `json:"hotel"`
	FlightPrice     float64          `json:"flight_price"`
	HotelPrice      float64          `json:"hotel_price"`
	TotalPrice      float64          `json:"total_price"`
	BundleSavings   float64          `json:"bundle_savings"`
	DiscountedTotal float64          `json:"discounted_total"`
}
