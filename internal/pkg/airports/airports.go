package airports

import "strings"

// Airport is one row of the static lookup table backing autocomplete.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Region  string `json:"region"`
}

var index = []Airport{
	{"JFK", "John F. Kennedy International", "New York", "United States", "North America"},
	{"EWR", "Newark Liberty International", "Newark", "United States", "North America"},
	{"LAX", "Los Angeles International", "Los Angeles", "United States", "North America"},
	{"SFO", "San Francisco International", "San Francisco", "United States", "North America"},
	{"ORD", "O'Hare International", "Chicago", "United States", "North America"},
	{"MIA", "Miami International", "Miami", "United States", "North America"},
	{"YYZ", "Toronto Pearson International", "Toronto", "Canada", "North America"},
	{"YVR", "Vancouver International", "Vancouver", "Canada", "North America"},
	{"MEX", "Benito Juarez International", "Mexico City", "Mexico", "North America"},
	{"LHR", "Heathrow", "London", "United Kingdom", "Europe"},
	{"LGW", "Gatwick", "London", "United Kingdom", "Europe"},
	{"CDG", "Charles de Gaulle", "Paris", "France", "Europe"},
	{"ORY", "Orly", "Paris", "France", "Europe"},
	{"AMS", "Schiphol", "Amsterdam", "Netherlands", "Europe"},
	{"FRA", "Frankfurt am Main", "Frankfurt", "Germany", "Europe"},
	{"MUC", "Munich", "Munich", "Germany", "Europe"},
	{"MAD", "Adolfo Suarez Madrid-Barajas", "Madrid", "Spain", "Europe"},
	{"BCN", "Josep Tarradellas Barcelona-El Prat", "Barcelona", "Spain", "Europe"},
	{"FCO", "Leonardo da Vinci-Fiumicino", "Rome", "Italy", "Europe"},
	{"MXP", "Milan Malpensa", "Milan", "Italy", "Europe"},
	{"ZRH", "Zurich", "Zurich", "Switzerland", "Europe"},
	{"VIE", "Vienna International", "Vienna", "Austria", "Europe"},
	{"LIS", "Humberto Delgado", "Lisbon", "Portugal", "Europe"},
	{"ATH", "Athens International", "Athens", "Greece", "Europe"},
	{"IST", "Istanbul", "Istanbul", "Turkey", "Europe"},
	{"DXB", "Dubai International", "Dubai", "United Arab Emirates", "Middle East"},
	{"DOH", "Hamad International", "Doha", "Qatar", "Middle East"},
	{"NRT", "Narita International", "Tokyo", "Japan", "Asia"},
	{"HND", "Haneda", "Tokyo", "Japan", "Asia"},
	{"ICN", "Incheon International", "Seoul", "South Korea", "Asia"},
	{"PEK", "Beijing Capital International", "Beijing", "China", "Asia"},
	{"HKG", "Hong Kong International", "Hong Kong", "Hong Kong", "Asia"},
	{"SIN", "Changi", "Singapore", "Singapore", "Asia"},
	{"BKK", "Suvarnabhumi", "Bangkok", "Thailand", "Asia"},
	{"CGK", "Soekarno-Hatta International", "Jakarta", "Indonesia", "Asia"},
	{"DPS", "Ngurah Rai International", "Denpasar", "Indonesia", "Asia"},
	{"DEL", "Indira Gandhi International", "Delhi", "India", "Asia"},
	{"BOM", "Chhatrapati Shivaji Maharaj International", "Mumbai", "India", "Asia"},
	{"SYD", "Kingsford Smith", "Sydney", "Australia", "Oceania"},
	{"AKL", "Auckland", "Auckland", "New Zealand", "Oceania"},
	{"GRU", "Sao Paulo-Guarulhos International", "Sao Paulo", "Brazil", "South America"},
	{"EZE", "Ministro Pistarini International", "Buenos Aires", "Argentina", "South America"},
	{"JNB", "O.R. Tambo International", "Johannesburg", "South Africa", "Africa"},
	{"CAI", "Cairo International", "Cairo", "Egypt", "Africa"},
}

// Lookup returns the airport for an IATA code, case-insensitively.
func Lookup(code string) (Airport, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, a := range index {
		if a.Code == code {
			return a, true
		}
	}

	return Airport{}, false
}

// Search matches a free-text query against code, name, city and country,
// case-insensitive substring. Empty query returns no results so autocomplete
// stays quiet until the user types.
func Search(query string) []Airport {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []Airport
	for _, a := range index {
		if strings.Contains(strings.ToLower(a.Code), query) ||
			strings.Contains(strings.ToLower(a.Name), query) ||
			strings.Contains(strings.ToLower(a.City), query) ||
			strings.Contains(strings.ToLower(a.Country), query) {
			results = append(results, a)
		}
	}

	return results
}

// ByCountry returns all airports whose country name matches exactly,
// case-insensitively.
func ByCountry(country string) []Airport {
	country = strings.ToLower(strings.TrimSpace(country))

	var results []Airport
	for _, a := range index {
		if strings.ToLower(a.Country) == country {
			results = append(results, a)
		}
	}

	return results
}
