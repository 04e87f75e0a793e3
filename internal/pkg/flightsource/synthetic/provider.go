package synthetic

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/airports"
	"github.com/tripvera/travel-search-service/internal/pkg/utils"
)

const (
	SourceName = "synthetic"

	// DefaultFlightCount is how many options one synthetic search yields.
	DefaultFlightCount = 20
)

var airlinePool = []struct {
	Name string
	Code string
}{
	{"Air France", "AF"},
	{"United Airlines", "UA"},
	{"Delta Air Lines", "DL"},
	{"British Airways", "BA"},
	{"Lufthansa", "LH"},
	{"KLM Royal Dutch Airlines", "KL"},
	{"American Airlines", "AA"},
	{"Emirates", "EK"},
}

// Provider is the guaranteed-success tail of the fallback chain. Output is
// deterministic for a given route and date, so repeated searches and tests
// see the same inventory.
type Provider struct {
	FlightCount int
}

func NewProvider(flightCount int) *Provider {
	if flightCount <= 0 {
		flightCount = DefaultFlightCount
	}

	return &Provider{
		FlightCount: flightCount,
	}
}

func (p *Provider) Name() string { return SourceName }

func (p *Provider) Search(_ context.Context, req dto.SearchRequest) ([]dto.FlightOption, error) {
	departure, err := time.Parse(dto.DateLayout, req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("invalid departure date: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	originCity := cityOf(req.Origin)
	destinationCity := cityOf(req.Destination)

	rng := rand.New(rand.NewSource(hashSeed(req.Origin + req.Destination + req.DepartureDate)))

	flights := make([]dto.FlightOption, 0, p.FlightCount)

	for i := 0; i < p.FlightCount; i++ {
		airline := airlinePool[rng.Intn(len(airlinePool))]

		stops := 0
		switch roll := rng.Intn(10); {
		case roll < 3:
			stops = 0
		case roll < 7:
			stops = 1
		default:
			stops = 2
		}

		durationMin := 300 + rng.Intn(360) + stops*95

		// keep synthetic departures inside [requested, requested+3d] so they
		// always survive the date-flexibility window
		departDay := departure.AddDate(0, 0, rng.Intn(4))
		departAt := time.Date(departDay.Year(), departDay.Month(), departDay.Day(),
			6+rng.Intn(15), 15*rng.Intn(4), 0, 0, time.UTC)
		arriveAt := departAt.Add(time.Duration(durationMin) * time.Minute)

		price := 250.0 + float64(rng.Intn(1100)) - float64(stops)*60
		if price < 180 {
			price = 180
		}

		checkedIncluded := rng.Intn(3)
		flightNumber := fmt.Sprintf("%s%d", airline.Code, 100+rng.Intn(900))

		flights = append(flights, dto.FlightOption{
			ID:           fmt.Sprintf("syn_%s_%d", airline.Code, 1000+i),
			Source:       SourceName,
			Airline:      dto.Airline{Name: airline.Name, Code: airline.Code},
			FlightNumber: flightNumber,
			Departure:    flightPoint(req.Origin, originCity, departAt),
			Arrival:      flightPoint(req.Destination, destinationCity, arriveAt),
			Duration: dto.Duration{
				TotalMinutes: durationMin,
				Formatted:    utils.ConvertMinutesToDuration(int64(durationMin)),
			},
			Stops: stops,
			Price: dto.Price{
				Amount:    price,
				Currency:  currency,
				Formatted: utils.FormatAmount(currency, price),
			},
			CabinClass: req.CabinClass,
			Baggage: dto.Baggage{
				CarryOn:         true,
				CheckedIncluded: checkedIncluded,
				PerBagCost:      35 + float64(rng.Intn(2))*25,
				MaxChecked:      3,
			},
			Refundable: rng.Intn(10) < 3,
			Changeable: rng.Intn(10) < 5,
			BookingURL: bookingURL(airline.Code, req.Origin, req.Destination, departAt),
		})
	}

	return flights, nil
}

func flightPoint(airport, city string, at time.Time) dto.FlightPoint {
	return dto.FlightPoint{
		Airport:   airport,
		City:      city,
		Date:      at.Format(dto.DateLayout),
		Time:      at.Format("15:04"),
		Timestamp: at.Unix(),
	}
}

func cityOf(code string) string {
	if a, ok := airports.Lookup(code); ok {
		return a.City
	}

	return code
}

// bookingURL builds the deep link the UI hands to third-party booking sites.
func bookingURL(airlineCode, origin, destination string, departAt time.Time) string {
	return fmt.Sprintf("https://book.%s.example.com/flights?from=%s&to=%s&date=%s",
		strings.ToLower(airlineCode), origin, destination, departAt.Format(dto.DateLayout))
}

func hashSeed(s string) int64 {
	var h int64
	for _, c := range s {
		h = h*31 + int64(c)
	}
	if h < 0 {
		h = -h
	}

	return h
}
