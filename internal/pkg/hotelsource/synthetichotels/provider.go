package synthetichotels

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/airports"
)

const SourceName = "synthetic_hotels"

type hotelTemplate struct {
	Name      string
	BaseRate  float64
	Rating    float64
	Reviews   int
	Amenities []string
}

var hotelTemplates = []hotelTemplate{
	{"Grand Hotel Central", 180, 4.5, 1234, []string{"wifi", "pool", "gym", "restaurant"}},
	{"City View Suites", 140, 4.2, 890, []string{"wifi", "gym", "breakfast"}},
	{"Riverside Boutique", 165, 4.6, 445, []string{"wifi", "bar", "spa"}},
	{"Heritage B&B", 125, 4.4, 567, []string{"wifi", "breakfast", "garden", "parking"}},
	{"Metro Business Inn", 110, 4.0, 1320, []string{"wifi", "workspace", "laundry"}},
	{"Old Town Residence", 150, 4.7, 378, []string{"wifi", "kitchen", "balcony"}},
	{"Parkside Plaza", 200, 4.8, 812, []string{"wifi", "pool", "restaurant", "room_service"}},
	{"Harbor Light Hotel", 135, 4.3, 654, []string{"wifi", "breakfast", "bar"}},
	{"Skyline Tower Suites", 230, 4.9, 298, []string{"wifi", "rooftop", "gym", "spa"}},
	{"Budget Stay Central", 65, 3.8, 2100, []string{"wifi", "lockers"}},
}

// Provider generates deterministic hotel inventory for a destination when no
// live hotel source is reachable.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Name() string { return SourceName }

func (p *Provider) Search(_ context.Context, query dto.HotelQuery) ([]dto.HotelOffer, dto.HotelSearchMetadata, error) {
	checkIn, err := time.Parse(dto.DateLayout, query.CheckIn)
	if err != nil {
		return nil, dto.HotelSearchMetadata{}, fmt.Errorf("invalid check-in date: %w", err)
	}

	checkOut, err := time.Parse(dto.DateLayout, query.CheckOut)
	if err != nil {
		return nil, dto.HotelSearchMetadata{}, fmt.Errorf("invalid check-out date: %w", err)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	currency := query.Currency
	if currency == "" {
		currency = "USD"
	}

	city := query.Destination
	if a, ok := airports.Lookup(query.Destination); ok {
		city = a.City
	}

	limit := query.Limit
	if limit <= 0 || limit > 20 {
		limit = 10
	}

	rng := rand.New(rand.NewSource(hashSeed(query.Destination + query.CheckIn)))

	offers := make([]dto.HotelOffer, 0, limit)
	for i := 0; i < limit; i++ {
		tmpl := hotelTemplates[i%len(hotelTemplates)]

		nightly := tmpl.BaseRate * (0.7 + rng.Float64()*0.6)
		nightly = float64(int(nightly*100)) / 100

		offers = append(offers, dto.HotelOffer{
			ID:               fmt.Sprintf("synh_%d", 2000+i),
			Source:           SourceName,
			Name:             fmt.Sprintf("%s %s", tmpl.Name, city),
			Rating:           tmpl.Rating,
			ReviewCount:      tmpl.Reviews,
			NightlyPrice:     nightly,
			TotalPrice:       float64(int(nightly*float64(nights)*100)) / 100,
			Currency:         currency,
			Amenities:        tmpl.Amenities,
			DistanceKm:       float64(int((0.3+rng.Float64()*7)*10)) / 10,
			Breakfast:        rng.Intn(2) == 0,
			FreeCancellation: rng.Intn(10) < 6,
		})
	}

	guests := query.Adults + query.Children

	return offers, dto.HotelSearchMetadata{
		Location: city,
		Nights:   nights,
		Guests:   guests,
		CheckIn:  query.CheckIn,
		CheckOut: query.CheckOut,
	}, nil
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
