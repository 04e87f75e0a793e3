package flight

import (
	"math"

	"github.com/tripvera/travel-search-service/internal/app/dto"
)

// weighted scoring using min-max normalization
// ref: https://www.1000minds.com/decision-making/what-is-mcdm-mcda

// weights for each criteria
const (
	WeightPrice             = 0.6
	WeightDurationInMinutes = 0.2
	WeightStops             = 0.15
	WeightFlexibility       = 0.05
)

// RankFlights assigns each flight a relevance score in [0, 1].
// 1 indicates the best flight and 0 the worst; the default "recommended"
// sort order is this score descending.
func RankFlights(flights []dto.FlightOption) []dto.FlightOption {
	priceMin, priceMax := findRange(flights, func(f dto.FlightOption) float64 {
		return f.Price.Amount
	})
	durationMin, durationMax := findRange(flights, func(f dto.FlightOption) float64 {
		return float64(f.Duration.TotalMinutes)
	})
	stopsMin, stopsMax := findRange(flights, func(f dto.FlightOption) float64 {
		return float64(f.Stops)
	})
	flexMin, flexMax := findRange(flights, flexibilityValue)

	for i, flight := range flights {
		priceScore := normalizeValue(flight.Price.Amount, priceMin, priceMax)
		durationScore := normalizeValue(float64(flight.Duration.TotalMinutes), durationMin, durationMax)
		stopsScore := normalizeValue(float64(flight.Stops), stopsMin, stopsMax)

		// invert flexibility because more flexibility is better
		flexScore := 1 - normalizeValue(flexibilityValue(flight), flexMin, flexMax)

		cost := WeightPrice*priceScore +
			WeightDurationInMinutes*durationScore +
			WeightStops*stopsScore +
			WeightFlexibility*flexScore

		flights[i].Score = 1 - cost
	}

	return flights
}

// flexibilityValue counts the booking conveniences a fare carries.
func flexibilityValue(f dto.FlightOption) float64 {
	value := float64(f.Baggage.CheckedIncluded)
	if f.Baggage.CarryOn {
		value++
	}
	if f.Refundable {
		value++
	}
	if f.Changeable {
		value++
	}

	return value
}

func findRange(flights []dto.FlightOption, valueOf func(dto.FlightOption) float64) (float64, float64) {
	if len(flights) == 0 {
		return 0, 0
	}

	minVal := math.MaxFloat64
	maxVal := -math.MaxFloat64

	for _, flight := range flights {
		v := valueOf(flight)
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	return minVal, maxVal
}

func normalizeValue(value float64, min float64, max float64) float64 {
	if max == min {
		return 0
	}

	return (value - min) / (max - min)
}
