package flight

import (
	"github.com/tripvera/travel-search-service/internal/app/dto"
)

// Recommend picks one flight ID per recommendation slot from the final
// candidate set. Ties resolve to the earlier flight in the set.
func Recommend(flights []dto.FlightOption) dto.Recommendations {
	if len(flights) == 0 {
		return dto.Recommendations{}
	}

	bestPrice := flights[0]
	bestValue := flights[0]
	fastest := flights[0]
	mostConvenient := flights[0]

	for _, f := range flights[1:] {
		if f.Price.Amount < bestPrice.Price.Amount {
			bestPrice = f
		}

		if f.Score > bestValue.Score {
			bestValue = f
		}

		if f.Duration.TotalMinutes < fastest.Duration.TotalMinutes {
			fastest = f
		}

		if f.Stops < mostConvenient.Stops ||
			(f.Stops == mostConvenient.Stops && f.Departure.Timestamp < mostConvenient.Departure.Timestamp) {
			mostConvenient = f
		}
	}

	return dto.Recommendations{
		BestPrice:      bestPrice.ID,
		BestValue:      bestValue.ID,
		Fastest:        fastest.ID,
		MostConvenient: mostConvenient.ID,
	}
}
