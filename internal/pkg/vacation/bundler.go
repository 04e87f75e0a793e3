package vacation

import (
	"fmt"
	"sort"

	"github.com/tripvera/travel-search-service/internal/app/dto"
)

// DefaultMaxBundles caps how many vacation packages one search builds.
const DefaultMaxBundles = 10

// HotelFetchLimit decides how many hotel candidates to request: fewer flight
// packages means more hotel slots are worth filling.
func HotelFetchLimit(flightPackages int) int {
	if flightPackages < 10 {
		return 10
	}

	return 20
}

// Bundle pairs the i-th round-trip package with the i-th hotel offer into
// vacation packages, positionally, capped at min(|packages|, |hotels|,
// maxBundles). Bundling needs both inputs; an empty side yields nil, which
// is a missed bundle opportunity and not an error.
//
// bundleDiscount is the fixed bundle incentive; each package additionally
// carries over its own flight savings. Result is sorted ascending by
// discounted total.
func Bundle(packages []dto.RoundTripPackage, hotels []dto.HotelOffer,
	maxBundles int, bundleDiscount float64) []dto.VacationPackage {

	if len(packages) == 0 || len(hotels) == 0 {
		return nil
	}

	if maxBundles <= 0 {
		maxBundles = DefaultMaxBundles
	}

	pairs := len(packages)
	if len(hotels) < pairs {
		pairs = len(hotels)
	}
	if maxBundles < pairs {
		pairs = maxBundles
	}

	bundles := make([]dto.VacationPackage, 0, pairs)

	for i := 0; i < pairs; i++ {
		pkg := packages[i]
		hotel := hotels[i]

		total := pkg.TotalPrice + hotel.TotalPrice
		savings := bundleDiscount + pkg.Savings

		bundles = append(bundles, dto.VacationPackage{
			ID:              fmt.Sprintf("vac_%s_%s", pkg.ID, hotel.ID),
			Flight:          pkg,
			Hotel:           hotel,
			FlightPrice:     pkg.TotalPrice,
			HotelPrice:      hotel.TotalPrice,
			TotalPrice:      total,
			BundleSavings:   savings,
			DiscountedTotal: total - savings,
		})
	}

	sort.SliceStable(bundles, func(i, j int) bool {
		return bundles[i].DiscountedTotal < bundles[j].DiscountedTotal
	})

	return bundles
}
