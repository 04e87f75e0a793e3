package flight

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tripvera/travel-search-service/internal/app/dto"
)

// DefaultMaxPackages caps how many round-trip packages one search builds.
const DefaultMaxPackages = 10

// BuildRoundTrips pairs the i-th outbound with the i-th return flight into
// priced packages, up to min(|outbound|, |inbound|, maxPackages). Pairing is
// positional, not a cross-product. A pair whose legs do not mirror the
// requested route is discarded with a warning and does not consume a cap
// slot. The result is sorted ascending by total price.
//
// savings models the combined-booking fee avoided by booking both legs at
// once; the constant is configuration, not business logic.
func BuildRoundTrips(ctx context.Context, outbound, inbound []dto.FlightOption,
	req dto.SearchRequest, maxPackages int, savings float64) []dto.RoundTripPackage {

	if len(outbound) == 0 || len(inbound) == 0 {
		return nil
	}

	if maxPackages <= 0 {
		maxPackages = DefaultMaxPackages
	}

	pairs := len(outbound)
	if len(inbound) < pairs {
		pairs = len(inbound)
	}

	packages := make([]dto.RoundTripPackage, 0, maxPackages)

	for i := 0; i < pairs && len(packages) < maxPackages; i++ {
		out := outbound[i]
		ret := inbound[i]

		if !routeMatches(out, ret, req) {
			slog.WarnContext(ctx, "discarding round-trip pair with mismatched route",
				slog.String("outbound_id", out.ID),
				slog.String("return_id", ret.ID))

			continue
		}

		packages = append(packages, dto.RoundTripPackage{
			ID:         fmt.Sprintf("rt_%s_%s", out.ID, ret.ID),
			Outbound:   out,
			Return:     ret,
			TotalPrice: out.Price.Amount + ret.Price.Amount,
			Currency:   out.Price.Currency,
			Savings:    savings,
		})
	}

	sort.SliceStable(packages, func(i, j int) bool {
		return packages[i].TotalPrice < packages[j].TotalPrice
	})

	return packages
}

// routeMatches enforces the package invariant: the outbound leg flies the
// requested route and the return leg flies its exact reverse. Violations are
// discarded, never silently corrected.
func routeMatches(out, ret dto.FlightOption, req dto.SearchRequest) bool {
	return out.Departure.Airport == req.Origin &&
		out.Arrival.Airport == req.Destination &&
		ret.Departure.Airport == req.Destination &&
		ret.Arrival.Airport == req.Origin
}
