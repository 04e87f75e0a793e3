package flightsource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/flight"
)

// Attempt records why one source did not produce the winning batch.
type Attempt struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// Outcome tells the caller which source won and whether fallback happened,
// so the UI can disclose approximate data.
type Outcome struct {
	Source         string
	FallbackUsed   bool
	FallbackReason string
	Attempts       []Attempt
}

// Chain tries sources in fixed priority order, sequentially, and returns the
// first batch that survives route and date-window matching. A source error,
// empty payload, or zero post-match candidates records a reason and falls
// through to the next source. The chain itself never returns an error: search
// failure is a data-quality event, and the last source is expected to be a
// guaranteed-success synthetic generator.
type Chain struct {
	sources       []FlightSource
	toleranceDays int
	now           func() time.Time
}

func NewChain(toleranceDays int, sources ...FlightSource) *Chain {
	return &Chain{
		sources:       sources,
		toleranceDays: toleranceDays,
		now:           time.Now,
	}
}

// WithNow overrides the clock used for date-window matching.
func (c *Chain) WithNow(now func() time.Time) *Chain {
	c.now = now

	return c
}

func (c *Chain) Search(ctx context.Context, req dto.SearchRequest) ([]dto.FlightOption, Outcome) {
	var attempts []Attempt

	for _, source := range c.sources {
		candidates, err := source.Search(ctx, req)
		if err != nil {
			slog.WarnContext(ctx, "flight source failed, falling through",
				slog.String("source", source.Name()),
				slog.Any("error", err))
			attempts = append(attempts, Attempt{Source: source.Name(), Reason: err.Error()})

			continue
		}

		if len(candidates) == 0 {
			attempts = append(attempts, Attempt{Source: source.Name(), Reason: "empty result"})

			continue
		}

		matched, err := flight.MatchCandidates(candidates, req.Origin, req.Destination,
			req.DepartureDate, c.toleranceDays, c.now())
		if err != nil {
			attempts = append(attempts, Attempt{Source: source.Name(), Reason: err.Error()})

			continue
		}

		return matched, Outcome{
			Source:         source.Name(),
			FallbackUsed:   len(attempts) > 0,
			FallbackReason: joinReasons(attempts),
			Attempts:       attempts,
		}
	}

	// every source failed, including the synthetic tail; return an empty
	// batch rather than an error
	return nil, Outcome{
		FallbackUsed:   true,
		FallbackReason: joinReasons(attempts),
		Attempts:       attempts,
	}
}

func joinReasons(attempts []Attempt) string {
	if len(attempts) == 0 {
		return ""
	}

	reasons := make([]string, len(attempts))
	for i, a := range attempts {
		reasons[i] = fmt.Sprintf("%s: %s", a.Source, a.Reason)
	}

	return strings.Join(reasons, "; ")
}
