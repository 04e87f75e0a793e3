package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/pkg/airports"
)

type SearchService interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResult, error)
}

type Endpoints struct {
	Search         endpoint.Endpoint
	AirportSuggest endpoint.Endpoint
}

func MakeEndpoints(service SearchService) Endpoints {
	return Endpoints{
		Search:         makeSearchEndpoint(service),
		AirportSuggest: makeAirportSuggestEndpoint(),
	}
}

func makeSearchEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.Search(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return result, nil
	}
}

// maxSuggestions bounds the autocomplete payload.
const maxSuggestions = 10

func makeAirportSuggestEndpoint() endpoint.Endpoint {
	return func(_ context.Context, req interface{}) (interface{}, error) {
		query, ok := req.(string)
		if !ok {
			return nil, errors.New("invalid type")
		}

		matches := airports.Search(query)
		if len(matches) > maxSuggestions {
			matches = matches[:maxSuggestions]
		}

		return matches, nil
	}
}
