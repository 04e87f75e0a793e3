package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/app/endpoints"
	httptransport "github.com/tripvera/travel-search-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(endpts endpoints.Endpoints) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/search", httptransport.MakeHandlerFunc(
			endpts.Search,
			httptransport.DecodeRequest[dto.SearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/airports", httptransport.MakeHandlerFunc(
			endpts.AirportSuggest,
			decodeAirportQuery,
			httptransport.ResponseWithBody,
		))
	})

	return router
}

func decodeAirportQuery(_ context.Context, req *http.Request) (interface{}, error) {
	return req.URL.Query().Get("q"), nil
}
