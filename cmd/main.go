package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"github.com/tripvera/travel-search-service/internal/app/config"
	"github.com/tripvera/travel-search-service/internal/app/dto"
	"github.com/tripvera/travel-search-service/internal/app/endpoints"
	"github.com/tripvera/travel-search-service/internal/app/service"
	"github.com/tripvera/travel-search-service/internal/app/transport"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource/backendapi"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource/skyfare"
	"github.com/tripvera/travel-search-service/internal/pkg/flightsource/synthetic"
	"github.com/tripvera/travel-search-service/internal/pkg/hotelsource"
	"github.com/tripvera/travel-search-service/internal/pkg/hotelsource/stayhub"
	"github.com/tripvera/travel-search-service/internal/pkg/hotelsource/synthetichotels"
	"github.com/tripvera/travel-search-service/internal/pkg/logger"
	"github.com/tripvera/travel-search-service/internal/pkg/session"
)

// @title           Travel Search Service API
// @version         0.0.1
// @description     travel-search-service
// @host      localhost:8080
// @BasePath  /
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	limiter := redis_rate.NewLimiter(redisClient)

	chain := makeFlightChain(cfg, limiter)
	hotelSources := makeHotelSources(cfg, limiter)
	sessions := session.NewRegistry(redisClient, cfg.Session.TTL)

	searchService := service.NewSearchService(chain, hotelSources, sessions, service.Tunables{
		RoundTripSavings: cfg.Engine.RoundTripSavings,
		BundleDiscount:   cfg.Engine.BundleDiscount,
		MaxRoundTrips:    cfg.Engine.MaxRoundTrips,
		MaxBundles:       cfg.Engine.MaxBundles,
	})

	return endpoints.MakeEndpoints(searchService)
}

// makeFlightChain assembles the fixed-priority fallback chain. Order matters:
// the synthetic generator comes last and always answers.
func makeFlightChain(cfg *config.Config, limiter *redis_rate.Limiter) *flightsource.Chain {
	skyFare := skyfare.NewProvider(flightsource.SourceConfig{
		BaseURL:      cfg.Sources.SkyFare.SearchAPIURL,
		Timeout:      cfg.Sources.SkyFare.Timeout,
		RateLimitRPS: cfg.Sources.SkyFare.RateLimitRPS,
		Limiter:      limiter,
	})
	backendAPI := backendapi.NewProvider(flightsource.SourceConfig{
		BaseURL: cfg.Sources.BackendAPI.SearchAPIURL,
		Timeout: cfg.Sources.BackendAPI.Timeout,
	})
	syntheticFlights := synthetic.NewProvider(cfg.Engine.SyntheticFlightCount)

	return flightsource.NewChain(cfg.Engine.DateToleranceDays,
		skyFare, backendAPI, syntheticFlights)
}

// makeHotelSources assembles hotel sources in fallback order.
func makeHotelSources(cfg *config.Config, limiter *redis_rate.Limiter) []hotelsource.HotelSource {
	stayHub := stayhub.NewProvider(hotelsource.SourceConfig{
		BaseURL:      cfg.Hotels.StayHub.SearchAPIURL,
		Timeout:      cfg.Hotels.StayHub.Timeout,
		RateLimitRPS: cfg.Hotels.StayHub.RateLimitRPS,
		Limiter:      limiter,
	})

	return []hotelsource.HotelSource{stayHub, synthetichotels.NewProvider()}
}
