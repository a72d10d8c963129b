// Package app wires the flight query pipeline from configuration. Both the
// HTTP server and the CLI build their components here so the wiring stays
// in one place.
package app

import (
	"github.com/flightquery/flightquery/internal/adapter/geo/geonames"
	"github.com/flightquery/flightquery/internal/adapter/geo/nominatim"
	"github.com/flightquery/flightquery/internal/adapter/llm/groq"
	"github.com/flightquery/flightquery/internal/adapter/provider/flyscraper"
	"github.com/flightquery/flightquery/internal/config"
	"github.com/flightquery/flightquery/internal/extract"
	"github.com/flightquery/flightquery/internal/gazetteer"
	"github.com/flightquery/flightquery/internal/infrastructure/logger"
	"github.com/flightquery/flightquery/internal/infrastructure/ratelimit"
	"github.com/flightquery/flightquery/internal/infrastructure/timeutil"
	"github.com/flightquery/flightquery/internal/resolver"
	"github.com/flightquery/flightquery/internal/usecase"
)

// BuildUseCase wires the whole pipeline: extractor, resolution tiers,
// flight provider and the optional summarizer. In mock mode no external
// client is constructed at all.
func BuildUseCase(cfg *config.Config, log *logger.Logger) usecase.FlightQueryUseCase {
	if cfg.App.MockMode {
		return usecase.NewFlightQueryUseCase(nil, nil, nil,
			log.WithComponent("usecase").Logger,
			usecase.WithMockMode())
	}

	limiter := ratelimit.New(ratelimit.Config{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
	})

	provider := flyscraper.New(cfg.Credentials.RapidAPIKey, cfg.Timeouts.FlightSearch, limiter,
		log.WithComponent("flyscraper").Logger)
	airportResolver := BuildResolver(cfg, limiter, provider, log)

	completer := groq.New(cfg.Credentials.GroqAPIKey, cfg.Credentials.GroqModel,
		cfg.Timeouts.Completion, log.WithComponent("groq").Logger)

	clock := timeutil.NewRealClock()
	var extractor usecase.QueryExtractor = extract.NewPatternExtractor(clock)
	if cfg.App.UseModelExtractor {
		extractor = extract.NewModelExtractor(completer,
			func() int { return clock.Now().Year() },
			log.WithComponent("extract").Logger)
	}

	var opts []usecase.Option
	if cfg.App.Summarize {
		opts = append(opts, usecase.WithReplyWriter(
			usecase.NewSummarizer(completer, log.WithComponent("summarize").Logger)))
	}

	return usecase.NewFlightQueryUseCase(extractor, airportResolver, provider,
		log.WithComponent("usecase").Logger, opts...)
}

// BuildResolver wires the airport resolution chain: gazetteer, geographic
// tier, remote search tier and the optional synthetic fallback.
func BuildResolver(cfg *config.Config, limiter *ratelimit.HostLimiter, searcher resolver.AirportSearcher, log *logger.Logger) *resolver.Resolver {
	resolverLog := log.WithComponent("resolver").Logger

	geocoder := nominatim.New(cfg.Timeouts.Geocode, log.WithComponent("nominatim").Logger)
	nearby := geonames.New(cfg.Credentials.GeonamesUsername, cfg.Timeouts.Nearby, limiter,
		log.WithComponent("geonames").Logger)

	table, err := resolver.LoadAirportTable(cfg.App.AirportsCSVPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.App.AirportsCSVPath).
			Msg("Airport table unavailable, resolution continues without it")
		table = nil
	}

	strategies := []resolver.Strategy{
		resolver.NewGeoStrategy(geocoder, nearby, table, resolverLog),
		resolver.NewRemoteSearchStrategy(searcher, resolverLog),
	}

	var opts []resolver.Option
	if cfg.App.AllowSyntheticCodes {
		opts = append(opts, resolver.WithSyntheticFallback())
	}
	return resolver.New(gazetteer.New(), strategies, resolverLog, opts...)
}
