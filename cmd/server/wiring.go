// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package main

import (
	"fmt"

	"github.com/tomtom215/watchnext/internal/api"
	"github.com/tomtom215/watchnext/internal/cache"
	"github.com/tomtom215/watchnext/internal/catalog"
	"github.com/tomtom215/watchnext/internal/config"
	"github.com/tomtom215/watchnext/internal/logging"
	"github.com/tomtom215/watchnext/internal/recommend"
)

// detailCacheName labels the detail cache metrics.
const detailCacheName = "details"

// app holds the wired components main needs after construction.
type app struct {
	cacheStore *cache.Instrumented[recommend.DetailRecord]
	details    *recommend.DetailCache
	client     *catalog.Client
	engine     *recommend.Engine
	handler    *api.Handler
}

// buildApp wires cache, catalog client, engine and handler from cfg.
func buildApp(cfg *config.Config) (*app, error) {
	store, err := cache.NewCacher[recommend.DetailRecord](cacheConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("detail cache: %w", err)
	}
	instrumented := cache.WithMetrics(store, detailCacheName)
	details := recommend.NewDetailCache(instrumented)

	client, err := catalog.NewClient(catalogConfig(cfg))
	if err != nil {
		_ = details.Close()
		return nil, fmt.Errorf("catalog client: %w", err)
	}

	engine, err := recommend.NewEngine(engineConfig(cfg), client, details)
	if err != nil {
		_ = details.Close()
		return nil, fmt.Errorf("recommendation engine: %w", err)
	}

	handler, err := api.NewHandler(engine, details, api.HandlerConfig{
		Version:      version,
		CacheType:    cfg.Cache.Type,
		BreakerState: client.BreakerState,
	})
	if err != nil {
		_ = details.Close()
		return nil, err
	}

	return &app{
		cacheStore: instrumented,
		details:    details,
		client:     client,
		engine:     engine,
		handler:    handler,
	}, nil
}

// logReady reports the effective engine and catalog settings.
func (a *app) logReady() {
	ec := a.engine.GetConfig()
	logging.Info().
		Str("region", a.client.Region()).
		Str("breaker", a.client.BreakerState()).
		Int("top_n", ec.TopN).
		Int("seed_count", ec.SeedCount).
		Msg("Recommendation engine ready")
}

// logTotals reports the engine counters accumulated over the process lifetime.
func (a *app) logTotals() {
	m := a.engine.GetMetrics()
	logging.Info().
		Int64("requests", m.Requests).
		Int64("empty_responses", m.EmptyResponses).
		Int64("enrich_failures", m.EnrichFailures).
		Int64("neighbor_failures", m.NeighborFailures).
		Int64("score_dropped", m.ScoreDropped).
		Msg("Recommendation engine totals")
}

func cacheConfig(cfg *config.Config) cache.Config {
	return cache.Config{
		Type:            cache.Type(cfg.Cache.Type),
		TTL:             cfg.Cache.TTL,
		Capacity:        cfg.Cache.Capacity,
		CleanupInterval: cfg.Cache.CleanupInterval,
	}
}

func catalogConfig(cfg *config.Config) catalog.Config {
	c := cfg.Catalog
	return catalog.Config{
		BaseURL:       c.BaseURL,
		APIKey:        c.APIKey,
		Region:        c.Region,
		DetailTimeout: c.DetailTimeout,
		ListTimeout:   c.ListTimeout,
		MaxIdleConns:  c.MaxIdleConns,
		MaxInFlight:   c.MaxInFlight,
		Breaker: catalog.BreakerSettings{
			Enabled:      c.Breaker.Enabled,
			MaxRequests:  c.Breaker.MaxRequests,
			Interval:     c.Breaker.Interval,
			Timeout:      c.Breaker.Timeout,
			MinRequests:  c.Breaker.MinRequests,
			FailureRatio: c.Breaker.FailureRatio,
		},
	}
}

func engineConfig(cfg *config.Config) *recommend.Config {
	r := cfg.Recommend
	return &recommend.Config{
		Workers: recommend.WorkerLimits{
			Enrich:   r.EnrichWorkers,
			Discover: r.DiscoverWorkers,
			Score:    r.ScoreWorkers,
		},
		SeedCount:        r.SeedCount,
		NeighborsPerSeed: r.NeighborsPerSeed,
		MaxCandidates:    r.MaxCandidates,
		TopN:             r.TopN,
		Weights: recommend.Weights{
			Rating: r.RatingWeight,
			Genre:  r.GenreWeight,
			Max:    r.MaxScore,
		},
		DefaultYear:   r.DefaultYear,
		TrendingLimit: r.TrendingLimit,
		SearchLimit:   r.SearchLimit,
		Region:        cfg.Catalog.Region,
		Images: catalog.Images{
			PosterBase: cfg.Catalog.PosterBase,
			BannerBase: cfg.Catalog.BannerBase,
		},
	}
}

func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	mw.RequestTimeout = cfg.Server.RequestTimeout
	return mw
}
