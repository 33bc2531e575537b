// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package api

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/watchnext/internal/catalog"
	"github.com/tomtom215/watchnext/internal/models"
	"github.com/tomtom215/watchnext/internal/recommend"
)

// Recommender is the engine surface the handlers depend on.
type Recommender interface {
	Recommend(ctx context.Context, watched []recommend.WatchedItem) *models.RecommendationResponse
	Trending(ctx context.Context) []models.TrendingItem
	Search(ctx context.Context, query string) []models.SearchResult
}

// CacheStats reports the detail cache for the health endpoint.
type CacheStats interface {
	Len() int
	HitRate() float64
}

// HandlerConfig carries the build and runtime facts surfaced by /api/v1/health.
type HandlerConfig struct {
	Version   string
	CacheType string
	// BreakerState reports the upstream circuit breaker, or nil when unknown.
	BreakerState func() string
}

// Handler serves the WatchNext endpoints.
type Handler struct {
	engine    Recommender
	cache     CacheStats
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates a Handler. cache may be nil.
func NewHandler(engine Recommender, cache CacheStats, cfg HandlerConfig) (*Handler, error) {
	if engine == nil {
		return nil, errors.New("recommender is required")
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	return &Handler{
		engine:    engine,
		cache:     cache,
		config:    cfg,
		startTime: time.Now(),
	}, nil
}

// Uptime returns how long the handler has been serving.
func (h *Handler) Uptime() time.Duration {
	return time.Since(h.startTime)
}

func toEngineItems(items []models.WatchedItem) []recommend.WatchedItem {
	out := make([]recommend.WatchedItem, len(items))
	for i, it := range items {
		out[i] = recommend.WatchedItem{ID: it.ID, Type: catalog.MediaType(it.Type)}
	}
	return out
}

// compile-time check that the engine satisfies Recommender
var _ Recommender = (*recommend.Engine)(nil)
