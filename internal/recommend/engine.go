// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/watchnext/internal/catalog"
	"github.com/tomtom215/watchnext/internal/logging"
	"github.com/tomtom215/watchnext/internal/metrics"
	"github.com/tomtom215/watchnext/internal/models"
)

// Catalog is the subset of the catalog client the engine calls.
// *catalog.Client implements it.
type Catalog interface {
	FetchDetails(ctx context.Context, mediaType catalog.MediaType, id int) (*catalog.Details, error)
	FetchNeighbors(ctx context.Context, mediaType catalog.MediaType, id int) ([]catalog.Summary, error)
	FetchTrending(ctx context.Context) ([]catalog.Summary, error)
	Search(ctx context.Context, query string) ([]catalog.Summary, error)
}

// Engine runs the recommendation pipeline and the listing endpoints.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	catalog Catalog
	details *DetailCache

	requests         atomic.Int64
	emptyResponses   atomic.Int64
	enrichFailures   atomic.Int64
	neighborFailures atomic.Int64
	scoreDropped     atomic.Int64
}

// NewEngine creates a recommendation engine. A nil cfg uses DefaultConfig.
func NewEngine(cfg *Config, client Catalog, details *DetailCache) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("catalog client is required")
	}
	if details == nil {
		return nil, fmt.Errorf("detail cache is required")
	}

	return &Engine{
		config:  cfg,
		catalog: client,
		details: details,
	}, nil
}

// Recommend returns ranked recommendations for watched. It never fails:
// unreachable catalog data shrinks the result, down to an empty list.
func (e *Engine) Recommend(ctx context.Context, watched []WatchedItem) *models.RecommendationResponse {
	start := time.Now()
	e.requests.Add(1)

	profile := e.buildWatchedProfile(ctx, watched)
	pool := e.discover(ctx, watched)
	scored := e.scoreCandidates(ctx, pool, profile)

	rankStart := time.Now()
	ranked, dropped := rank(scored, e.config.TopN)
	metrics.RecordStage(stageRank, time.Since(rankStart))

	if dropped > 0 {
		e.scoreDropped.Add(int64(dropped))
		metrics.RecordDropped(stageScore, dropped)
	}
	if len(ranked) == 0 {
		e.emptyResponses.Add(1)
	}
	metrics.RecommendResults.Observe(float64(len(ranked)))

	elapsed := time.Since(start)
	logger := requestLogger(ctx)
	logger.Info().
		Int("watched", len(watched)).
		Int("profile_genres", len(profile)).
		Int("candidates", pool.Len()).
		Int("dropped", dropped).
		Int("results", len(ranked)).
		Dur("elapsed", elapsed).
		Msg("recommendations computed")

	return &models.RecommendationResponse{
		Status:         models.StatusSuccess,
		Data:           ranked,
		ProcessingTime: formatElapsed(elapsed),
	}
}

// requestLogger returns a logger carrying the request's ids and the
// engine's component tag.
func requestLogger(ctx context.Context) zerolog.Logger {
	return logging.CtxWith(ctx).Str("component", "recommend").Logger()
}

// formatElapsed renders d as seconds with two decimals, e.g. "1.37s".
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// DetailCache returns the engine's detail cache.
func (e *Engine) DetailCache() *DetailCache {
	return e.details
}

// GetConfig returns the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config
}

// GetMetrics returns a snapshot of the engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		Requests:         e.requests.Load(),
		EmptyResponses:   e.emptyResponses.Load(),
		EnrichFailures:   e.enrichFailures.Load(),
		NeighborFailures: e.neighborFailures.Load(),
		ScoreDropped:     e.scoreDropped.Load(),
	}
}
