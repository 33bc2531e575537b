// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package recommend

import (
	"context"
	"strings"

	"github.com/tomtom215/watchnext/internal/catalog"
	"github.com/tomtom215/watchnext/internal/models"
)

// Trending returns today's trending items that carry a poster, taken from
// the first TrendingLimit catalog results. Catalog failure yields an empty
// slice.
func (e *Engine) Trending(ctx context.Context) []models.TrendingItem {
	results, err := e.catalog.FetchTrending(ctx)
	if err != nil {
		logger := requestLogger(ctx)
		logger.Warn().Err(err).Msg("trending fetch failed")
		return []models.TrendingItem{}
	}
	if len(results) > e.config.TrendingLimit {
		results = results[:e.config.TrendingLimit]
	}

	items := make([]models.TrendingItem, 0, len(results))
	for i := range results {
		s := &results[i]
		if !s.HasPoster() {
			continue
		}
		items = append(items, models.TrendingItem{
			ID:       s.ID,
			Title:    s.DisplayTitle(),
			Type:     string(s.Type()),
			Rating:   s.VoteAverage,
			Poster:   e.config.Images.Poster(s.PosterPath),
			Year:     s.Year(e.config.DefaultYear),
			Overview: s.Overview,
		})
	}
	return items
}

// Search returns up to SearchLimit movies and shows matching query that
// carry a poster. People are skipped. A blank query returns an empty slice
// without calling the catalog.
func (e *Engine) Search(ctx context.Context, query string) []models.SearchResult {
	if strings.TrimSpace(query) == "" {
		return []models.SearchResult{}
	}

	results, err := e.catalog.Search(ctx, query)
	if err != nil {
		logger := requestLogger(ctx)
		logger.Warn().Err(err).Msg("search failed")
		return []models.SearchResult{}
	}

	out := make([]models.SearchResult, 0, e.config.SearchLimit)
	for i := range results {
		s := &results[i]
		mediaType := catalog.MediaType(s.MediaType)
		if !mediaType.Valid() || !s.HasPoster() {
			continue
		}
		out = append(out, models.SearchResult{
			ID:     s.ID,
			Title:  s.DisplayTitle(),
			Type:   s.MediaType,
			Banner: e.config.Images.Banner(s.PosterPath),
		})
		if len(out) == e.config.SearchLimit {
			break
		}
	}
	return out
}
