// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/watchnext/internal/logging"
	"github.com/tomtom215/watchnext/internal/models"
)

// GetTrending handles GET /get_trending.
// Catalog failures produce an empty array.
func (h *Handler) GetTrending(w http.ResponseWriter, r *http.Request) {
	items := h.engine.Trending(r.Context())
	if items == nil {
		items = []models.TrendingItem{}
	}
	w.Header().Set("Cache-Control", "public, max-age=300")
	respondJSON(w, http.StatusOK, items)
}

// GetRecommendations handles POST /get_recommendations.
//
// Body: {"watched_movies": [{"id": 550, "type": "movie"}, ...]}
// A missing or empty list yields {"status":"success","data":[],...}.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		if errors.Is(err, errBodyTooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge, models.ErrCodeBodyTooLarge, "Request body too large", nil, err)
			return
		}
		respondError(w, r, http.StatusBadRequest, models.ErrCodeInvalidJSON, "Request body must be valid JSON", nil, err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	resp := h.engine.Recommend(r.Context(), toEngineItems(req.WatchedMovies))
	if resp.Data == nil {
		resp.Data = []models.Recommendation{}
	}

	logging.Ctx(r.Context()).Debug().
		Int("watched", len(req.WatchedMovies)).
		Int("results", len(resp.Data)).
		Str("processing_time", resp.ProcessingTime).
		Msg("Recommendations served")

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, resp)
}

// SearchTitles handles GET /search?q=.
// A missing or blank q yields an empty array.
func (h *Handler) SearchTitles(w http.ResponseWriter, r *http.Request) {
	results := h.engine.Search(r.Context(), r.URL.Query().Get("q"))
	if results == nil {
		results = []models.SearchResult{}
	}
	w.Header().Set("Cache-Control", "no-cache")
	respondJSON(w, http.StatusOK, results)
}
