// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/watchnext/internal/middleware"
	"github.com/tomtom215/watchnext/internal/models"
)

// Health handles GET /api/v1/health.
// An open breaker reports "degraded"; the service still answers.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := models.HealthResponse{
		Status:        "healthy",
		Version:       h.config.Version,
		UptimeSeconds: h.Uptime().Seconds(),
		Timestamp:     time.Now().UTC(),
		Cache:         models.CacheHealth{Type: h.config.CacheType},
		Breaker:       "unknown",
	}
	if h.cache != nil {
		health.Cache.Size = h.cache.Len()
		health.Cache.HitRate = h.cache.HitRate()
	}
	if h.config.BreakerState != nil {
		health.Breaker = h.config.BreakerState()
	}
	if health.Breaker == "open" {
		health.Status = "degraded"
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: middleware.GetRequestID(r.Context()),
		},
	})
}
