// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package models

import "time"

// HealthResponse is returned by GET /api/v1/health.
//
// Example:
//
//	{
//	  "status": "healthy",
//	  "version": "dev",
//	  "uptime_seconds": 3600.5,
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "cache": {"type": "unbounded", "size": 412, "hit_rate": 71.3},
//	  "breaker": "closed"
//	}
type HealthResponse struct {
	Status        string      `json:"status"`
	Version       string      `json:"version"`
	UptimeSeconds float64     `json:"uptime_seconds"`
	Timestamp     time.Time   `json:"timestamp"`
	Cache         CacheHealth `json:"cache"`
	Breaker       string      `json:"breaker"`
}

// CacheHealth summarizes the detail cache.
type CacheHealth struct {
	Type    string  `json:"type"`
	Size    int     `json:"size"`
	HitRate float64 `json:"hit_rate"` // percent
}
