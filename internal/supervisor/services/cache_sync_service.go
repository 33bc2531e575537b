// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CacheSyncer is satisfied by *cache.Instrumented.
type CacheSyncer interface {
	Sync()
	Len() int
	HitRate() float64
}

// CacheSyncService periodically publishes cache size and eviction metrics.
type CacheSyncService struct {
	cache    CacheSyncer
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheSyncService creates the service. A non-positive interval means 15s.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheSyncService(c CacheSyncer, interval time.Duration, logger zerolog.Logger) *CacheSyncService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &CacheSyncService{
		cache:    c,
		interval: interval,
		logger:   logger.With().Str("service", "cache-sync").Logger(),
		name:     "cache-sync",
	}
}

// Serve implements suture.Service. One sync runs immediately and a final
// one runs on shutdown.
func (s *CacheSyncService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("cache sync service starting")
	s.cache.Sync()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.cache.Sync()
			s.logger.Debug().
				Int("entries", s.cache.Len()).
				Float64("hit_rate", s.cache.HitRate()).
				Msg("cache sync service stopped")
			return ctx.Err()

		case <-ticker.C:
			s.cache.Sync()
		}
	}
}

// String returns the service name for logging.
func (s *CacheSyncService) String() string {
	return s.name
}
