// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

// Package cache provides the key/value stores behind the detail cache.
//
// Every backend implements Cacher and is safe for concurrent use. The
// eviction policy is chosen by configuration:
//
//	unbounded  never evicts; entries live for the process lifetime
//	ttl        entries expire a fixed time after insertion
//	lru        bounded by entry count, least recently used evicted first
//	badger     in-memory BadgerDB with native per-entry TTL
package cache

import (
	"fmt"
	"time"
)

// Cacher is a string-keyed store of V.
type Cacher[V any] interface {
	// Get returns the value and true when present and not expired.
	Get(key string) (V, bool)

	// Set stores value, replacing any existing entry for key.
	Set(key string, value V)

	// Delete removes key. Missing keys are ignored.
	Delete(key string)

	// Clear drops every entry.
	Clear()

	// Len returns the number of live entries.
	Len() int

	// GetStats returns a snapshot of the counters.
	GetStats() Stats

	// HitRate returns hits / (hits + misses) as a percentage.
	HitRate() float64

	// Close releases background resources. The cache must not be used afterwards.
	Close() error
}

// Stats is a point-in-time copy of cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// HitRate returns hits / (hits + misses) as a percentage, or 0 when idle.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100.0
}

// Type names an eviction policy.
type Type string

const (
	TypeUnbounded Type = "unbounded"
	TypeTTL       Type = "ttl"
	TypeLRU       Type = "lru"
	TypeBadger    Type = "badger"
)

// Config selects and sizes a backend.
type Config struct {
	Type            Type
	TTL             time.Duration // ttl and badger; optional for lru (0 = no expiry)
	Capacity        int           // lru only
	CleanupInterval time.Duration // ttl only
}

// NewCacher builds the backend named by cfg.Type.
//
//	c, err := cache.NewCacher[recommend.DetailRecord](cache.Config{Type: cache.TypeLRU, Capacity: 5000})
func NewCacher[V any](cfg Config) (Cacher[V], error) {
	switch cfg.Type {
	case TypeUnbounded, "":
		return NewMap[V](), nil
	case TypeTTL:
		if cfg.TTL <= 0 {
			return nil, fmt.Errorf("cache type %s requires a positive TTL", cfg.Type)
		}
		return NewTTL[V](cfg.TTL, cfg.CleanupInterval), nil
	case TypeLRU:
		if cfg.Capacity <= 0 {
			return nil, fmt.Errorf("cache type %s requires a positive capacity", cfg.Type)
		}
		return NewLRU[V](cfg.Capacity, cfg.TTL), nil
	case TypeBadger:
		if cfg.TTL <= 0 {
			return nil, fmt.Errorf("cache type %s requires a positive TTL", cfg.Type)
		}
		return NewBadger[V](cfg.TTL)
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

var (
	_ Cacher[int] = (*Map[int])(nil)
	_ Cacher[int] = (*TTL[int])(nil)
	_ Cacher[int] = (*LRU[int])(nil)
	_ Cacher[int] = (*Badger[int])(nil)
	_ Cacher[int] = (*Instrumented[int])(nil)
)
