// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package cache

import (
	"sync"
	"time"

	"github.com/tomtom215/watchnext/internal/metrics"
)

// Instrumented wraps a Cacher and mirrors its activity into the
// cache_* Prometheus collectors under the given cache_type label.
type Instrumented[V any] struct {
	inner Cacher[V]
	name  string

	mu            sync.Mutex
	lastEvictions int64
	lastSync      time.Time
}

// syncInterval bounds how often Set refreshes the gauges; Len is a key walk
// on the badger backend.
const syncInterval = time.Second

// WithMetrics wraps c so hits, misses, size and evictions are exported.
func WithMetrics[V any](c Cacher[V], name string) *Instrumented[V] {
	return &Instrumented[V]{inner: c, name: name}
}

// Get implements Cacher.
func (c *Instrumented[V]) Get(key string) (V, bool) {
	v, ok := c.inner.Get(key)
	if ok {
		metrics.CacheHits.WithLabelValues(c.name).Inc()
	} else {
		metrics.CacheMisses.WithLabelValues(c.name).Inc()
	}
	return v, ok
}

// Set implements Cacher.
func (c *Instrumented[V]) Set(key string, value V) {
	c.inner.Set(key, value)
	c.mu.Lock()
	due := time.Since(c.lastSync) >= syncInterval
	c.mu.Unlock()
	if due {
		c.Sync()
	}
}

// Delete implements Cacher.
func (c *Instrumented[V]) Delete(key string) {
	c.inner.Delete(key)
	c.Sync()
}

// Clear implements Cacher.
func (c *Instrumented[V]) Clear() {
	c.inner.Clear()
	c.Sync()
}

// Len implements Cacher.
func (c *Instrumented[V]) Len() int { return c.inner.Len() }

// GetStats implements Cacher.
func (c *Instrumented[V]) GetStats() Stats { return c.inner.GetStats() }

// HitRate implements Cacher.
func (c *Instrumented[V]) HitRate() float64 { return c.inner.HitRate() }

// Close implements Cacher.
func (c *Instrumented[V]) Close() error { return c.inner.Close() }

// Sync publishes the current size and any new evictions.
func (c *Instrumented[V]) Sync() {
	s := c.inner.GetStats()
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(s.TotalKeys))

	c.mu.Lock()
	c.lastSync = time.Now()
	delta := s.Evictions - c.lastEvictions
	if delta > 0 {
		c.lastEvictions = s.Evictions
	}
	c.mu.Unlock()
	if delta > 0 {
		metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(delta))
	}
}
