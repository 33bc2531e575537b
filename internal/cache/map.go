// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package cache

import (
	"sync"
	"sync/atomic"
)

// Map is an unbounded cache. Nothing is ever evicted; memory grows with the
// number of distinct keys for the lifetime of the process.
type Map[V any] struct {
	mu      sync.RWMutex
	entries map[string]V

	hits   atomic.Int64
	misses atomic.Int64
}

// NewMap returns an empty unbounded cache.
func NewMap[V any]() *Map[V] {
	return &Map[V]{entries: make(map[string]V)}
}

// Get implements Cacher.
func (c *Map[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Set implements Cacher. Concurrent writers of the same key: last one wins.
func (c *Map[V]) Set(key string, value V) {
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
}

// Delete implements Cacher.
func (c *Map[V]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear implements Cacher.
func (c *Map[V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]V)
	c.mu.Unlock()
}

// Len implements Cacher.
func (c *Map[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats implements Cacher.
func (c *Map[V]) GetStats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		TotalKeys: int64(c.Len()),
	}
}

// HitRate implements Cacher.
func (c *Map[V]) HitRate() float64 {
	return c.GetStats().HitRate()
}

// Close implements Cacher.
func (c *Map[V]) Close() error {
	return nil
}
