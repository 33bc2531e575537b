// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package cache

import (
	"sync"
	"time"
)

type ttlEntry[V any] struct {
	data      V
	expiresAt time.Time
}

// TTL is a cache whose entries expire a fixed duration after they were set.
// Expired entries are dropped lazily on Get and in bulk by a background
// sweep every cleanup interval.
type TTL[V any] struct {
	mu      sync.RWMutex
	entries map[string]ttlEntry[V]
	ttl     time.Duration
	now     func() time.Time

	statsMu sync.Mutex
	stats   Stats

	stop     chan struct{}
	stopOnce sync.Once
}

// NewTTL starts a TTL cache. cleanupInterval <= 0 defaults to five minutes.
func NewTTL[V any](ttl, cleanupInterval time.Duration) *TTL[V] {
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	c := &TTL[V]{
		entries: make(map[string]ttlEntry[V]),
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	c.stats.LastCleanup = c.now()
	go c.cleanupLoop(cleanupInterval)
	return c
}

// Get implements Cacher.
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		c.record(0, 1, 0)
		return zero, false
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if cur, still := c.entries[key]; still && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		c.record(0, 1, 1)
		return zero, false
	}

	c.record(1, 0, 0)
	return entry.data, true
}

// Set implements Cacher.
func (c *TTL[V]) Set(key string, value V) {
	c.mu.Lock()
	c.entries[key] = ttlEntry[V]{data: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Delete implements Cacher.
func (c *TTL[V]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear implements Cacher.
func (c *TTL[V]) Clear() {
	c.mu.Lock()
	n := int64(len(c.entries))
	c.entries = make(map[string]ttlEntry[V])
	c.mu.Unlock()
	c.record(0, 0, n)
}

// Len implements Cacher. Entries past expiry but not yet swept are counted.
func (c *TTL[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats implements Cacher.
func (c *TTL[V]) GetStats() Stats {
	c.statsMu.Lock()
	s := c.stats
	c.statsMu.Unlock()
	s.TotalKeys = int64(c.Len())
	return s
}

// HitRate implements Cacher.
func (c *TTL[V]) HitRate() float64 {
	return c.GetStats().HitRate()
}

// Close stops the background sweep.
func (c *TTL[V]) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return nil
}

func (c *TTL[V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes every expired entry and returns how many were dropped.
func (c *TTL[V]) cleanup() int {
	now := c.now()
	c.mu.Lock()
	removed := 0
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	c.statsMu.Lock()
	c.stats.Evictions += int64(removed)
	c.stats.LastCleanup = now
	c.statsMu.Unlock()
	return removed
}

func (c *TTL[V]) record(hits, misses, evictions int64) {
	c.statsMu.Lock()
	c.stats.Hits += hits
	c.stats.Misses += misses
	c.stats.Evictions += evictions
	c.statsMu.Unlock()
}
