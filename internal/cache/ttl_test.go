// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package cache

import (
	"sync"
	"testing"
	"time"
)

// fakeClock is a settable time source for expiry tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func TestTTL_Expiry(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := NewTTL[string](time.Minute, time.Hour)
	defer c.Close()
	c.now = clock.Now

	c.Set("movie_1", "a")
	clock.Advance(30 * time.Second)
	if _, ok := c.Get("movie_1"); !ok {
		t.Fatal("entry should still be live")
	}

	clock.Advance(31 * time.Second)
	if _, ok := c.Get("movie_1"); ok {
		t.Fatal("entry should have expired")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be removed on Get, Len() = %d", c.Len())
	}
	if s := c.GetStats(); s.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", s.Evictions)
	}
}

func TestTTL_Cleanup(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := NewTTL[int](time.Minute, time.Hour)
	defer c.Close()
	c.now = clock.Now

	c.Set("a", 1)
	c.Set("b", 2)
	clock.Advance(2 * time.Minute)
	c.Set("c", 3)

	if removed := c.cleanup(); removed != 2 {
		t.Errorf("cleanup() removed %d, want 2", removed)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if s := c.GetStats(); !s.LastCleanup.Equal(clock.Now()) {
		t.Errorf("LastCleanup = %v, want %v", s.LastCleanup, clock.Now())
	}
}

func TestTTL_CloseIdempotent(t *testing.T) {
	c := NewTTL[int](time.Minute, 10*time.Millisecond)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}
