// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

type detail struct {
	Genres []int   `json:"genres"`
	Rating float64 `json:"rating"`
}

// backends returns one instance of every policy for contract tests.
func backends(t *testing.T) map[string]Cacher[detail] {
	t.Helper()
	b, err := NewBadger[detail](time.Hour)
	if err != nil {
		t.Fatalf("NewBadger() error = %v", err)
	}
	ttl := NewTTL[detail](time.Hour, time.Hour)
	t.Cleanup(func() {
		_ = b.Close()
		_ = ttl.Close()
	})
	return map[string]Cacher[detail]{
		"unbounded": NewMap[detail](),
		"ttl":       ttl,
		"lru":       NewLRU[detail](100, 0),
		"badger":    b,
	}
}

func TestCacher_Contract(t *testing.T) {
	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok := c.Get("movie_550"); ok {
				t.Fatal("empty cache returned a hit")
			}

			want := detail{Genres: []int{18, 53}, Rating: 8.4}
			c.Set("movie_550", want)

			got, ok := c.Get("movie_550")
			if !ok {
				t.Fatal("expected hit after Set")
			}
			if got.Rating != want.Rating || len(got.Genres) != 2 || got.Genres[1] != 53 {
				t.Errorf("Get() = %+v, want %+v", got, want)
			}

			c.Set("movie_550", detail{Rating: 1})
			if got, _ := c.Get("movie_550"); got.Rating != 1 {
				t.Errorf("last write should win, got rating %v", got.Rating)
			}

			c.Set("tv_1399", detail{Rating: 9})
			if n := c.Len(); n != 2 {
				t.Errorf("Len() = %d, want 2", n)
			}

			c.Delete("tv_1399")
			if _, ok := c.Get("tv_1399"); ok {
				t.Error("expected miss after Delete")
			}

			c.Clear()
			if n := c.Len(); n != 0 {
				t.Errorf("Len() after Clear = %d, want 0", n)
			}

			s := c.GetStats()
			if s.Hits < 2 || s.Misses < 2 {
				t.Errorf("stats = %+v, want at least 2 hits and 2 misses", s)
			}
			if c.HitRate() <= 0 {
				t.Error("expected positive hit rate")
			}
		})
	}
}

func TestCacher_ConcurrentDistinctKeys(t *testing.T) {
	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					key := fmt.Sprintf("movie_%d", i)
					c.Set(key, detail{Rating: float64(i)})
					if v, ok := c.Get(key); !ok || v.Rating != float64(i) {
						t.Errorf("%s: got %+v ok=%v", key, v, ok)
					}
				}(i)
			}
			wg.Wait()
			if n := c.Len(); n != 50 {
				t.Errorf("Len() = %d, want 50", n)
			}
		})
	}
}

func TestNewCacher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default is unbounded", Config{}, false},
		{"unbounded", Config{Type: TypeUnbounded}, false},
		{"ttl", Config{Type: TypeTTL, TTL: time.Minute}, false},
		{"ttl without ttl", Config{Type: TypeTTL}, true},
		{"lru", Config{Type: TypeLRU, Capacity: 10}, false},
		{"lru without capacity", Config{Type: TypeLRU}, true},
		{"badger", Config{Type: TypeBadger, TTL: time.Minute}, false},
		{"badger without ttl", Config{Type: TypeBadger}, true},
		{"unknown", Config{Type: "redis"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCacher[detail](tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCacher() error = %v", err)
			}
			defer c.Close()
			c.Set("k", detail{Rating: 1})
			if _, ok := c.Get("k"); !ok {
				t.Error("expected hit")
			}
		})
	}
}

func TestNewCacher_UnboundedType(t *testing.T) {
	c, err := NewCacher[int](Config{Type: TypeUnbounded})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*Map[int]); !ok {
		t.Errorf("NewCacher(unbounded) = %T, want *Map[int]", c)
	}
}

func TestStatsHitRate(t *testing.T) {
	t.Parallel()

	if got := (Stats{}).HitRate(); got != 0 {
		t.Errorf("idle HitRate = %v, want 0", got)
	}
	if got := (Stats{Hits: 3, Misses: 1}).HitRate(); got != 75 {
		t.Errorf("HitRate = %v, want 75", got)
	}
}
