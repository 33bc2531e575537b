// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package services

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/watchnext/internal/cache"
	"github.com/tomtom215/watchnext/internal/metrics"
)

type countingSyncer struct {
	syncs atomic.Int32
}

func (c *countingSyncer) Sync()            { c.syncs.Add(1) }
func (c *countingSyncer) Len() int         { return 0 }
func (c *countingSyncer) HitRate() float64 { return 0 }

func TestCacheSyncService_Ticks(t *testing.T) {
	t.Parallel()

	c := &countingSyncer{}
	svc := NewCacheSyncService(c, 10*time.Millisecond, zerolog.New(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 75*time.Millisecond)
	defer cancel()
	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v", err)
	}
	// initial + at least a few ticks + final
	if got := c.syncs.Load(); got < 3 {
		t.Errorf("Sync called %d times, want >= 3", got)
	}
}

func TestCacheSyncService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewCacheSyncService(&countingSyncer{}, 0, zerolog.Nop())
	if svc.interval != 15*time.Second {
		t.Errorf("interval = %v, want 15s", svc.interval)
	}
	if svc.String() != "cache-sync" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCacheSyncService_PublishesSize(t *testing.T) {
	t.Parallel()

	inner, err := cache.NewCacher[int](cache.Config{Type: cache.TypeUnbounded})
	if err != nil {
		t.Fatalf("NewCacher: %v", err)
	}
	c := cache.WithMetrics(inner, "sync_service_test")
	c.Set("a", 1)
	c.Set("b", 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = NewCacheSyncService(c, time.Hour, zerolog.Nop()).Serve(ctx)

	if got := testutil.ToFloat64(metrics.CacheSize.WithLabelValues("sync_service_test")); got != 2 {
		t.Errorf("cache size gauge = %v, want 2", got)
	}
}
