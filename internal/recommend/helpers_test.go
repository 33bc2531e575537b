// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/tomtom215/watchnext/internal/cache"
	"github.com/tomtom215/watchnext/internal/catalog"
)

var errUnavailable = errors.New("catalog unavailable")

// fakeCatalog is an in-memory Catalog that counts calls.
type fakeCatalog struct {
	mu sync.Mutex

	details     map[string]*catalog.Details
	neighbors   map[string][]catalog.Summary
	neighborErr error
	trending    []catalog.Summary
	trendingErr error
	search      []catalog.Summary
	searchErr   error

	detailCalls   map[string]int
	neighborCalls []string
	searchCalls   int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		details:     make(map[string]*catalog.Details),
		neighbors:   make(map[string][]catalog.Summary),
		detailCalls: make(map[string]int),
	}
}

func (f *fakeCatalog) addDetails(mediaType catalog.MediaType, id int, rating float64, genres ...int) {
	d := &catalog.Details{ID: id, VoteAverage: rating, Overview: fmt.Sprintf("overview %d", id)}
	for _, g := range genres {
		d.Genres = append(d.Genres, catalog.Genre{ID: g})
	}
	f.details[detailKey(mediaType, id)] = d
}

func (f *fakeCatalog) FetchDetails(_ context.Context, mediaType catalog.MediaType, id int) (*catalog.Details, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := detailKey(mediaType, id)
	f.detailCalls[key]++
	d, ok := f.details[key]
	if !ok {
		return nil, &catalog.FetchError{Op: "details", Path: "/" + key, StatusCode: 404, Err: catalog.ErrUpstreamStatus}
	}
	return d, nil
}

func (f *fakeCatalog) FetchNeighbors(_ context.Context, mediaType catalog.MediaType, id int) ([]catalog.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := detailKey(mediaType, id)
	f.neighborCalls = append(f.neighborCalls, key)
	if f.neighborErr != nil {
		return nil, f.neighborErr
	}
	return f.neighbors[key], nil
}

func (f *fakeCatalog) FetchTrending(context.Context) ([]catalog.Summary, error) {
	return f.trending, f.trendingErr
}

func (f *fakeCatalog) Search(context.Context, string) ([]catalog.Summary, error) {
	f.mu.Lock()
	f.searchCalls++
	f.mu.Unlock()
	return f.search, f.searchErr
}

func (f *fakeCatalog) calls(mediaType catalog.MediaType, id int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.detailCalls[detailKey(mediaType, id)]
}

// newTestEngine builds an engine over fc with sequential workers unless
// mutate changes them.
func newTestEngine(t *testing.T, fc *fakeCatalog, mutate func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Workers = WorkerLimits{Enrich: 1, Discover: 1, Score: 1}
	if mutate != nil {
		mutate(cfg)
	}
	details := NewDetailCache(cache.NewMap[DetailRecord]())
	t.Cleanup(func() { _ = details.Close() })

	e, err := NewEngine(cfg, fc, details)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func movie(id int, title string, rating float64) catalog.Summary {
	return catalog.Summary{
		ID:          id,
		Title:       title,
		MediaType:   "movie",
		PosterPath:  fmt.Sprintf("/p%d.jpg", id),
		VoteAverage: rating,
		ReleaseDate: "1995-09-22",
	}
}
