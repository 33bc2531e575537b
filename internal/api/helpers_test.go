// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/watchnext/internal/models"
	"github.com/tomtom215/watchnext/internal/recommend"
)

// fakeRecommender records calls and returns canned results.
type fakeRecommender struct {
	mu          sync.Mutex
	watched     []recommend.WatchedItem
	queries     []string
	deadlineSet bool

	recommendations []models.Recommendation
	trending        []models.TrendingItem
	search          []models.SearchResult
}

func (f *fakeRecommender) Recommend(ctx context.Context, watched []recommend.WatchedItem) *models.RecommendationResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.watched = watched
	_, f.deadlineSet = ctx.Deadline()
	return &models.RecommendationResponse{
		Status:         models.StatusSuccess,
		Data:           f.recommendations,
		ProcessingTime: "0.12s",
	}
}

func (f *fakeRecommender) Trending(ctx context.Context) []models.TrendingItem {
	return f.trending
}

func (f *fakeRecommender) Search(ctx context.Context, query string) []models.SearchResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.search
}

type fakeCacheStats struct {
	size    int
	hitRate float64
}

func (f fakeCacheStats) Len() int         { return f.size }
func (f fakeCacheStats) HitRate() float64 { return f.hitRate }

// newTestServer builds the full router around fr. mutate may adjust the
// middleware config before the router is built.
func newTestServer(t *testing.T, fr *fakeRecommender, hcfg HandlerConfig, mutate func(*ChiMiddlewareConfig)) http.Handler {
	t.Helper()
	h, err := NewHandler(fr, fakeCacheStats{size: 3, hitRate: 50}, hcfg)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	mw := DefaultChiMiddlewareConfig()
	mw.RequestTimeout = time.Second
	if mutate != nil {
		mutate(mw)
	}
	router, err := NewRouter(h, mw)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return router.SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	if resp.Status != models.StatusError {
		t.Fatalf("status = %q, want error", resp.Status)
	}
	if resp.Error == nil {
		t.Fatal("error object missing")
	}
	return resp
}
