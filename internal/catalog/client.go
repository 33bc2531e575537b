// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

// Package catalog is the HTTP client for the TMDB v3 catalog API.
//
// Every call carries the static API key, runs under a bounded timeout, and
// reports failure as a *FetchError instead of panicking or retrying. Callers
// decide whether a failure means "no data":
//
//	d, err := client.FetchDetails(ctx, catalog.MediaMovie, 550)
//	if err != nil {
//	    // treat as absent
//	}
//
// Connections are reused through a shared keep-alive transport. A circuit
// breaker fails calls fast while the catalog is unhealthy, and an optional
// semaphore caps outbound concurrency across all requests in the process.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/tomtom215/watchnext/internal/logging"
	"github.com/tomtom215/watchnext/internal/metrics"
)

// maxErrorBodySize caps how much of a non-200 body is kept for diagnostics.
const maxErrorBodySize = 4 * 1024

// breakerName labels the catalog breaker in metrics and logs.
const breakerName = "tmdb-api"

// Config configures a Client.
type Config struct {
	BaseURL       string
	APIKey        string
	Region        string
	DetailTimeout time.Duration
	ListTimeout   time.Duration
	MaxIdleConns  int
	MaxInFlight   int64 // 0 disables the process-wide cap
	Breaker       BreakerSettings

	// HTTPClient overrides the default keep-alive client. Its Timeout is
	// ignored in favor of the per-call timeouts above.
	HTTPClient *http.Client
}

// Client calls the catalog API. It is safe for concurrent use.
type Client struct {
	baseURL       string
	apiKey        string
	region        string
	detailTimeout time.Duration
	listTimeout   time.Duration

	http    *http.Client
	breaker *breaker
	sem     *semaphore.Weighted
	logger  zerolog.Logger
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("catalog: api key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("catalog: base url is required")
	}
	if cfg.DetailTimeout <= 0 {
		cfg.DetailTimeout = 2 * time.Second
	}
	if cfg.ListTimeout <= 0 {
		cfg.ListTimeout = 5 * time.Second
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = 64
	}
	if cfg.Region == "" {
		cfg.Region = "IN"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        cfg.MaxIdleConns,
				MaxIdleConnsPerHost: cfg.MaxIdleConns,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
				ForceAttemptHTTP2:   true,
			},
		}
	}

	c := &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:        cfg.APIKey,
		region:        cfg.Region,
		detailTimeout: cfg.DetailTimeout,
		listTimeout:   cfg.ListTimeout,
		http:          httpClient,
		logger:        logging.WithComponent("catalog"),
	}
	if cfg.Breaker.Enabled {
		c.breaker = newBreaker(breakerName, cfg.Breaker)
	}
	if cfg.MaxInFlight > 0 {
		c.sem = semaphore.NewWeighted(cfg.MaxInFlight)
	}
	c.logger.Debug().
		Str("base_url", c.baseURL).
		Str("api_key", logging.RedactSecret(c.apiKey)).
		Str("region", c.region).
		Bool("breaker", c.breaker != nil).
		Int64("max_in_flight", cfg.MaxInFlight).
		Msg("catalog client configured")
	return c, nil
}

// Region returns the watch-provider country code.
func (c *Client) Region() string {
	return c.region
}

// BreakerState returns closed, half-open, open, or disabled.
func (c *Client) BreakerState() string {
	if c.breaker == nil {
		return "disabled"
	}
	return c.breaker.state()
}

// FetchDetails returns the details of one item with its watch providers
// appended, bounded by the detail timeout.
func (c *Client) FetchDetails(ctx context.Context, mediaType MediaType, id int) (*Details, error) {
	path := fmt.Sprintf("/%s/%d", mediaType, id)
	if err := checkItem(mediaType, id); err != nil {
		return nil, &FetchError{Op: "details", Path: path, Err: err}
	}

	params := url.Values{}
	params.Set("append_to_response", "watch/providers")

	var d Details
	if err := c.get(ctx, "details", path, params, c.detailTimeout, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// FetchNeighbors returns the catalog's recommendations for one item, first
// page only.
func (c *Client) FetchNeighbors(ctx context.Context, mediaType MediaType, id int) ([]Summary, error) {
	path := fmt.Sprintf("/%s/%d/recommendations", mediaType, id)
	if err := checkItem(mediaType, id); err != nil {
		return nil, &FetchError{Op: "neighbors", Path: path, Err: err}
	}

	var p page
	if err := c.get(ctx, "neighbors", path, nil, c.listTimeout, &p); err != nil {
		return nil, err
	}
	return p.Results, nil
}

// FetchTrending returns today's trending movies and shows.
func (c *Client) FetchTrending(ctx context.Context) ([]Summary, error) {
	var p page
	if err := c.get(ctx, "trending", "/trending/all/day", nil, c.listTimeout, &p); err != nil {
		return nil, err
	}
	return p.Results, nil
}

// Search runs a multi search (movies, shows and people) for query.
func (c *Client) Search(ctx context.Context, query string) ([]Summary, error) {
	const path = "/search/multi"
	if strings.TrimSpace(query) == "" {
		return nil, &FetchError{Op: "search", Path: path, Err: fmt.Errorf("%w: empty query", ErrInvalidRequest)}
	}

	params := url.Values{}
	params.Set("query", query)

	var p page
	if err := c.get(ctx, "search", path, params, c.listTimeout, &p); err != nil {
		return nil, err
	}
	return p.Results, nil
}

func checkItem(mediaType MediaType, id int) error {
	if !mediaType.Valid() {
		return fmt.Errorf("%w: media type %q", ErrInvalidRequest, mediaType)
	}
	if id <= 0 {
		return fmt.Errorf("%w: id %d", ErrInvalidRequest, id)
	}
	return nil
}

// get performs one GET under the timeout, breaker and in-flight cap, and
// decodes a 200 body into out.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, timeout time.Duration, out any) error {
	start := time.Now()

	if c.sem != nil {
		if err := c.sem.Acquire(ctx, 1); err != nil {
			ferr := &FetchError{Op: op, Path: path, Err: err}
			metrics.RecordCatalogRequest(op, outcome(ferr), time.Since(start))
			return ferr
		}
		defer c.sem.Release(1)
	}

	// A caller that is already gone must not reach the breaker.
	if err := ctx.Err(); err != nil {
		ferr := &FetchError{Op: op, Path: path, Err: err}
		metrics.RecordCatalogRequest(op, outcome(ferr), time.Since(start))
		return ferr
	}

	metrics.CatalogInFlight.Inc()
	defer metrics.CatalogInFlight.Dec()

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	call := func() error {
		err := c.do(callCtx, op, path, params, out)
		if err != nil && ctx.Err() != nil {
			return &callerAbort{err: err}
		}
		return err
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.execute(call)
		if errors.Is(err, ErrCircuitOpen) {
			err = &FetchError{Op: op, Path: path, Err: err}
		}
	} else {
		err = call()
	}
	var abort *callerAbort
	if errors.As(err, &abort) {
		err = abort.err
	}

	metrics.RecordCatalogRequest(op, outcome(err), time.Since(start))
	if err != nil {
		c.logger.Debug().Err(err).Str("op", op).Str("path", path).Dur("elapsed", time.Since(start)).Msg("catalog call failed")
	}
	return err
}

func (c *Client) do(ctx context.Context, op, path string, params url.Values, out any) error {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("api_key", c.apiKey)
	endpoint := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return &FetchError{Op: op, Path: path, Err: fmt.Errorf("%w: %v", ErrInvalidRequest, err)}
	}
	req.Header.Set("Accept", "application/json")
	if logging.IsLevelEnabled(zerolog.TraceLevel) {
		c.logger.Trace().Str("op", op).Str("url", logging.RedactURL(endpoint)).Msg("catalog request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error embeds the full URL; strip it so the key cannot leak.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return &FetchError{Op: op, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{
			Op:         op,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       readBodyForError(resp.Body),
			Err:        ErrUpstreamStatus,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Op: op, Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrDecode, err)}
	}
	return nil
}

func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	return string(body)
}
