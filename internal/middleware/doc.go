// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

/*
Package middleware provides HTTP middleware components for the API.

Key Components:

  - Request ID: UUID-based request tracking, propagated into the logging context
  - Access Log: one structured zerolog line per request
  - Prometheus Metrics: request count, latency and in-flight instrumentation
  - Compression: gzip for clients that accept it

All middleware use the http.HandlerFunc form and are adapted to chi's
func(http.Handler) http.Handler form by the router.

Middleware Stack:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Group(func(r chi.Router) {
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    r.Use(chiMiddleware(middleware.AccessLog))
	    r.Use(chiMiddleware(middleware.Compression))
	    r.Get("/get_trending", h.Trending)
	})

Metric labels use the chi route pattern rather than the raw path so that
query strings and unmatched paths cannot grow label cardinality.
*/
package middleware
