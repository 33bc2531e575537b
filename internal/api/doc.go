// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

/*
Package api provides the HTTP surface of WatchNext using the Chi router.

Routes:

	GET  /                     home page (embedded template)
	GET  /get_trending         trending cards, JSON array
	POST /get_recommendations  {status, data, processing_time}
	GET  /search?q=            search rows, JSON array
	GET  /api/v1/health        service health envelope
	GET  /metrics              Prometheus exposition

Error Policy:

The three data endpoints never report catalog failures as errors; they
answer with empty arrays. Error envelopes (models.APIResponse with
status "error") are only produced for client faults: malformed JSON,
failed validation, unknown routes, wrong methods and rate limiting.

Middleware:

Global middleware assigns request ids, resolves the client IP, recovers
panics and applies CORS. The data group adds per-IP rate limiting,
Prometheus instrumentation, access logging, gzip and a per-request
deadline.
*/
package api
