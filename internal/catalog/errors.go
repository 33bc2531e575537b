// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUpstreamStatus marks a non-200 catalog response.
	ErrUpstreamStatus = errors.New("catalog returned non-success status")

	// ErrDecode marks a response body that could not be decoded.
	ErrDecode = errors.New("catalog response could not be decoded")

	// ErrCircuitOpen marks a call rejected by the circuit breaker.
	ErrCircuitOpen = errors.New("catalog circuit breaker is open")

	// ErrInvalidRequest marks arguments rejected before any network call.
	ErrInvalidRequest = errors.New("invalid catalog request")
)

// FetchError describes a failed catalog call. It wraps one of the sentinel
// errors above or the underlying transport error.
type FetchError struct {
	Op         string // details, neighbors, trending, search
	Path       string // request path without query or credentials
	StatusCode int    // 0 when no response was received
	Body       string // truncated upstream body for non-200 responses
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog %s %s: status %d: %v", e.Op, e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("catalog %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// outcome classifies err for the catalog_requests_total outcome label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrCircuitOpen):
		return "rejected"
	case errors.Is(err, ErrUpstreamStatus):
		return "http_error"
	case errors.Is(err, ErrDecode):
		return "decode_error"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid"
	default:
		return "network_error"
	}
}

// callerAbort marks a failure that happened after the caller's own context
// ended. It is unwrapped before the error leaves the client.
type callerAbort struct {
	err error
}

func (a *callerAbort) Error() string { return a.err.Error() }
func (a *callerAbort) Unwrap() error { return a.err }

// isClientFault reports whether err was caused by the request itself rather
// than catalog health. Such errors do not count against the breaker.
func isClientFault(err error) bool {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return false
	}
	if errors.Is(err, ErrInvalidRequest) {
		return true
	}
	return fe.StatusCode >= 400 && fe.StatusCode < 500 && fe.StatusCode != http.StatusTooManyRequests
}
