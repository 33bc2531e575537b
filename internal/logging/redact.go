// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package logging

import (
	"net/url"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveParams are query parameters that must never reach a log line.
var sensitiveParams = []string{"api_key", "apikey", "access_token", "token"}

// RedactURL masks credential-bearing query parameters in raw. Inputs that
// do not parse as URLs are returned unchanged.
//
//	logging.RedactURL("https://api.themoviedb.org/3/movie/550?api_key=abc")
//	// https://api.themoviedb.org/3/movie/550?api_key=%5BREDACTED%5D
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return raw
	}
	q := u.Query()
	changed := false
	for key := range q {
		if isSensitiveParam(key) {
			q.Set(key, redacted)
			changed = true
		}
	}
	if !changed {
		return raw
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// RedactSecret keeps the last four characters of a secret for correlation.
func RedactSecret(secret string) string {
	if len(secret) <= 4 {
		return redacted
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

func isSensitiveParam(key string) bool {
	k := strings.ToLower(key)
	for _, s := range sensitiveParams {
		if k == s {
			return true
		}
	}
	return false
}
