// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

package catalog

import "strings"

// Images builds CDN URLs from the path fragments the catalog returns.
type Images struct {
	PosterBase string // full-size posters
	BannerBase string // small search thumbnails
}

// Poster returns the full-size poster URL for path.
func (i Images) Poster(path string) string {
	return join(i.PosterBase, path)
}

// Banner returns the thumbnail URL for path.
func (i Images) Banner(path string) string {
	return join(i.BannerBase, path)
}

// join concatenates base and path; catalog paths already start with "/".
func join(base, path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(base, "/") + path
}
