// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

/*
Package main is the entry point for the WatchNext server.

WatchNext turns a list of watched movies and TV shows into ranked
recommendations using the TMDB catalog. It also serves trending titles,
title search and a small single-page UI.

# Application Architecture

	RootSupervisor ("watchnext")
	├── CacheSupervisor ("cache-layer")
	│   └── cache-sync (detail cache gauges)
	└── APISupervisor ("api-layer")
	    └── http-server (Chi router)

Component initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON/console output modes
 3. Detail cache: unbounded, ttl, lru or badger
 4. Catalog client: TMDB v3 with circuit breaker
 5. Recommendation engine
 6. HTTP router and handlers
 7. Supervisor tree

# Configuration

The only required setting is the TMDB key:

	TMDB_API_KEY=... ./watchnext

See internal/config for every key and its environment variable.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
connections for up to ShutdownTimeout, the detail cache is closed, and
services that failed to stop are reported.
*/
package main
