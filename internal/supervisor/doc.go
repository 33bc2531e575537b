// WatchNext - Movie and TV Recommendations from Watch History
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/watchnext

/*
Package supervisor runs WatchNext's long-lived services under a suture v4
supervisor tree.

Tree layout:

	watchnext (root)
	├── cache-layer   periodic cache metric sync
	└── api-layer     HTTP server

A service that returns an error is restarted with suture's backoff. The
layers are separate supervisors so repeated failures of the cache sync never
put the HTTP server into backoff.

Supervisor events are logged through sutureslog using the slog adapter from
internal/logging, so they share the zerolog output of the rest of the process.

Shutdown:

Cancelling the context passed to Serve stops every service. Each service gets
ShutdownTimeout to return before it is reported by UnstoppedServiceReport.
*/
package supervisor
