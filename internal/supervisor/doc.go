// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor runs the long-lived parts of the server under a suture
supervision tree.

	cinematch (root)
	├── data-layer   poster warmup
	└── api-layer    HTTP server

Services that fail are restarted with backoff; once the failure rate
passes FailureThreshold the supervisor waits FailureBackoff before trying
again. Supervisor events go through sutureslog into the zerolog logger
via logging.NewSlogLogger.

The recommendation model itself is built before the tree starts, so a
restarted HTTP service serves the same model.
*/
package supervisor
