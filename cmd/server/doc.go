// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package main is the Cinematch HTTP server.

Startup is strictly ordered:

 1. Configuration: koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Poster cache: JSON file or Badger store, TMDB API and page fetchers
 4. Model: CSV load, tag text, vocabulary and the full similarity matrix
 5. Supervisor tree: HTTP server plus an optional poster warmup

The model is immutable once built; a failed dataset load is fatal.

Common environment variables:

	MOVIES_CSV=tmdb_5000_movies.csv
	CREDITS_CSV=tmdb_5000_credits.csv
	TMDB_API_KEY=<key>          # optional; pages are scraped without it
	POSTER_STORE=file           # file or badger
	POSTER_CACHE_FILE=poster_cache.json
	HTTP_PORT=8000
	FRONTEND_URL=https://...    # added to the CORS allow list
	LOG_LEVEL=info
	LOG_FORMAT=json

Shutdown on SIGINT or SIGTERM drains in-flight requests, then closes the
poster store.
*/
package main
