// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package poster resolves TMDB poster image URLs for movie ids.

Resolution never fails the caller. A Cache answers from memory first, then
asks each configured Fetcher in order:

 1. APIFetcher queries the TMDB v3 movie endpoint (needs an API key)
 2. PageFetcher scrapes the public movie page for a poster image path

The first non-empty URL is stored in memory and persisted through a Store
(flat JSON file or BadgerDB). Empty results are never cached, so a movie
without a poster is looked up again on the next request.

Each fetcher runs behind its own gobreaker circuit breaker so a dead upstream
fails fast instead of costing a full timeout per movie. Page scraping is also
throttled with a token bucket.

# Concurrency

ResolveBatch issues all lookups concurrently and returns results in input
order. Concurrent cold lookups for the same id may both reach the upstream;
the result is idempotent so no singleflight is used.
*/
package poster
