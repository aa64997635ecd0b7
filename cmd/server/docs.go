// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Cinematch API serves content-based movie recommendations over the TMDB
// 5000 dataset.
//
// @title Cinematch API
// @version 1.0
// @description Content-based movie recommendations from the TMDB 5000 dataset.
// @description
// @description Titles are resolved by exact, normalized, fuzzy and substring matching.
// @description Similarity is cosine similarity over bag-of-words tags built from
// @description overview, genres, keywords, top cast and director.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "NOT_FOUND", "message": "Movie 'x' not found. Try searching from the suggestions."},
// @description   "meta": {"timestamp": "2026-01-01T00:00:00Z", "duration_ms": 0}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/cinematch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Title resolution and similar-movie recommendations
//
// @tag.name Movies
// @tag.description Catalogue listing and movie detail
//
// @tag.name Genres
// @tag.description Genre counts and per-genre listings
//
// @tag.name Health
// @tag.description Health, liveness and readiness checks
package main
