// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend wires the catalogue, the similarity matrix, the title
// resolver and the poster cache into one immutable Engine.
//
// # Architecture
//
// The Engine is built once at startup:
//
//	catalog.Load -> similarity.Build(tag texts) -> resolve.New(titles)
//
// After NewEngine returns nothing it owns is mutated, so every method is safe
// for concurrent use without locks. The poster cache is owned by the caller
// and handles its own synchronization.
//
// # Operations
//
// The core operations map directly onto the underlying components:
//
//   - FindMovie: title string to catalogue row
//   - Recommend: row to ranked neighbour rows
//   - ResolvePoster: movie id to poster URL (never fails)
//   - GetByID: movie id to record
//   - ListTitles: every title in catalogue order
//
// Higher level views (RecommendByTitle, TopRated, Detail, ByGenre,
// Autocomplete) combine these and decorate results with posters resolved
// concurrently. RecommendDiverse reranks a wider neighbour pool with MMR
// (see the reranking package) to spread results across genres.
//
// # Usage
//
//	cat, stats, err := catalog.Load(moviesPath, creditsPath)
//	posters, err := poster.New(cfg.Poster, nil)
//	engine, err := recommend.NewEngine(cat, posters, recommend.DefaultConfig(), logger)
//	recs, err := engine.RecommendByTitle(ctx, "The Dark Knight", 5)
package recommend
