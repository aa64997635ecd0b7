// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package catalog loads the TMDB 5000 movie and credits exports and builds the
// immutable Catalogue consumed by the similarity engine and title resolver.
//
// # Loading
//
// Credits are left-joined into movies on movie id. Nested list columns
// (genres, keywords, cast, crew, spoken_languages, production_companies) are
// JSON arrays of objects; they are decoded with a tolerant parser that turns
// any malformed value into an empty list rather than an error.
//
// # Tag text
//
// Each record carries a lowercase tag text built from the overview, genre
// names, keyword names, the first three cast members and the director. Multi
// word names have their spaces removed so "Tom Hanks" becomes the single
// token "tomhanks".
//
// # Failure policy
//
// A missing or unreadable file, or a movies file without id/title columns,
// fails Load. Row level problems (bad numbers, bad JSON, duplicate ids) are
// logged at debug level and absorbed.
//
// # Row indexes
//
// A record's position in the Catalogue is its row index. Row indexes are
// stable for the lifetime of the process and match the similarity matrix.
package catalog
