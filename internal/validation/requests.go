// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

// MaxRecommendations bounds k on the recommend endpoint.
const MaxRecommendations = 50

// RecommendRequest is the body of POST /api/v1/recommend. K of zero means
// the configured default, as does an absent Diversity. An empty or blank
// title is left to the resolver, which reports it as not found.
type RecommendRequest struct {
	Title     string   `json:"title" validate:"max=500"`
	K         int      `json:"k" validate:"min=0,max=50"`
	Diversity *float64 `json:"diversity" validate:"omitempty,min=0,max=1"`
}

// AutocompleteRequest carries the q parameter of GET /api/v1/autocomplete.
type AutocompleteRequest struct {
	Query string `query:"q" validate:"required,max=200"`
}

// MovieIDRequest carries the {id} path parameter of GET /api/v1/movies/{id}.
type MovieIDRequest struct {
	ID string `param:"id" validate:"required,numeric"`
}

// GenreRequest carries the {genre} path parameter.
type GenreRequest struct {
	Genre string `param:"genre" validate:"required,notblank,max=100"`
}
