// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRow is returned for row indexes outside the catalogue.
	ErrInvalidRow = errors.New("invalid row")
)

// NotFoundError reports an unresolvable title, an unknown movie id or an
// unknown genre.
type NotFoundError struct {
	Query string
	ID    int
	Genre string

	byID bool
}

func idNotFound(id int) *NotFoundError {
	return &NotFoundError{ID: id, byID: true}
}

func (e *NotFoundError) Error() string {
	switch {
	case e.byID:
		return fmt.Sprintf("movie %d not found", e.ID)
	case e.Genre != "":
		return fmt.Sprintf("genre %q not found", e.Genre)
	default:
		return fmt.Sprintf("movie %q not found", e.Query)
	}
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NoOverview replaces an empty overview in recommendation results.
const NoOverview = "No overview available"

// MovieSummary is the list view of a movie.
type MovieSummary struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	PosterURL   string   `json:"poster_url"`
	VoteAverage float64  `json:"vote_average"`
	ReleaseDate string   `json:"release_date"`
	Genres      []string `json:"genres"`
	Runtime     float64  `json:"runtime"`
	Tagline     string   `json:"tagline"`
	Director    string   `json:"director"`
}

// MovieDetail is the full view of a single movie.
type MovieDetail struct {
	MovieSummary

	VoteCount           int                  `json:"vote_count"`
	Cast                []catalog.CastMember `json:"cast"`
	Crew                []catalog.CrewMember `json:"crew"`
	Budget              int64                `json:"budget"`
	Revenue             int64                `json:"revenue"`
	SpokenLanguages     []string             `json:"spoken_languages"`
	ProductionCompanies []string             `json:"production_companies"`
	Status              string               `json:"status"`
}

// Recommendation is the result of RecommendByTitle.
type Recommendation struct {
	// Query is the caller's title as given.
	Query string `json:"query"`

	// MatchedID and MatchedTitle identify the resolved source movie.
	MatchedID    int    `json:"matched_id"`
	MatchedTitle string `json:"matched_title"`

	// Strategy is the resolver step that found the source movie.
	Strategy string `json:"strategy"`

	// Diversity is the genre diversity applied to Results, 0 for none.
	Diversity float64 `json:"diversity"`

	Results []MovieSummary `json:"results"`
}

// Status summarises engine state for health checks.
type Status struct {
	Movies        int           `json:"movies"`
	Vocabulary    int           `json:"vocabulary"`
	Posters       int           `json:"posters_cached"`
	BuildDuration time.Duration `json:"build_duration_ns"`
	BuiltAt       time.Time     `json:"built_at"`
}
