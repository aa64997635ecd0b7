// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"sort"
	"strings"
)

// Catalogue is the ordered, immutable set of movies. It is safe for
// concurrent reads.
type Catalogue struct {
	movies []MovieRecord
	byID   map[int]int
}

// GenreCount is a genre with the number of movies listing it.
type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// New builds a Catalogue from records in order. Later records repeating an
// earlier id are dropped so ids stay unique.
func New(records []MovieRecord) *Catalogue {
	c := &Catalogue{
		movies: make([]MovieRecord, 0, len(records)),
		byID:   make(map[int]int, len(records)),
	}
	for _, r := range records {
		if _, dup := c.byID[r.ID]; dup {
			continue
		}
		c.byID[r.ID] = len(c.movies)
		c.movies = append(c.movies, r)
	}
	return c
}

// Len returns the number of movies.
func (c *Catalogue) Len() int { return len(c.movies) }

// At returns the record at row. The pointer must not be used to mutate.
func (c *Catalogue) At(row int) *MovieRecord {
	return &c.movies[row]
}

// Row returns the row index for a movie id.
func (c *Catalogue) Row(id int) (int, bool) {
	row, ok := c.byID[id]
	return row, ok
}

// ByID returns the record for a movie id.
func (c *Catalogue) ByID(id int) (*MovieRecord, bool) {
	row, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.movies[row], true
}

// Titles returns all titles in row order.
func (c *Catalogue) Titles() []string {
	out := make([]string, len(c.movies))
	for i := range c.movies {
		out[i] = c.movies[i].Title
	}
	return out
}

// TagTexts returns all tag texts in row order.
func (c *Catalogue) TagTexts() []string {
	out := make([]string, len(c.movies))
	for i := range c.movies {
		out[i] = c.movies[i].TagText
	}
	return out
}

// TopRated returns up to limit rows with at least minVotes votes, highest
// vote average first. Equal averages keep row order.
func (c *Catalogue) TopRated(minVotes, limit int) []int {
	rows := make([]int, 0)
	for i := range c.movies {
		if c.movies[i].VoteCount >= minVotes {
			rows = append(rows, i)
		}
	}
	return c.rankByRating(rows, limit)
}

// ByGenre returns up to limit rows listing genre (case-insensitive), ranked by
// vote average. Movies with at least minVotes votes are preferred; when none
// qualify every matching movie is ranked. A nil result means no movie lists
// the genre.
func (c *Catalogue) ByGenre(genre string, minVotes, limit int) []int {
	genreLower := strings.ToLower(strings.TrimSpace(genre))
	if genreLower == "" {
		return nil
	}

	var matched, qualified []int
	for i := range c.movies {
		if !c.movies[i].hasGenreLower(genreLower) {
			continue
		}
		matched = append(matched, i)
		if c.movies[i].VoteCount >= minVotes {
			qualified = append(qualified, i)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	if len(qualified) == 0 {
		qualified = matched
	}
	return c.rankByRating(qualified, limit)
}

// Genres counts display genres across the catalogue, sorted by name.
func (c *Catalogue) Genres() []GenreCount {
	counts := make(map[string]int)
	for i := range c.movies {
		for _, g := range c.movies[i].Genres {
			counts[g]++
		}
	}
	out := make([]GenreCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, GenreCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *Catalogue) rankByRating(rows []int, limit int) []int {
	sort.SliceStable(rows, func(i, j int) bool {
		return c.movies[rows[i]].VoteAverage > c.movies[rows[j]].VoteAverage
	})
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
