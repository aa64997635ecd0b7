// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package resolve maps free-form user queries onto catalogue titles.
//
// Resolution tries four strategies in order and stops at the first one that
// produces a candidate:
//
//   - exact: case-insensitive equality
//   - normalized: equality after dropping spaces, hyphens, colons and apostrophes
//   - fuzzy: best token-sort ratio at or above the threshold
//   - substring: case-insensitive containment
//
// Within a strategy the earliest catalogue row wins.
package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/cinematch/internal/cache"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("title not found")

// NotFoundError carries the original query for user-facing messages.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("title %q not found", e.Query)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Strategy names the matching step that produced a Match.
type Strategy string

// Resolution strategies in the order they are tried.
const (
	StrategyExact      Strategy = "exact"
	StrategyNormalized Strategy = "normalized"
	StrategyFuzzy      Strategy = "fuzzy"
	StrategySubstring  Strategy = "substring"
)

// Match is a resolved catalogue row.
type Match struct {
	Row      int
	Strategy Strategy
	// Score is the token-sort ratio for fuzzy matches, 100 otherwise.
	Score int
}

// Options tunes the resolver. Zero values take the defaults.
type Options struct {
	FuzzyThreshold        int // default 70
	AutocompleteLimit     int // default 10
	AutocompleteFuzzyMin  int // default 60
	AutocompleteFuzzyPool int // default 15
	SuggestionCacheSize   int // default 1024
}

func (o *Options) applyDefaults() {
	if o.FuzzyThreshold <= 0 {
		o.FuzzyThreshold = 70
	}
	if o.AutocompleteLimit <= 0 {
		o.AutocompleteLimit = 10
	}
	if o.AutocompleteFuzzyMin <= 0 {
		o.AutocompleteFuzzyMin = 60
	}
	if o.AutocompleteFuzzyPool <= 0 {
		o.AutocompleteFuzzyPool = 15
	}
	if o.SuggestionCacheSize <= 0 {
		o.SuggestionCacheSize = 1024
	}
}

// Resolver holds precomputed title keys. It is immutable apart from the
// internally synchronized suggestion cache.
type Resolver struct {
	opts       Options
	titles     []string
	lower      []string
	normalized []string
	sortKeys   [][]rune

	suggestions *cache.LRU[[]string]
}

// New indexes titles in catalogue order.
func New(titles []string, opts Options) *Resolver {
	opts.applyDefaults()
	r := &Resolver{
		opts:        opts,
		titles:      titles,
		lower:       make([]string, len(titles)),
		normalized:  make([]string, len(titles)),
		sortKeys:    make([][]rune, len(titles)),
		suggestions: cache.NewLRU[[]string](opts.SuggestionCacheSize),
	}
	for i, t := range titles {
		r.lower[i] = strings.ToLower(t)
		r.normalized[i] = Normalize(t)
		r.sortKeys[i] = []rune(TokenSortKey(t))
	}
	return r
}

var normalizeReplacer = strings.NewReplacer(" ", "", "-", "", ":", "", "'", "")

// Normalize lowercases s and removes spaces, hyphens, colons and apostrophes.
func Normalize(s string) string {
	return normalizeReplacer.Replace(strings.ToLower(s))
}

// Resolve finds the best catalogue row for query.
func (r *Resolver) Resolve(query string) (Match, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Match{}, &NotFoundError{Query: query}
	}
	lq := strings.ToLower(q)

	for i, t := range r.lower {
		if t == lq {
			return Match{Row: i, Strategy: StrategyExact, Score: 100}, nil
		}
	}

	if nq := Normalize(q); nq != "" {
		for i, t := range r.normalized {
			if t == nq {
				return Match{Row: i, Strategy: StrategyNormalized, Score: 100}, nil
			}
		}
	}

	if row, score := r.bestFuzzy(q); row >= 0 && score >= r.opts.FuzzyThreshold {
		return Match{Row: row, Strategy: StrategyFuzzy, Score: score}, nil
	}

	for i, t := range r.lower {
		if strings.Contains(t, lq) {
			return Match{Row: i, Strategy: StrategySubstring, Score: 100}, nil
		}
	}

	return Match{}, &NotFoundError{Query: query}
}

// bestFuzzy returns the first row with the highest token-sort ratio, or -1
// for an empty catalogue.
func (r *Resolver) bestFuzzy(q string) (row, score int) {
	key := []rune(TokenSortKey(q))
	row, score = -1, -1
	for i, t := range r.sortKeys {
		if s := ratio(key, t); s > score {
			row, score = i, s
		}
	}
	return row, score
}

// Title returns the catalogue title at row.
func (r *Resolver) Title(row int) string {
	if row < 0 || row >= len(r.titles) {
		return ""
	}
	return r.titles[row]
}
