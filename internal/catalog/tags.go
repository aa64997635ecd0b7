// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import "strings"

const (
	tagCastSize = 3
	directorJob = "Director"
)

// compactNames strips spaces inside each name so multi-word proper nouns
// become single tokens.
func compactNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ReplaceAll(n, " ", "")
	}
	return out
}

// topCastNames returns up to three names from the head of the cast list.
// Entries without a name inside the head are skipped, not replaced.
func topCastNames(cast NestedList) []string {
	entries := cast.Entries()
	if len(entries) > tagCastSize {
		entries = entries[:tagCastSize]
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.hasName {
			names = append(names, e.Name)
		}
	}
	return names
}

// directorName returns the first crew member whose job is Director.
func directorName(crew NestedList) string {
	for _, e := range crew.Entries() {
		if e.Job == directorJob {
			return e.Name
		}
	}
	return ""
}

// BuildTagText composes the lowercase bag-of-words source for one movie.
func BuildTagText(overview string, genres, keywords, cast []string, director string) string {
	var directors []string
	if director != "" {
		directors = []string{director}
	}
	parts := []string{
		overview,
		strings.Join(compactNames(genres), " "),
		strings.Join(compactNames(keywords), " "),
		strings.Join(compactNames(cast), " "),
		strings.Join(compactNames(directors), " "),
	}
	return strings.ToLower(strings.Join(parts, " "))
}
