// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import "strings"

// MovieRecord is one immutable catalogue row. String fields default to ""
// and numeric fields to 0 when the source is missing or unparsable.
type MovieRecord struct {
	ID       int
	Title    string
	Overview string
	Tagline  string
	Status   string

	// ReleaseDate is kept verbatim (YYYY-MM-DD in the TMDB export).
	ReleaseDate string

	// TagText is the lowercase vectorizer input.
	TagText string

	// Genres are display names in source order.
	Genres       []string
	DirectorName string

	// CastRaw and CrewRaw are the full credit lists in source order.
	CastRaw []Entry
	CrewRaw []Entry

	VoteAverage float64
	VoteCount   int
	Popularity  float64
	Runtime     float64
	Budget      int64
	Revenue     int64

	SpokenLanguages     []string
	ProductionCompanies []string
}

// CastMember is an actor with the role they played.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

// CrewMember is a crew credit.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// keyJobs are the crew jobs surfaced on the detail view.
var keyJobs = map[string]struct{}{
	"Director":                {},
	"Writer":                  {},
	"Screenplay":              {},
	"Producer":                {},
	"Executive Producer":      {},
	"Director of Photography": {},
	"Original Music Composer": {},
	"Editor":                  {},
}

// TopCast returns the first n cast members with their characters.
func (m *MovieRecord) TopCast(n int) []CastMember {
	src := m.CastRaw
	if n >= 0 && len(src) > n {
		src = src[:n]
	}
	out := make([]CastMember, len(src))
	for i, e := range src {
		out[i] = CastMember{Name: e.Name, Character: e.Character}
	}
	return out
}

// KeyCrew returns crew credits for the key jobs, deduplicated on (name, job)
// and kept in source order.
func (m *MovieRecord) KeyCrew() []CrewMember {
	type credit struct{ name, job string }
	seen := make(map[credit]struct{})
	out := make([]CrewMember, 0)
	for _, e := range m.CrewRaw {
		if _, ok := keyJobs[e.Job]; !ok {
			continue
		}
		c := credit{e.Name, e.Job}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, CrewMember{Name: e.Name, Job: e.Job})
	}
	return out
}

// hasGenreLower reports whether any display genre lowercases to genreLower.
func (m *MovieRecord) hasGenreLower(genreLower string) bool {
	for _, g := range m.Genres {
		if strings.ToLower(g) == genreLower {
			return true
		}
	}
	return false
}
