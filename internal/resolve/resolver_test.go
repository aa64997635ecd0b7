// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package resolve

import (
	"errors"
	"reflect"
	"testing"
)

var sampleTitles = []string{
	"Avatar",
	"Spider-Man",
	"The Dark Knight",
	"The Dark Knight Rises",
	"Pirates of the Caribbean: At World's End",
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := New(sampleTitles, Options{})

	tests := []struct {
		name     string
		query    string
		wantRow  int
		strategy Strategy
	}{
		{"exact case-insensitive", "avatar", 0, StrategyExact},
		{"exact wins over fuzzy", "the dark knight", 2, StrategyExact},
		{"surrounding whitespace", "  Avatar ", 0, StrategyExact},
		{"normalized hyphen", "SpiderMan", 1, StrategyNormalized},
		{"normalized colon and apostrophe", "pirates of the caribbean at worlds end", 4, StrategyNormalized},
		{"fuzzy typo", "Avatr", 0, StrategyFuzzy},
		{"fuzzy word order", "Knight Dark The", 2, StrategyFuzzy},
		{"substring first match", "Knight", 2, StrategySubstring},
		{"substring", "caribbean", 4, StrategySubstring},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := r.Resolve(tt.query)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.query, err)
			}
			if m.Row != tt.wantRow || m.Strategy != tt.strategy {
				t.Errorf("Resolve(%q) = row %d via %s, want row %d via %s",
					tt.query, m.Row, m.Strategy, tt.wantRow, tt.strategy)
			}
		})
	}
}

func TestResolveNotFound(t *testing.T) {
	t.Parallel()

	r := New(sampleTitles, Options{})

	for _, q := range []string{"zzzzqqq", "", "   "} {
		_, err := r.Resolve(q)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Resolve(%q) error = %v, want ErrNotFound", q, err)
		}
		var nf *NotFoundError
		if !errors.As(err, &nf) || nf.Query != q {
			t.Errorf("Resolve(%q) NotFoundError query = %+v", q, nf)
		}
	}
}

func TestResolveFuzzyThreshold(t *testing.T) {
	t.Parallel()

	// "Avatr" scores 91 against "Avatar".
	strict := New(sampleTitles, Options{FuzzyThreshold: 95})
	if _, err := strict.Resolve("Avatr"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found under strict threshold, got %v", err)
	}
}

func TestResolveFuzzyTieTakesFirstRow(t *testing.T) {
	t.Parallel()

	r := New([]string{"Heat", "Beat", "Heat"}, Options{FuzzyThreshold: 50})
	m, err := r.Resolve("Seat")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if m.Row != 0 || m.Strategy != StrategyFuzzy {
		t.Errorf("Resolve() = %+v, want row 0 fuzzy", m)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	if got := Normalize("Ocean's Eleven: Re-Mix"); got != "oceanselevenremix" {
		t.Errorf("Normalize() = %q", got)
	}
}

func TestSuggestContainsSorted(t *testing.T) {
	t.Parallel()

	r := New([]string{
		"Superman", "Batman", "Spider-Man", "Iron Man", "Ant-Man",
		"Man of Steel", "Rain Man", "Pac-Man", "He-Man", "Mandy", "Manhattan",
	}, Options{})

	want := []string{
		"Ant-Man", "Batman", "He-Man", "Iron Man", "Man of Steel",
		"Mandy", "Pac-Man", "Rain Man", "Spider-Man", "Superman",
	}
	if got, _ := r.Suggest("MAN"); !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest() = %v, want %v", got, want)
	}
}

func TestSuggestFuzzyTopUp(t *testing.T) {
	t.Parallel()

	r := New([]string{"Avatar", "The Avengers", "Titanic"}, Options{})

	tests := []struct {
		query string
		want  []string
	}{
		{"avatr", []string{"Avatar"}},
		{"the av", []string{"The Avengers"}},
		{"  ", []string{}},
		{"qqqq", []string{}},
	}
	for _, tt := range tests {
		if got, _ := r.Suggest(tt.query); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Suggest(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSuggestMemoized(t *testing.T) {
	t.Parallel()

	r := New(sampleTitles, Options{})
	first, cached := r.Suggest("dark")
	if cached {
		t.Error("first lookup reported cached")
	}
	first[0] = "mutated"

	second, cached := r.Suggest("Dark ")
	if !cached {
		t.Error("second lookup not cached")
	}
	if second[0] != "The Dark Knight" {
		t.Errorf("cached suggestions were mutated: %v", second)
	}
	if hits, _ := r.SuggestionStats(); hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
}
