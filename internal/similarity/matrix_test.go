// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package similarity

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"Hello, World!", []string{"hello", "world"}},
		{"a I am 22nd-century", []string{"am", "22nd", "century"}},
		{"tomhanks sciencefiction", []string{"tomhanks", "sciencefiction"}},
		{"café déjà_vu", []string{"café", "déjà_vu"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := Tokenize(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFitVocabulary(t *testing.T) {
	t.Parallel()

	docs := [][]string{
		Tokenize("the space space alien"),
		Tokenize("space robot alien"),
		Tokenize("zebra robot"),
	}

	all := fitVocabulary(docs, 0)
	if want := []string{"alien", "robot", "space", "zebra"}; !reflect.DeepEqual(all.Terms(), want) {
		t.Errorf("Terms() = %v, want %v (stop words removed, sorted)", all.Terms(), want)
	}

	// space=3, alien=2, robot=2, zebra=1: the cap keeps space and the
	// alphabetically first of the tied pair.
	capped := fitVocabulary(docs, 2)
	if want := []string{"alien", "space"}; !reflect.DeepEqual(capped.Terms(), want) {
		t.Errorf("capped Terms() = %v, want %v", capped.Terms(), want)
	}
	if _, ok := capped.Index("robot"); ok {
		t.Error("robot should be cut by the feature cap")
	}
}

func buildTest(t *testing.T, docs []string) *Matrix {
	t.Helper()
	m, err := Build(docs, Options{MaxFeatures: 100, DefaultK: 2, Workers: 2})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return m
}

func TestBuildCosine(t *testing.T) {
	t.Parallel()

	m := buildTest(t, []string{
		"space alien",
		"space alien",
		"space robot",
		"romance paris",
		"",
	})

	tests := []struct {
		i, j int
		want float64
	}{
		{0, 0, 1},
		{0, 1, 1},
		{0, 2, 0.5},
		{2, 0, 0.5},
		{0, 3, 0},
		{4, 4, 0},
		{4, 0, 0},
	}
	for _, tt := range tests {
		got, err := m.Score(tt.i, tt.j)
		if err != nil {
			t.Fatalf("Score(%d,%d) error = %v", tt.i, tt.j, err)
		}
		if math.Abs(float64(got)-tt.want) > 1e-6 {
			t.Errorf("Score(%d,%d) = %v, want %v", tt.i, tt.j, got, tt.want)
		}
	}

	if _, err := m.Score(0, 5); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("Score out of range error = %v", err)
	}
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	m := buildTest(t, []string{
		"space alien robot", // 0
		"romance paris",     // 1
		"space alien",       // 2
		"space alien",       // 3 ties with 2
		"space",             // 4
		"cooking",           // 5
	})

	tests := []struct {
		name     string
		row, k   int
		wantRows []int
	}{
		{name: "default k", row: 0, k: 0, wantRows: []int{2, 3}},
		{name: "ties keep row order", row: 0, k: 3, wantRows: []int{2, 3, 4}},
		{name: "self excluded even with identical twin", row: 2, k: 1, wantRows: []int{3}},
		{name: "zero scores in row order", row: 5, k: 3, wantRows: []int{0, 1, 2}},
		{name: "k clamped", row: 1, k: 50, wantRows: []int{0, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := m.Neighbors(tt.row, tt.k)
			if err != nil {
				t.Fatalf("Neighbors() error = %v", err)
			}
			rows := make([]int, len(got))
			for i, n := range got {
				rows[i] = n.Row
				if n.Row == tt.row {
					t.Errorf("Neighbors(%d) includes itself", tt.row)
				}
				if i > 0 && got[i-1].Score < n.Score {
					t.Errorf("scores not descending: %v", got)
				}
			}
			if !reflect.DeepEqual(rows, tt.wantRows) {
				t.Errorf("Neighbors(%d, %d) rows = %v, want %v", tt.row, tt.k, rows, tt.wantRows)
			}
		})
	}

	if _, err := m.Neighbors(-1, 5); !errors.Is(err, ErrRowOutOfRange) {
		t.Errorf("expected ErrRowOutOfRange, got %v", err)
	}
}

func TestNeighborsDeterministic(t *testing.T) {
	t.Parallel()

	docs := []string{"a1 b1 c1", "b1 c1 d1", "c1 d1 e1", "d1 e1 f1", "a1 f1", "b1 e1", "c1 f1"}
	first := buildTest(t, docs)
	second := buildTest(t, docs)
	for row := range docs {
		a, _ := first.Neighbors(row, 5)
		b, _ := second.Neighbors(row, 5)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("row %d not deterministic: %v vs %v", row, a, b)
		}
		if len(a) != 5 {
			t.Errorf("row %d: got %d neighbours, want 5", row, len(a))
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	if _, err := Build(nil, DefaultOptions()); err == nil {
		t.Error("expected error for empty corpus")
	}
}
