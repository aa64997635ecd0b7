// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package reranking

import (
	"math"
	"testing"
)

func TestNewMMR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		lambda     float64
		wantLambda float64
	}{
		{"normal value", 0.7, 0.7},
		{"zero value", 0.0, 0.0},
		{"one value", 1.0, 1.0},
		{"negative clamped to zero", -0.5, 0.0},
		{"above one clamped to one", 1.5, 1.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mmr := NewMMR(tt.lambda)
			if mmr.lambda != tt.wantLambda {
				t.Errorf("lambda = %f, want %f", mmr.lambda, tt.wantLambda)
			}
			if mmr.Name() != "mmr" {
				t.Errorf("Name() = %q, want mmr", mmr.Name())
			}
		})
	}
}

func rows(items []Candidate) []int {
	out := make([]int, len(items))
	for i, c := range items {
		out[i] = c.Row
	}
	return out
}

func equalRows(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMMR_Rerank(t *testing.T) {
	t.Parallel()

	// The most similar candidates all share the same genres.
	items := []Candidate{
		{Row: 1, Score: 1.0, Genres: []string{"Action"}},
		{Row: 2, Score: 0.95, Genres: []string{"Action"}},
		{Row: 3, Score: 0.9, Genres: []string{"action"}},
		{Row: 4, Score: 0.5, Genres: []string{"Comedy"}},
		{Row: 5, Score: 0.4, Genres: []string{"Drama"}},
	}

	tests := []struct {
		name   string
		lambda float64
		k      int
		want   []int
	}{
		{name: "pure relevance keeps order", lambda: 1, k: 3, want: []int{1, 2, 3}},
		{name: "balanced promotes other genres", lambda: 0.5, k: 3, want: []int{1, 4, 5}},
		{name: "k larger than items", lambda: 0.5, k: 10, want: []int{1, 4, 5, 2, 3}},
		{name: "k zero returns input", lambda: 0.5, k: 0, want: []int{1, 2, 3, 4, 5}},
		{name: "pure diversity still fills k", lambda: 0, k: 5, want: []int{1, 4, 5, 2, 3}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rows(NewMMR(tt.lambda).Rerank(items, tt.k))
			if !equalRows(got, tt.want) {
				t.Errorf("Rerank() rows = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMMR_Rerank_Empty(t *testing.T) {
	t.Parallel()

	if got := NewMMR(0.5).Rerank(nil, 3); len(got) != 0 {
		t.Errorf("Rerank(nil) = %v, want empty", got)
	}
}

func TestJaccard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{name: "identical", a: []string{"Action", "Drama"}, b: []string{"drama", "action"}, want: 1},
		{name: "disjoint", a: []string{"Action"}, b: []string{"Comedy"}, want: 0},
		{name: "half", a: []string{"Action", "Drama"}, b: []string{"Action", "Comedy", "Drama", "War"}, want: 0.5},
		{name: "both empty", want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := jaccard(genreSet(tt.a), genreSet(tt.b))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("jaccard = %f, want %f", got, tt.want)
			}
		})
	}
}
