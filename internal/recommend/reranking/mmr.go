// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package reranking

import (
	"math"
	"strings"
)

// Candidate is one neighbour of the source movie.
type Candidate struct {
	// Row is the catalogue row.
	Row int

	// Score is the similarity to the source movie.
	Score float64

	Genres []string
}

// MMR implements Maximal Marginal Relevance reranking.
//
// Reference:
// Carbonell, J., & Goldstein, J. (1998). "The Use of MMR, Diversity-Based
// Reranking for Reordering Documents and Producing Summaries." SIGIR 1998.
type MMR struct {
	// lambda balances relevance vs. diversity (0.0 to 1.0)
	lambda float64
}

// NewMMR creates a new MMR reranker. lambda is clamped to [0, 1].
func NewMMR(lambda float64) *MMR {
	if lambda < 0 {
		lambda = 0
	}
	if lambda > 1 {
		lambda = 1
	}
	return &MMR{lambda: lambda}
}

// Name returns the reranker identifier.
func (m *MMR) Name() string {
	return "mmr"
}

// Rerank selects up to k candidates. Ties keep the input order. k <= 0
// returns items unchanged.
func (m *MMR) Rerank(items []Candidate, k int) []Candidate {
	if len(items) == 0 || k <= 0 {
		return items
	}
	if k > len(items) {
		k = len(items)
	}
	if m.lambda >= 1.0 {
		return items[:k]
	}

	genres := make([]map[string]struct{}, len(items))
	for i := range items {
		genres[i] = genreSet(items[i].Genres)
	}

	selected := make([]Candidate, 0, k)
	taken := make([]bool, len(items))
	// maxSim[i] is the highest similarity of item i to any selected item.
	maxSim := make([]float64, len(items))

	for len(selected) < k {
		best := -1
		bestScore := math.Inf(-1)
		for i := range items {
			if taken[i] {
				continue
			}
			score := m.lambda*items[i].Score - (1-m.lambda)*maxSim[i]
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}

		taken[best] = true
		selected = append(selected, items[best])
		for i := range items {
			if taken[i] {
				continue
			}
			if sim := jaccard(genres[i], genres[best]); sim > maxSim[i] {
				maxSim[i] = sim
			}
		}
	}

	return selected
}

func genreSet(genres []string) map[string]struct{} {
	set := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		set[strings.ToLower(g)] = struct{}{}
	}
	return set
}

// jaccard is |a ∩ b| / |a ∪ b|, or 0 when both are empty.
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for g := range a {
		if _, ok := b[g]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
