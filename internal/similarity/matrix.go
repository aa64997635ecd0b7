// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package similarity builds bag-of-words vectors for catalogue tag texts and
// the dense pairwise cosine similarity matrix used for recommendations.
//
// The matrix needs N*N float32 cells (about 90 MiB for the 4800 movie TMDB
// export). Larger catalogues need an approximate nearest-neighbour index
// instead.
package similarity

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"
)

// ErrRowOutOfRange is returned for row indexes outside the matrix.
var ErrRowOutOfRange = errors.New("row index out of range")

// Options configures Build.
type Options struct {
	// MaxFeatures caps the vocabulary (default 5000).
	MaxFeatures int

	// DefaultK is used by Neighbors when k <= 0 (default 5).
	DefaultK int

	// Workers bounds build parallelism (default runtime.NumCPU()).
	Workers int
}

// DefaultOptions returns the standard model settings.
func DefaultOptions() Options {
	return Options{MaxFeatures: 5000, DefaultK: 5}
}

// Matrix is an immutable N x N cosine similarity matrix. Safe for
// concurrent reads.
type Matrix struct {
	n        int
	cells    []float32
	vocab    *Vocabulary
	defaultK int
	buildDur time.Duration
}

// Neighbor is a ranked similar row.
type Neighbor struct {
	Row   int
	Score float32
}

// Build vectorizes docs and computes all pairwise cosine similarities.
// Row i of the result corresponds to docs[i].
func Build(docs []string, opts Options) (*Matrix, error) {
	if len(docs) == 0 {
		return nil, errors.New("similarity: no documents")
	}
	if opts.MaxFeatures <= 0 {
		opts.MaxFeatures = 5000
	}
	if opts.DefaultK <= 0 {
		opts.DefaultK = 5
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	start := time.Now()

	tokens := make([][]string, len(docs))
	for i, d := range docs {
		tokens[i] = Tokenize(d)
	}
	vocab := fitVocabulary(tokens, opts.MaxFeatures)

	n := len(docs)
	vectors := make([][]term, n)
	norms := make([]float64, n)
	postings := make([][]posting, vocab.Size())
	for i, toks := range tokens {
		vec := vocab.vectorize(toks)
		vectors[i] = vec
		var sq float64
		for _, t := range vec {
			sq += float64(t.count) * float64(t.count)
			postings[t.index] = append(postings[t.index], posting{row: i, count: t.count})
		}
		norms[i] = math.Sqrt(sq)
	}

	m := &Matrix{
		n:        n,
		cells:    make([]float32, n*n),
		vocab:    vocab,
		defaultK: opts.DefaultK,
	}

	rows := make(chan int, opts.Workers)
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc := make([]float64, n)
			for i := range rows {
				m.fillRow(i, vectors[i], norms, postings, acc)
			}
		}()
	}
	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()

	m.buildDur = time.Since(start)
	return m, nil
}

type posting struct {
	row   int
	count float32
}

// fillRow computes row i from the inverted index. acc is scratch space of
// length n, left zeroed on return.
func (m *Matrix) fillRow(i int, vec []term, norms []float64, postings [][]posting, acc []float64) {
	if norms[i] == 0 {
		return
	}
	for _, t := range vec {
		for _, p := range postings[t.index] {
			acc[p.row] += float64(t.count) * float64(p.count)
		}
	}
	row := m.cells[i*m.n : (i+1)*m.n]
	for j, dot := range acc {
		if dot == 0 {
			continue
		}
		row[j] = float32(dot / (norms[i] * norms[j]))
		acc[j] = 0
	}
	row[i] = 1
}

// Size returns N.
func (m *Matrix) Size() int { return m.n }

// Vocabulary returns the fitted vocabulary.
func (m *Matrix) Vocabulary() *Vocabulary { return m.vocab }

// BuildDuration reports how long Build took.
func (m *Matrix) BuildDuration() time.Duration { return m.buildDur }

// Score returns the similarity of rows i and j.
func (m *Matrix) Score(i, j int) (float32, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%w: (%d, %d) for size %d", ErrRowOutOfRange, i, j, m.n)
	}
	return m.cells[i*m.n+j], nil
}

// Neighbors returns the k rows most similar to row, excluding row itself,
// by descending score. Equal scores keep ascending row order. k <= 0 uses the
// default; k is clamped to N-1.
func (m *Matrix) Neighbors(row, k int) ([]Neighbor, error) {
	if row < 0 || row >= m.n {
		return nil, fmt.Errorf("%w: %d for size %d", ErrRowOutOfRange, row, m.n)
	}
	if k <= 0 {
		k = m.defaultK
	}
	if k > m.n-1 {
		k = m.n - 1
	}

	scores := m.cells[row*m.n : (row+1)*m.n]
	candidates := make([]Neighbor, 0, m.n-1)
	for j, s := range scores {
		if j == row {
			continue
		}
		candidates = append(candidates, Neighbor{Row: j, Score: s})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})
	return candidates[:k], nil
}
