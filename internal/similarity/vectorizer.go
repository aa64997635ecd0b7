// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package similarity

import (
	"sort"
	"strings"
	"unicode"
)

// Tokenize lowercases text and returns maximal runs of word characters
// (letters, digits, marks, underscore) that are at least two runes long.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	var tokens []string
	start, runes := -1, 0
	flush := func(end int) {
		if start >= 0 && runes >= 2 {
			tokens = append(tokens, text[start:end])
		}
		start, runes = -1, 0
	}
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			runes++
			continue
		}
		flush(i)
	}
	flush(len(text))
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// term is one non-zero component of a sparse count vector.
type term struct {
	index int
	count float32
}

// Vocabulary maps terms to column indexes. Columns are in alphabetical order.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// Size returns the number of terms.
func (v *Vocabulary) Size() int { return len(v.terms) }

// Terms returns terms in column order.
func (v *Vocabulary) Terms() []string { return v.terms }

// Index returns the column for t.
func (v *Vocabulary) Index(t string) (int, bool) {
	i, ok := v.index[t]
	return i, ok
}

// fitVocabulary counts non stop-word tokens across docs and keeps the
// maxFeatures most frequent terms. Frequency ties go to the alphabetically
// smaller term.
func fitVocabulary(docs [][]string, maxFeatures int) *Vocabulary {
	freq := make(map[string]int)
	for _, tokens := range docs {
		for _, t := range tokens {
			if IsStopWord(t) {
				continue
			}
			freq[t]++
		}
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	if maxFeatures > 0 && len(terms) > maxFeatures {
		ranked := append([]string(nil), terms...)
		sort.SliceStable(ranked, func(i, j int) bool { return freq[ranked[i]] > freq[ranked[j]] })
		terms = ranked[:maxFeatures]
		sort.Strings(terms)
	}

	v := &Vocabulary{terms: terms, index: make(map[string]int, len(terms))}
	for i, t := range terms {
		v.index[t] = i
	}
	return v
}

// vectorize returns the sparse count vector of tokens over v, sorted by column.
func (v *Vocabulary) vectorize(tokens []string) []term {
	counts := make(map[int]float32)
	for _, t := range tokens {
		if i, ok := v.index[t]; ok {
			counts[i]++
		}
	}
	vec := make([]term, 0, len(counts))
	for i, c := range counts {
		vec = append(vec, term{index: i, count: c})
	}
	sort.Slice(vec, func(a, b int) bool { return vec[a].index < vec[b].index })
	return vec
}
