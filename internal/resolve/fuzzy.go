// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package resolve

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// TokenSortKey prepares s for fuzzy comparison the way the classic
// token_sort_ratio does: code points 128-255 are dropped, every rune that is
// not a letter, number or underscore becomes a separator, and the lowercased
// tokens are sorted and joined by single spaces. Latin-1 accents therefore
// vanish ("Amélie" -> "amlie") while other scripts are kept.
func TokenSortKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 128 && r <= 255:
		case r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}
	fields := strings.Fields(b.String())
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// TokenSortRatio scores a and b from 0 to 100 independent of word order.
func TokenSortRatio(a, b string) int {
	return ratio([]rune(TokenSortKey(a)), []rune(TokenSortKey(b)))
}

// ratio is the normalized indel similarity: 2*LCS / (len(a)+len(b)),
// rounded half to even to an integer percentage. Two empty inputs score 0.
func ratio(a, b []rune) int {
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}
	return int(math.RoundToEven(100 * 2 * float64(lcsLength(a, b)) / float64(total)))
}

// lcsLength returns the longest common subsequence length using a single
// rolling row.
func lcsLength(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	row := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		diag := 0
		for j := 1; j <= len(b); j++ {
			up := row[j]
			if a[i-1] == b[j-1] {
				row[j] = diag + 1
			} else if row[j-1] > row[j] {
				row[j] = row[j-1]
			}
			diag = up
		}
	}
	return row[len(b)]
}
