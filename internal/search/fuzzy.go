package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Corrector fixes small typos in query text by snapping it to the nearest
// known vocabulary term (the catalog's category and mechanic names).
// Matching is case-insensitive; a term is substituted only when its
// Levenshtein distance from the input is at most 20% of the term's length,
// so unrelated queries are never silently rewritten.
type Corrector struct {
	terms []string // original casing, for display
	lower []string
}

// NewCorrector builds a corrector over the given vocabulary.
func NewCorrector(vocabulary []string) *Corrector {
	c := &Corrector{
		terms: vocabulary,
		lower: make([]string, len(vocabulary)),
	}
	for i, term := range vocabulary {
		c.lower[i] = strings.ToLower(term)
	}
	return c
}

// Correct returns the corrected form of the input, capitalized for display
// round-trip in the search box. Input that matches no vocabulary term
// closely enough is returned verbatim (minus the capitalization).
// Correcting an already-correct term is a no-op, so Correct is idempotent.
func (c *Corrector) Correct(input string) string {
	if input == "" {
		return ""
	}
	in := strings.ToLower(input)

	best := -1
	bestDist := -1
	for i, term := range c.lower {
		d := levenshtein(in, term)
		if bestDist == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}

	// Threshold: distance may not exceed 20% of the matched term's length,
	// counted in runes to line up with the rune-based edit distance.
	if best >= 0 && bestDist*5 <= utf8.RuneCountInString(c.lower[best]) {
		return capitalize(c.terms[best])
	}
	return capitalize(input)
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// levenshtein computes the edit distance between two strings with the
// classic two-row dynamic program.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
