package search

import (
	"regexp"
	"strings"

	"github.com/Tristan-Kennedy/Board-Game-App/internal/catalog"
)

// Query is a compiled search predicate: query text bound to a field.
// The zero-value text matches everything, which is how "no filter" is
// represented; there is no placeholder sentinel at this layer.
type Query struct {
	Text  string
	Field Field

	re      *regexp.Regexp // nil when falling back to substring matching
	literal string
}

// Compile builds a Query from (already corrected) text and a field.
// The text is treated as a case-insensitive regular expression; if it does
// not compile — unbalanced brackets and the like typed into a search box —
// the query degrades to case-insensitive literal substring matching rather
// than failing.
func Compile(text string, field Field) Query {
	q := Query{Text: text, Field: field}
	if text == "" {
		return q
	}
	re, err := regexp.Compile("(?i)" + text)
	if err != nil {
		q.literal = strings.ToLower(text)
		return q
	}
	q.re = re
	return q
}

// Matches reports whether the game passes the query on its field.
func (q Query) Matches(g *catalog.Game) bool {
	if q.Text == "" {
		return true
	}
	switch q.Field {
	case FieldCategory:
		return q.matchesAny(g.Categories)
	case FieldMechanic:
		return q.matchesAny(g.Mechanics)
	default:
		return q.matchesString(g.Name)
	}
}

func (q Query) matchesAny(values []string) bool {
	for _, v := range values {
		if q.matchesString(v) {
			return true
		}
	}
	return false
}

func (q Query) matchesString(s string) bool {
	if q.re != nil {
		return q.re.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), q.literal)
}

// Filter returns the games that pass the query, preserving input order.
// The input slice is never modified.
func (q Query) Filter(games []*catalog.Game) []*catalog.Game {
	if q.Text == "" {
		out := make([]*catalog.Game, len(games))
		copy(out, games)
		return out
	}
	out := make([]*catalog.Game, 0, len(games))
	for _, g := range games {
		if q.Matches(g) {
			out = append(out, g)
		}
	}
	return out
}
