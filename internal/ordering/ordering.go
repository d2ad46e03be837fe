// Package ordering provides the composable comparators used to order any
// displayed list of games.
package ordering

import (
	"slices"
	"strings"

	"github.com/Tristan-Kennedy/Board-Game-App/internal/catalog"
)

// Comparator compares two games, returning a negative number when a should
// precede b, zero when they are equal under this key, and positive otherwise.
type Comparator func(a, b *catalog.Game) int

// ByRatingDesc orders higher-rated games first.
func ByRatingDesc(a, b *catalog.Game) int {
	switch {
	case a.Rating > b.Rating:
		return -1
	case a.Rating < b.Rating:
		return 1
	}
	return 0
}

// ByNameAsc orders names case-insensitively, A first.
func ByNameAsc(a, b *catalog.Game) int {
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

// ByIDAsc orders by game id, used as the final tie-break so every ordering
// built on it is total and deterministic.
func ByIDAsc(a, b *catalog.Game) int {
	return a.ID - b.ID
}

// Chain combines comparators into a multi-key comparator: later keys only
// apply where all earlier keys tie.
func Chain(cmps ...Comparator) Comparator {
	return func(a, b *catalog.Game) int {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// Default is the ordering every view applies unless told otherwise:
// rating high to low, then name alphabetically, then id.
func Default() Comparator {
	return Chain(ByRatingDesc, ByNameAsc, ByIDAsc)
}

// Sort returns the games sorted by cmp. The input slice is left untouched;
// the sort itself is stable.
func Sort(games []*catalog.Game, cmp Comparator) []*catalog.Game {
	out := make([]*catalog.Game, len(games))
	copy(out, games)
	slices.SortStableFunc(out, cmp)
	return out
}
