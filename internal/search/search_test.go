package search

import (
	"testing"

	"github.com/Tristan-Kennedy/Board-Game-App/internal/catalog"
)

func testGames() []*catalog.Game {
	return []*catalog.Game{
		{ID: 1, Name: "Catan", Categories: []string{"Strategy"}, Mechanics: []string{"Trading", "Dice Rolling"}},
		{ID: 2, Name: "Gloomhaven", Categories: []string{"Adventure", "Fantasy"}, Mechanics: []string{"Hand Management"}},
		{ID: 3, Name: "Carcassonne", Categories: []string{"Strategy"}, Mechanics: []string{"Tile Placement"}},
	}
}

func ids(games []*catalog.Game) []int {
	out := make([]int, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}

func equalIDs(a []int, b []int) bool {
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

func TestFilterByField(t *testing.T) {
	games := testGames()

	tests := []struct {
		name  string
		text  string
		field Field
		want  []int
	}{
		{"name substring", "ca", FieldName, []int{1, 3}},
		{"name case-insensitive", "GLOOM", FieldName, []int{2}},
		{"category any-of", "Strategy", FieldCategory, []int{1, 3}},
		{"mechanic any-of", "rolling", FieldMechanic, []int{1}},
		{"no match", "Monopoly", FieldName, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile(tt.text, tt.field).Filter(games)
			if !equalIDs(ids(got), tt.want) {
				t.Fatalf("expected ids %v, got %v", tt.want, ids(got))
			}
		})
	}
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	games := testGames()
	got := Compile("", FieldName).Filter(games)
	if !equalIDs(ids(got), []int{1, 2, 3}) {
		t.Fatalf("expected all games, got %v", ids(got))
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	games := testGames()
	got := Compile("a", FieldName).Filter(games)
	// All three names contain an "a"; order must match the input.
	if !equalIDs(ids(got), []int{1, 2, 3}) {
		t.Fatalf("expected input order, got %v", ids(got))
	}
	if &got[0] == &games[0] {
		t.Fatal("expected a copy, not the input slice")
	}
}

func TestInvalidRegexpFallsBackToLiteral(t *testing.T) {
	games := []*catalog.Game{
		{ID: 1, Name: "Catan ["},
		{ID: 2, Name: "Catan"},
	}
	q := Compile("catan [", FieldName)
	if q.re != nil {
		t.Fatal("expected regexp compilation to fail for unbalanced bracket")
	}
	got := q.Filter(games)
	if !equalIDs(ids(got), []int{1}) {
		t.Fatalf("expected literal match on id 1, got %v", ids(got))
	}
}

func TestRegexpQuerySupported(t *testing.T) {
	games := testGames()
	got := Compile("^Car", FieldName).Filter(games)
	if !equalIDs(ids(got), []int{3}) {
		t.Fatalf("expected anchored match on id 3, got %v", ids(got))
	}
}

func TestParseField(t *testing.T) {
	for _, s := range []string{"", "name", "Name"} {
		f, err := ParseField(s)
		if err != nil || f != FieldName {
			t.Fatalf("ParseField(%q) = %v, %v", s, f, err)
		}
	}
	if f, err := ParseField("category"); err != nil || f != FieldCategory {
		t.Fatalf("ParseField(category) = %v, %v", f, err)
	}
	if f, err := ParseField("Mechanic"); err != nil || f != FieldMechanic {
		t.Fatalf("ParseField(Mechanic) = %v, %v", f, err)
	}
	if _, err := ParseField("publisher"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
