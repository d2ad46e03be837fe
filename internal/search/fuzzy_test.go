package search

import "testing"

var vocab = []string{"Strategy", "Economic", "Dice Rolling", "Hand Management"}

func TestCorrectFixesSmallTypos(t *testing.T) {
	c := NewCorrector(vocab)

	tests := []struct {
		input string
		want  string
	}{
		{"stategy", "Strategy"},
		{"strategy", "Strategy"},
		{"Strategy", "Strategy"},
		{"economi", "Economic"},
		{"hand managment", "Hand Management"},
	}
	for _, tt := range tests {
		if got := c.Correct(tt.input); got != tt.want {
			t.Errorf("Correct(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCorrectKeepsUnrelatedInput(t *testing.T) {
	c := NewCorrector(vocab)

	tests := []struct {
		input string
		want  string
	}{
		{"catan", "Catan"},
		{"xyzzy", "Xyzzy"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := c.Correct(tt.input); got != tt.want {
			t.Errorf("Correct(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCorrectThresholdCountsRunes(t *testing.T) {
	// "würfelzug" is 9 runes but 10 bytes; the 20% threshold admits one
	// edit, not the two a byte count would.
	c := NewCorrector([]string{"Würfelzug"})

	if got := c.Correct("wurfelzug"); got != "Würfelzug" {
		t.Errorf("Correct(wurfelzug) = %q, want Würfelzug", got)
	}
	if got := c.Correct("wurfelzg"); got != "Wurfelzg" {
		t.Errorf("Correct(wurfelzg) = %q, want verbatim Wurfelzg", got)
	}
}

func TestCorrectIsIdempotent(t *testing.T) {
	c := NewCorrector(vocab)
	inputs := []string{"stategy", "strategy", "catan", "dice roling"}
	for _, in := range inputs {
		once := c.Correct(in)
		twice := c.Correct(once)
		if once != twice {
			t.Errorf("Correct not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"stategy", "strategy", 1},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
