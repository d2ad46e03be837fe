package loader

import (
	"strings"
	"testing"

	"github.com/Tristan-Kennedy/Board-Game-App/internal/catalog"
)

const sampleXML = `<?xml version="1.0" encoding="utf-8"?>
<boardgames>
  <boardgame objectid="13">
    <name primary="true">Catan</name>
    <name>The Settlers of Catan</name>
    <minplayers>3</minplayers>
    <maxplayers>4</maxplayers>
    <boardgamecategory>Negotiation</boardgamecategory>
    <boardgamecategory>Economic</boardgamecategory>
    <boardgamemechanic>Dice Rolling</boardgamemechanic>
    <boardgamemechanic>Trading</boardgamemechanic>
  </boardgame>
  <boardgame objectid="822">
    <name>Carcassonne</name>
    <minplayers>2</minplayers>
    <maxplayers>5</maxplayers>
    <boardgamecategory>Medieval</boardgamecategory>
    <boardgamemechanic>Tile Placement</boardgamemechanic>
  </boardgame>
</boardgames>`

func TestImportParsesGames(t *testing.T) {
	cat := catalog.New()
	if err := Import(strings.NewReader(sampleXML), cat); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if cat.Len() != 2 {
		t.Fatalf("expected 2 games, got %d", cat.Len())
	}

	g, ok := cat.Get(13)
	if !ok {
		t.Fatal("expected game 13 in catalog")
	}
	if g.Name != "Catan" {
		t.Fatalf("expected primary name Catan, got %q", g.Name)
	}
	if g.MinPlayers != 3 || g.MaxPlayers != 4 {
		t.Fatalf("expected players 3-4, got %d-%d", g.MinPlayers, g.MaxPlayers)
	}
	if len(g.Categories) != 2 || g.Categories[0] != "Negotiation" {
		t.Fatalf("unexpected categories %v", g.Categories)
	}
	if len(g.Mechanics) != 2 || g.Mechanics[1] != "Trading" {
		t.Fatalf("unexpected mechanics %v", g.Mechanics)
	}
	if g.Rating != 0 {
		t.Fatalf("expected imported rating 0, got %v", g.Rating)
	}

	// Without a primary flag the first listed name wins.
	g, _ = cat.Get(822)
	if g.Name != "Carcassonne" {
		t.Fatalf("expected fallback name Carcassonne, got %q", g.Name)
	}
}

func TestImportRejectsMalformedXML(t *testing.T) {
	cat := catalog.New()
	if err := Import(strings.NewReader("<boardgames><boardgame"), cat); err == nil {
		t.Fatal("expected error for malformed XML")
	}
}

func TestImportRejectsNamelessGame(t *testing.T) {
	cat := catalog.New()
	in := `<boardgames><boardgame objectid="1"><minplayers>1</minplayers></boardgame></boardgames>`
	if err := Import(strings.NewReader(in), cat); err == nil {
		t.Fatal("expected error for game without a name")
	}
}

func TestImportXMLMissingFile(t *testing.T) {
	if err := ImportXML("testdata/does-not-exist.xml", catalog.New()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
