// Package loader performs the one-time bulk import of the game database.
// The source is a BoardGameGeek XML export; after ImportXML returns the
// catalog is complete and no further membership changes happen for the
// rest of the session.
package loader

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/Tristan-Kennedy/Board-Game-App/internal/catalog"
)

type xmlGames struct {
	Games []xmlGame `xml:"boardgame"`
}

type xmlGame struct {
	ObjectID   int       `xml:"objectid,attr"`
	Names      []xmlName `xml:"name"`
	MinPlayers int       `xml:"minplayers"`
	MaxPlayers int       `xml:"maxplayers"`
	Categories []string  `xml:"boardgamecategory"`
	Mechanics  []string  `xml:"boardgamemechanic"`
}

type xmlName struct {
	Primary bool   `xml:"primary,attr"`
	Value   string `xml:",chardata"`
}

// ImportXML reads the game database file at path into the catalog.
// Any failure is reported as a single error; the caller treats it as
// fatal initialization failure before the first query.
func ImportXML(path string, cat *catalog.Catalog) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open game database: %w", err)
	}
	defer f.Close()

	if err := Import(f, cat); err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	return nil
}

// Import parses the XML stream and upserts every game at rating zero.
func Import(r io.Reader, cat *catalog.Catalog) error {
	var doc xmlGames
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("parse game data: %w", err)
	}

	for _, xg := range doc.Games {
		g := &catalog.Game{
			ID:         xg.ObjectID,
			Name:       primaryName(xg.Names),
			MinPlayers: xg.MinPlayers,
			MaxPlayers: xg.MaxPlayers,
			Categories: xg.Categories,
			Mechanics:  xg.Mechanics,
		}
		if g.Name == "" {
			return fmt.Errorf("game %d has no name", xg.ObjectID)
		}
		cat.Upsert(g)
	}
	return nil
}

// primaryName prefers the name flagged primary, falling back to the first
// listed alternate.
func primaryName(names []xmlName) string {
	for _, n := range names {
		if n.Primary {
			return n.Value
		}
	}
	if len(names) > 0 {
		return names[0].Value
	}
	return ""
}
