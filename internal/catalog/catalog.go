package catalog

import (
	"sort"
	"strings"
	"sync"
)

// Game represents a single board game from the imported database.
// A published Game value is immutable: identity is fixed at import time,
// and rating changes go through Catalog.SetRating, which installs a fresh
// value instead of writing to one readers may hold.
type Game struct {
	ID         int
	Name       string
	Rating     float64
	MinPlayers int
	MaxPlayers int
	Categories []string
	Mechanics  []string
}

// Catalog is the canonical, id-indexed registry of all known games.
// It is populated once by the loader and treated as append-only truth for
// the rest of the session. Everything else in the application references
// games by id through a Catalog handle; Game values are never copied out.
type Catalog struct {
	mu    sync.RWMutex
	games map[int]*Game
	order []int // insertion order, for stable All() snapshots
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{games: make(map[int]*Game)}
}

// Get returns the game with the given id.
func (c *Catalog) Get(id int) (*Game, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.games[id]
	return g, ok
}

// Upsert adds a game, replacing any previous game with the same id.
// It is intended for use during the initial bulk import only.
func (c *Catalog) Upsert(g *Game) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.games[g.ID]; !exists {
		c.order = append(c.order, g.ID)
	}
	c.games[g.ID] = g
}

// All returns a snapshot of every game in import order.
func (c *Catalog) All() []*Game {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Game, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.games[id])
	}
	return out
}

// Len returns the number of games in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.games)
}

// SetRating replaces the stored rating for a game. Game pointers handed
// out by Get and All keep circulating outside the lock, so the update is
// copy-on-write: a fresh Game value is installed in the map and published
// games are never mutated. Readers holding an older snapshot see the old
// rating, never a torn one.
func (c *Catalog) SetRating(id int, rating float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.games[id]
	if !ok {
		return false
	}
	updated := *g
	updated.Rating = rating
	c.games[id] = &updated
	return true
}

// Vocabulary returns the distinct category and mechanic names across the
// whole catalog, sorted. The search engine corrects typos against this set.
func (c *Catalog) Vocabulary() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]string)
	for _, g := range c.games {
		for _, term := range g.Categories {
			seen[strings.ToLower(term)] = term
		}
		for _, term := range g.Mechanics {
			seen[strings.ToLower(term)] = term
		}
	}
	out := make([]string, 0, len(seen))
	for _, term := range seen {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}
