// Package library is the per-session service tying the catalog, the
// search and sort engines, and the persisted user data together. Every
// operation runs to completion under one mutex, matching the app's single
// active thread of interaction.
package library

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/Tristan-Kennedy/Board-Game-App/internal/catalog"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/models"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/ordering"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/search"

	"gorm.io/gorm"
)

// Library exposes every operation the view layer needs. The catalog and
// database handles are injected at construction; nothing here reaches for
// globals.
type Library struct {
	mu        sync.Mutex
	db        *gorm.DB
	cat       *catalog.Catalog
	corrector *search.Corrector
}

// New builds a Library over a loaded catalog and an open database. The
// fuzzy-correction vocabulary is the catalog's category and mechanic
// names, so it must be called after the bulk import.
func New(db *gorm.DB, cat *catalog.Catalog) *Library {
	return &Library{
		db:        db,
		cat:       cat,
		corrector: search.NewCorrector(cat.Vocabulary()),
	}
}

// Catalog returns the injected catalog handle.
func (l *Library) Catalog() *catalog.Catalog {
	return l.cat
}

// region --- Search / sort ---

// Filter corrects the query text, filters source by it on the given
// field, and returns the corrected text together with the matches in the
// default display order. A nil source means the whole catalog; empty text
// means no filter.
func (l *Library) Filter(text string, field search.Field, source []*catalog.Game) (string, []*catalog.Game) {
	if source == nil {
		source = l.cat.All()
	}

	corrected := ""
	if text != "" {
		corrected = l.corrector.Correct(text)
	}

	q := search.Compile(corrected, field)
	return corrected, ordering.Sort(q.Filter(source), ordering.Default())
}

// Sort reorders a game list without filtering it.
func (l *Library) Sort(games []*catalog.Game, cmp ordering.Comparator) []*catalog.Game {
	return ordering.Sort(games, cmp)
}

// endregion

// region --- Reviews ---

// SubmitReview stores the user's score for a game, replacing any earlier
// score from the same user, and returns the game's new rating. The rating
// is recomputed and written into the catalog before returning, so the
// next query already sees it.
func (l *Library) SubmitReview(userID uint, gameID, score int) (float64, error) {
	if score < models.MinScore || score > models.MaxScore {
		return 0, fmt.Errorf("score %d: %w", score, ErrInvalidScore)
	}
	if _, ok := l.cat.Get(gameID); !ok {
		return 0, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var review models.Review
	err := l.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&review).Error
	switch {
	case err == nil:
		if err := l.db.Model(&review).Update("score", score).Error; err != nil {
			return 0, fmt.Errorf("update review: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = models.Review{UserID: userID, GameID: gameID, Score: score}
		if err := l.db.Create(&review).Error; err != nil {
			return 0, fmt.Errorf("create review: %w", err)
		}
	default:
		return 0, fmt.Errorf("load review: %w", err)
	}

	return l.recomputeRating(gameID)
}

// recomputeRating sets the catalog rating to the mean of all current
// reviews for the game, or zero when none remain. Caller holds the lock.
func (l *Library) recomputeRating(gameID int) (float64, error) {
	var avg sql.NullFloat64
	err := l.db.Model(&models.Review{}).
		Select("AVG(score)").
		Where("game_id = ?", gameID).
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("aggregate reviews: %w", err)
	}

	rating := 0.0
	if avg.Valid {
		rating = avg.Float64
	}
	l.cat.SetRating(gameID, rating)
	return rating, nil
}

// ReviewFor returns the user's stored review for a game, if any.
func (l *Library) ReviewFor(userID uint, gameID int) (*models.Review, error) {
	var review models.Review
	err := l.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("review for game %d: %w", gameID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load review: %w", err)
	}
	return &review, nil
}

// endregion

// region --- Collections ---

// CreateCollection makes a new, empty collection for the user. Names are
// unique per user.
func (l *Library) CreateCollection(userID uint, name string) (*models.Collection, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var existing models.Collection
	err := l.db.Where("user_id = ? AND name = ?", userID, name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("collection %q: %w", name, ErrDuplicateName)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	collection := models.Collection{UserID: userID, Name: name}
	if err := l.db.Create(&collection).Error; err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &collection, nil
}

// DeleteCollection removes a collection and its memberships.
func (l *Library) DeleteCollection(userID uint, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	collection, err := l.findCollection(userID, name)
	if err != nil {
		return err
	}

	// Hard deletes: a soft-deleted row would still occupy the unique
	// (user, name) and (collection, game) indexes and block re-creation.
	return l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("collection_id = ?", collection.ID).Delete(&models.CollectionGame{}).Error; err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}
		if err := tx.Unscoped().Delete(collection).Error; err != nil {
			return fmt.Errorf("delete collection: %w", err)
		}
		return nil
	})
}

// AddGame appends a catalog game to the end of a collection.
func (l *Library) AddGame(userID uint, name string, gameID int) error {
	if _, ok := l.cat.Get(gameID); !ok {
		return fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	collection, err := l.findCollection(userID, name)
	if err != nil {
		return err
	}

	var existing models.CollectionGame
	err = l.db.Where("collection_id = ? AND game_id = ?", collection.ID, gameID).First(&existing).Error
	if err == nil {
		return fmt.Errorf("game %d: %w", gameID, ErrAlreadyPresent)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load membership: %w", err)
	}

	var next int
	err = l.db.Model(&models.CollectionGame{}).
		Select("COALESCE(MAX(position), -1) + 1").
		Where("collection_id = ?", collection.ID).
		Scan(&next).Error
	if err != nil {
		return fmt.Errorf("next position: %w", err)
	}

	entry := models.CollectionGame{CollectionID: collection.ID, GameID: gameID, Position: next}
	if err := l.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("add game: %w", err)
	}
	return nil
}

// RemoveGame takes a game out of a collection.
func (l *Library) RemoveGame(userID uint, name string, gameID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	collection, err := l.findCollection(userID, name)
	if err != nil {
		return err
	}

	result := l.db.Unscoped().Where("collection_id = ? AND game_id = ?", collection.ID, gameID).
		Delete(&models.CollectionGame{})
	if result.Error != nil {
		return fmt.Errorf("remove game: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}
	return nil
}

// Resolve maps a collection's stored ids through the catalog, in insertion
// order. Ids that no longer resolve are dropped silently.
func (l *Library) Resolve(userID uint, name string) ([]*catalog.Game, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	collection, err := l.findCollection(userID, name)
	if err != nil {
		return nil, err
	}

	var entries []models.CollectionGame
	err = l.db.Where("collection_id = ?", collection.ID).
		Order("position ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load memberships: %w", err)
	}

	games := make([]*catalog.Game, 0, len(entries))
	for _, entry := range entries {
		if g, ok := l.cat.Get(entry.GameID); ok {
			games = append(games, g)
		}
	}
	return games, nil
}

// Collections lists the user's collections in creation order.
func (l *Library) Collections(userID uint) ([]models.Collection, error) {
	var collections []models.Collection
	err := l.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&collections).Error
	if err != nil {
		return nil, fmt.Errorf("load collections: %w", err)
	}
	return collections, nil
}

// findCollection looks up one of the user's collections by name.
// Caller holds the lock.
func (l *Library) findCollection(userID uint, name string) (*models.Collection, error) {
	var collection models.Collection
	err := l.db.Where("user_id = ? AND name = ?", userID, name).First(&collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("collection %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	return &collection, nil
}

// endregion
