package store

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Tristan-Kennedy/Board-Game-App/internal/catalog"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open initializes the sqlite database and runs migrations. The returned
// handle is passed explicitly to whatever needs it; there is no package
// global.
func Open(dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: customLogger,
		// Surface unique-constraint violations as gorm.ErrDuplicatedKey so
		// callers can map them instead of parsing driver error strings.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Collection{}, &models.CollectionGame{}, &models.Review{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

// ApplyReviews replays every stored review into the catalog so displayed
// ratings are correct before the first query. Reviews for games no longer
// in the catalog are skipped.
func ApplyReviews(db *gorm.DB, cat *catalog.Catalog) error {
	type gameAvg struct {
		GameID int
		Avg    float64
	}
	var rows []gameAvg
	err := db.Model(&models.Review{}).
		Select("game_id, AVG(score) as avg").
		Group("game_id").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("load reviews: %w", err)
	}

	for _, row := range rows {
		cat.SetRating(row.GameID, row.Avg)
	}
	return nil
}
