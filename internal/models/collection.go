package models

import "gorm.io/gorm"

// Collection is a named, ordered list of catalog game ids owned by one
// user. Only ids are stored; game data is never duplicated out of the
// catalog.
type Collection struct {
	gorm.Model
	UserID uint   `gorm:"not null;index;uniqueIndex:idx_collection_owner_name"`
	Name   string `gorm:"size:255;not null;uniqueIndex:idx_collection_owner_name"`

	Games []CollectionGame `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE;"`
}

// CollectionGame is one membership entry. Position preserves insertion
// order; (collection, game) pairs are unique so a game cannot be added to
// the same collection twice.
type CollectionGame struct {
	gorm.Model
	CollectionID uint `gorm:"not null;uniqueIndex:idx_collection_game"`
	GameID       int  `gorm:"not null;uniqueIndex:idx_collection_game"`
	Position     int  `gorm:"not null"`
}
