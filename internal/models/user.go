package models

import "gorm.io/gorm"

// User represents an account in the system. Collections and reviews hang
// off the user; games themselves live in the in-memory catalog and are
// only ever referenced by id.
type User struct {
	gorm.Model
	Username     string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`

	Collections []Collection `gorm:"foreignKey:UserID"`
	Reviews     []Review     `gorm:"foreignKey:UserID"`
}
