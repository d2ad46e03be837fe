package models

import "gorm.io/gorm"

// Review score bounds.
const (
	MinScore = 1
	MaxScore = 10
)

// Review is one user's score for one game. The (user, game) pair is
// unique: resubmitting replaces the stored score rather than accumulating
// a second row.
type Review struct {
	gorm.Model
	UserID uint `gorm:"not null;index;uniqueIndex:idx_review_user_game"`
	GameID int  `gorm:"not null;index;uniqueIndex:idx_review_user_game"`
	Score  int  `gorm:"not null;check:score >= 1 AND score <= 10"`
}
