package models

import (
	"time"

	"gorm.io/gorm"
)

// UserGame is an entry in a user's personal game list. It is independent of
// authorship: a user can add someone else's game to their own list. Name and
// image are denormalized snapshots taken at add time.
type UserGame struct {
	gorm.Model
	UserID    uint   `gorm:"not null;uniqueIndex:idx_user_game"`
	GameID    uint   `gorm:"not null;uniqueIndex:idx_user_game"`
	GameName  string `gorm:"size:255;not null"`
	GameImage string `gorm:"size:512"`
	AddedAt   time.Time
}
