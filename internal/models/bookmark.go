package models

import (
	"time"

	"gorm.io/gorm"
)

// Bookmark is a saved reference to a game for quick return access. The
// server table is the canonical store; clients may keep a local cache.
type Bookmark struct {
	gorm.Model
	UserID     uint   `gorm:"not null;uniqueIndex:idx_user_bookmark"`
	GameID     uint   `gorm:"not null;uniqueIndex:idx_user_bookmark"`
	GameName   string `gorm:"size:255;not null"`
	GameImage  string `gorm:"size:512"`
	GameGenre  string `gorm:"size:100"`
	AuthorName string `gorm:"size:255"`
	AddedAt    time.Time
}
