package models

import (
	"time"

	"gorm.io/gorm"
)

// GameFile is the packaged archive uploaded for a game. A game has at most
// one current archive; a new upload replaces the previous row.
type GameFile struct {
	gorm.Model
	GameID     uint   `gorm:"not null;uniqueIndex"`
	Filename   string `gorm:"size:255;not null"` // original client filename
	FilePath   string `gorm:"size:512;not null"` // relative path under /uploads
	FileSize   int64  `gorm:"not null"`
	UploadedAt time.Time
}
