package models

import (
	"time"

	"gorm.io/gorm"
)

// GameClick holds the view counter for a game. Exactly one row per game
// once initialized; a missing row reads as zero clicks.
type GameClick struct {
	gorm.Model
	GameID      uint `gorm:"not null;uniqueIndex"`
	ClickCount  int  `gorm:"not null;default:0"`
	LastUpdated time.Time
}
