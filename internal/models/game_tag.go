package models

import "gorm.io/gorm"

// GameTag is a free-form label attached to a game (e.g. "roguelike").
// At most three per game, enforced at the API layer.
type GameTag struct {
	gorm.Model
	GameID uint   `gorm:"not null;index"`
	Tag    string `gorm:"size:100;not null"`
}
