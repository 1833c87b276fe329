package models

import "gorm.io/gorm"

// GameScreenshot stores the upload path of one screenshot for a game.
type GameScreenshot struct {
	gorm.Model
	GameID        uint   `gorm:"not null;index"`
	ScreenshotURL string `gorm:"size:512;not null"`
}
