package models

import "gorm.io/gorm"

// Game represents a catalog entry submitted by a user.
type Game struct {
	gorm.Model
	Name        string `gorm:"size:255;not null"`
	Description string
	Platform    string `gorm:"size:100"`
	Multiplayer string `gorm:"size:100"`
	Genre       string `gorm:"size:100;index"`
	AgeRating   string `gorm:"size:50"`
	ReleaseDate string `gorm:"size:50"`
	Image       string `gorm:"size:512"` // relative path under /uploads
	UserID      *uint  `gorm:"index"`    // nullable: the author account may be gone

	Author      *User            `gorm:"foreignKey:UserID"`
	Tags        []GameTag        `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
	Screenshots []GameScreenshot `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
	Click       *GameClick       `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
	File        *GameFile        `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}
