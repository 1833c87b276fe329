package models

import "gorm.io/gorm"

// User represents a registered account.
type User struct {
	gorm.Model
	Username     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'user';index"`

	// Games authored by this user. The reference is weak: deleting the
	// account keeps the games but clears their user_id.
	Games []Game `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;"`
}
