package store

import (
	"errors"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/database"
	"gamehub/backend/internal/models"

	"gorm.io/gorm"
)

// GetUserByID fetches an account by primary key.
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername fetches an account with its authored games, for the
// public profile page. The games carry the same full assembly as the
// catalog endpoints: tags, screenshots, click count, archive and author.
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := database.DB.
		Preload("Games").
		Preload("Games.Tags").
		Preload("Games.Screenshots").
		Preload("Games.Click").
		Preload("Games.File").
		Preload("Games.Author").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}
	return &user, nil
}
