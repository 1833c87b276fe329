package store

import (
	"errors"
	"time"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/database"
	"gamehub/backend/internal/models"

	"gorm.io/gorm"
)

// AddGameToUserProfile puts a game on a user's personal list. The (user,
// game) pair is unique; adding the same game twice is a conflict.
func AddGameToUserProfile(userID, gameID uint, gameName, gameImage string) (*models.UserGame, error) {
	var existing models.UserGame
	err := database.DB.Where("user_id = ? AND game_id = ?", userID, gameID).First(&existing).Error
	if err == nil {
		return nil, apperror.Conflict("Game is already in your profile")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := models.UserGame{
		UserID:    userID,
		GameID:    gameID,
		GameName:  gameName,
		GameImage: gameImage,
		AddedAt:   time.Now(),
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetUserGames lists a user's profile entries, newest first.
func GetUserGames(userID uint) ([]models.UserGame, error) {
	var entries []models.UserGame
	err := database.DB.
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// RemoveGameFromUserProfile deletes by (userID, gameID). The documented
// identifier is the game id; when nothing matches, ref is retried as the
// user_games row id because older clients sent that instead. Deletes are
// hard: the (user, game) pair is unique and a kept soft-deleted row would
// block re-adding the game later.
func RemoveGameFromUserProfile(userID, ref uint) (bool, error) {
	result := database.DB.Unscoped().Where("user_id = ? AND game_id = ?", userID, ref).Delete(&models.UserGame{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	result = database.DB.Unscoped().Where("id = ? AND user_id = ?", ref, userID).Delete(&models.UserGame{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IsGameInUserProfile reports whether the (user, game) pair exists.
func IsGameInUserProfile(userID, gameID uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.UserGame{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
