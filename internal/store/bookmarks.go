package store

import (
	"errors"
	"time"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/database"
	"gamehub/backend/internal/models"

	"gorm.io/gorm"
)

// AddBookmark saves a reference to a game for quick return access,
// snapshotting name, image, genre and author at bookmark time.
func AddBookmark(userID, gameID uint, gameName, gameImage, gameGenre, authorName string) (*models.Bookmark, error) {
	var existing models.Bookmark
	err := database.DB.Where("user_id = ? AND game_id = ?", userID, gameID).First(&existing).Error
	if err == nil {
		return nil, apperror.Conflict("Game is already bookmarked")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bookmark := models.Bookmark{
		UserID:     userID,
		GameID:     gameID,
		GameName:   gameName,
		GameImage:  gameImage,
		GameGenre:  gameGenre,
		AuthorName: authorName,
		AddedAt:    time.Now(),
	}
	if err := database.DB.Create(&bookmark).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// GetBookmarks lists a user's bookmarks, newest first.
func GetBookmarks(userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := database.DB.
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// RemoveBookmark deletes by (userID, gameID) and reports whether a row existed.
// The delete is a hard delete: the (user, game) pair is unique and a kept
// soft-deleted row would block bookmarking the game again.
func RemoveBookmark(userID, gameID uint) (bool, error) {
	result := database.DB.Unscoped().Where("user_id = ? AND game_id = ?", userID, gameID).Delete(&models.Bookmark{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IsBookmarked reports whether the (user, game) pair exists.
func IsBookmarked(userID, gameID uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Bookmark{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
