package store

import (
	"errors"
	"sort"
	"time"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/database"
	"gamehub/backend/internal/models"

	"gorm.io/gorm"
)

// GameFilter narrows the catalog listing. All fields are optional; Genre,
// Platform and Tag match by equality, Query by name substring.
type GameFilter struct {
	Genre    string
	Platform string
	Tag      string
	Query    string
}

// AddGame inserts the base row, its tag rows (order preserved), screenshot
// rows and the click counter at zero, all in one transaction. A failure
// anywhere rolls the whole game back.
func AddGame(game *models.Game, tags []string, screenshots []string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(game).Error; err != nil {
			return err
		}

		for _, tag := range tags {
			if err := tx.Create(&models.GameTag{GameID: game.ID, Tag: tag}).Error; err != nil {
				return err
			}
		}

		for _, url := range screenshots {
			if err := tx.Create(&models.GameScreenshot{GameID: game.ID, ScreenshotURL: url}).Error; err != nil {
				return err
			}
		}

		click := models.GameClick{GameID: game.ID, ClickCount: 0, LastUpdated: time.Now()}
		return tx.Create(&click).Error
	})
}

// GetGameByID assembles the full record: base row plus tags, screenshots,
// click counter, current archive and author.
func GetGameByID(id uint) (*models.Game, error) {
	var game models.Game
	err := database.DB.
		Preload("Tags").
		Preload("Screenshots").
		Preload("Click").
		Preload("File").
		Preload("Author").
		First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Game")
		}
		return nil, err
	}
	return &game, nil
}

// GetAllGames returns every matching game, newest first, with the same
// assembly as GetGameByID applied to each row.
func GetAllGames(filter GameFilter) ([]models.Game, error) {
	query := database.DB.Model(&models.Game{}).
		Preload("Tags").
		Preload("Screenshots").
		Preload("Click").
		Preload("File").
		Preload("Author")

	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}
	if filter.Query != "" {
		query = query.Where("name LIKE ?", "%"+filter.Query+"%")
	}
	if filter.Tag != "" {
		query = query.Joins("JOIN game_tags gt ON gt.game_id = games.id").
			Where("gt.tag = ? AND gt.deleted_at IS NULL", filter.Tag).
			Group("games.id")
	}

	var games []models.Game
	if err := query.Order("games.created_at DESC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// GetPopularGames returns the catalog sorted by click count descending.
// The sort is stable: games with equal counts keep their listing order.
func GetPopularGames() ([]models.Game, error) {
	games, err := GetAllGames(GameFilter{})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(games, func(i, j int) bool {
		return clickCount(&games[i]) > clickCount(&games[j])
	})
	return games, nil
}

func clickCount(game *models.Game) int {
	if game.Click == nil {
		return 0
	}
	return game.Click.ClickCount
}

// IncrementGameClicks bumps the view counter for a game, creating the row at
// 1 when none exists yet. Returns the new count. The bump is a single
// relative UPDATE so concurrent detail fetches cannot lose increments.
func IncrementGameClicks(gameID uint) (int, error) {
	var count int
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.GameClick{}).
			Where("game_id = ?", gameID).
			Updates(map[string]interface{}{
				"click_count":  gorm.Expr("click_count + 1"),
				"last_updated": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			click := models.GameClick{GameID: gameID, ClickCount: 1, LastUpdated: time.Now()}
			if err := tx.Create(&click).Error; err != nil {
				return err
			}
			count = 1
			return nil
		}

		var click models.GameClick
		if err := tx.Where("game_id = ?", gameID).First(&click).Error; err != nil {
			return err
		}
		count = click.ClickCount
		return nil
	})
	return count, err
}

// DeleteGame removes the game and every dependent row (tags, screenshots,
// clicks, file, profile entries, bookmarks) in one transaction. Returns
// whether the game row existed. Disk cleanup is the caller's job. Rows are
// purged, not soft-deleted, so unique game_id indexes cannot collide with
// a later game that reuses the id.
func DeleteGame(gameID uint) (bool, error) {
	existed := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		existed = true

		for _, child := range []interface{}{
			&models.GameTag{},
			&models.GameScreenshot{},
			&models.GameClick{},
			&models.GameFile{},
			&models.UserGame{},
			&models.Bookmark{},
		} {
			if err := tx.Unscoped().Where("game_id = ?", gameID).Delete(child).Error; err != nil {
				return err
			}
		}

		return tx.Unscoped().Delete(&models.Game{}, gameID).Error
	})
	return existed, err
}

// AddGameFile records a packaged archive for a game, replacing any previous
// one: at most one archive per game at a time. The old row is purged, not
// soft-deleted, so it cannot collide with the unique game_id index.
func AddGameFile(gameID uint, filename, path string, size int64) (*models.GameFile, error) {
	file := models.GameFile{
		GameID:     gameID,
		Filename:   filename,
		FilePath:   path,
		FileSize:   size,
		UploadedAt: time.Now(),
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("game_id = ?", gameID).Delete(&models.GameFile{}).Error; err != nil {
			return err
		}
		return tx.Create(&file).Error
	})
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// GetGameFile returns the current archive row for a game, or a NotFound
// error when none was uploaded.
func GetGameFile(gameID uint) (*models.GameFile, error) {
	var file models.GameFile
	if err := database.DB.Where("game_id = ?", gameID).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Game file")
		}
		return nil, err
	}
	return &file, nil
}
