package store

import (
	"path/filepath"
	"testing"

	"gamehub/backend/internal/database"
	"gamehub/backend/internal/models"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB points the global handle at a fresh on-disk sqlite database
// under the test's temp dir.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(gormlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         "user",
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return &user
}

func createTestGame(t *testing.T, name string, userID *uint, tags, screenshots []string) *models.Game {
	t.Helper()

	game := models.Game{
		Name:        name,
		Description: "a game",
		Platform:    "PC",
		Multiplayer: "No",
		Genre:       "Arcade",
		AgeRating:   "Not specified",
		Image:       "/uploads/games/" + name + ".png",
		UserID:      userID,
	}
	require.NoError(t, AddGame(&game, tags, screenshots))
	return &game
}
