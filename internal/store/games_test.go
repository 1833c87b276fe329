package store

import (
	"errors"
	"testing"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/database"
	"gamehub/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGame_ReadBackFidelity(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	tags := []string{"retro", "hard", "pixel"}
	screenshots := []string{"/uploads/screenshots/a.png", "/uploads/screenshots/b.png"}
	game := createTestGame(t, "Pong", &user.ID, tags, screenshots)

	got, err := GetGameByID(game.ID)
	require.NoError(t, err)

	gotTags := make([]string, 0, len(got.Tags))
	for _, tag := range got.Tags {
		gotTags = append(gotTags, tag.Tag)
	}
	assert.Equal(t, tags, gotTags, "tags must come back in submission order")

	gotShots := make([]string, 0, len(got.Screenshots))
	for _, s := range got.Screenshots {
		gotShots = append(gotShots, s.ScreenshotURL)
	}
	assert.Equal(t, screenshots, gotShots)

	require.NotNil(t, got.Click)
	assert.Equal(t, 0, got.Click.ClickCount, "a new game starts at zero clicks")
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", got.Author.Username)
	assert.Nil(t, got.File)
}

func TestGetGameByID_NotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetGameByID(12345)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestGetAllGames_OrderAndFilters(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	createTestGame(t, "First", &user.ID, []string{"coop"}, nil)
	second := createTestGame(t, "Second", &user.ID, nil, nil)
	require.NoError(t, database.DB.Model(second).Update("genre", "Puzzle").Error)

	games, err := GetAllGames(GameFilter{})
	require.NoError(t, err)
	require.Len(t, games, 2)

	byGenre, err := GetAllGames(GameFilter{Genre: "Puzzle"})
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, "Second", byGenre[0].Name)

	byTag, err := GetAllGames(GameFilter{Tag: "coop"})
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "First", byTag[0].Name)

	byName, err := GetAllGames(GameFilter{Query: "Sec"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Second", byName[0].Name)

	none, err := GetAllGames(GameFilter{Genre: "Horror"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestIncrementGameClicks_Monotonic(t *testing.T) {
	setupTestDB(t)
	game := createTestGame(t, "Clicky", nil, nil, nil)

	// The add-game flow initializes the counter at 0, so N increments land on N.
	for i := 1; i <= 5; i++ {
		count, err := IncrementGameClicks(game.ID)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}
}

func TestIncrementGameClicks_CreatesMissingRow(t *testing.T) {
	setupTestDB(t)
	game := createTestGame(t, "NoRow", nil, nil, nil)
	require.NoError(t, database.DB.Unscoped().Where("game_id = ?", game.ID).Delete(&models.GameClick{}).Error)

	count, err := IncrementGameClicks(game.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetPopularGames_StableDescending(t *testing.T) {
	setupTestDB(t)

	// Created in this order; catalog listing is newest first (c, b, a).
	a := createTestGame(t, "a", nil, nil, nil)
	b := createTestGame(t, "b", nil, nil, nil)
	c := createTestGame(t, "c", nil, nil, nil)

	for i := 0; i < 3; i++ {
		_, err := IncrementGameClicks(a.ID)
		require.NoError(t, err)
	}
	_, err := IncrementGameClicks(b.ID)
	require.NoError(t, err)
	_, err = IncrementGameClicks(c.ID)
	require.NoError(t, err)

	games, err := GetPopularGames()
	require.NoError(t, err)
	require.Len(t, games, 3)

	assert.Equal(t, "a", games[0].Name)
	// b and c tie at one click each; the listing order (c before b) holds.
	assert.Equal(t, "c", games[1].Name)
	assert.Equal(t, "b", games[2].Name)
}

func TestDeleteGame_CascadesEverywhere(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "alice")
	fan := createTestUser(t, "bob")

	game := createTestGame(t, "Doomed", &author.ID, []string{"tag"}, []string{"/uploads/screenshots/x.png"})
	_, err := AddGameFile(game.ID, "doomed.zip", "/uploads/gamefiles/doomed.zip", 100)
	require.NoError(t, err)
	_, err = AddGameToUserProfile(fan.ID, game.ID, game.Name, game.Image)
	require.NoError(t, err)
	_, err = AddBookmark(fan.ID, game.ID, game.Name, game.Image, game.Genre, "alice")
	require.NoError(t, err)

	existed, err := DeleteGame(game.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = GetGameByID(game.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	entries, err := GetUserGames(fan.ID)
	require.NoError(t, err)
	assert.Empty(t, entries, "profile lists must not keep deleted games")

	bookmarks, err := GetBookmarks(fan.ID)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)

	for _, child := range []interface{}{&models.GameTag{}, &models.GameScreenshot{}, &models.GameClick{}, &models.GameFile{}} {
		var count int64
		require.NoError(t, database.DB.Model(child).Where("game_id = ?", game.ID).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestDeleteGame_Missing(t *testing.T) {
	setupTestDB(t)

	existed, err := DeleteGame(999)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestAddGameFile_ReplacesPrevious(t *testing.T) {
	setupTestDB(t)
	game := createTestGame(t, "Zipped", nil, nil, nil)

	first, err := AddGameFile(game.ID, "v1.zip", "/uploads/gamefiles/v1.zip", 10)
	require.NoError(t, err)

	second, err := AddGameFile(game.ID, "v2.zip", "/uploads/gamefiles/v2.zip", 20)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	current, err := GetGameFile(game.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2.zip", current.Filename)

	var count int64
	require.NoError(t, database.DB.Model(&models.GameFile{}).Where("game_id = ?", game.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "at most one archive row per game")
}

func TestGetGameFile_Missing(t *testing.T) {
	setupTestDB(t)
	game := createTestGame(t, "NoFile", nil, nil, nil)

	_, err := GetGameFile(game.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
