package store

import (
	"errors"
	"testing"

	"gamehub/backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserByID_NotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetUserByID(999)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestGetUserByUsername_FullGameRecords(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "alice")

	game := createTestGame(t, "Pong", &author.ID,
		[]string{"retro"}, []string{"/uploads/screenshots/a.png"})
	_, err := AddGameFile(game.ID, "pong.zip", "/uploads/gamefiles/pong.zip", 100)
	require.NoError(t, err)

	user, err := GetUserByUsername("alice")
	require.NoError(t, err)
	require.Len(t, user.Games, 1)

	got := user.Games[0]
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "retro", got.Tags[0].Tag)
	require.Len(t, got.Screenshots, 1, "profile games must carry their screenshots")
	assert.Equal(t, "/uploads/screenshots/a.png", got.Screenshots[0].ScreenshotURL)
	require.NotNil(t, got.Click)
	require.NotNil(t, got.File, "profile games must carry their archive")
	assert.Equal(t, "pong.zip", got.File.Filename)
	require.NotNil(t, got.Author)
	assert.Equal(t, "alice", got.Author.Username)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetUserByUsername("nobody")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
