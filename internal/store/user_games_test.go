package store

import (
	"errors"
	"testing"

	"gamehub/backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGameToUserProfile_RejectsDuplicate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	game := createTestGame(t, "Pong", &user.ID, nil, nil)

	_, err := AddGameToUserProfile(user.ID, game.ID, game.Name, game.Image)
	require.NoError(t, err)

	_, err = AddGameToUserProfile(user.ID, game.ID, game.Name, game.Image)
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	entries, err := GetUserGames(user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the rejected add must not grow the list")
}

func TestAddGameToUserProfile_IndependentOfOwnership(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "alice")
	fan := createTestUser(t, "bob")
	game := createTestGame(t, "Pong", &author.ID, nil, nil)

	entry, err := AddGameToUserProfile(fan.ID, game.ID, game.Name, game.Image)
	require.NoError(t, err)
	assert.Equal(t, fan.ID, entry.UserID)
	assert.Equal(t, game.Name, entry.GameName)
}

func TestGetUserGames_NewestFirst(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	first := createTestGame(t, "First", &user.ID, nil, nil)
	second := createTestGame(t, "Second", &user.ID, nil, nil)

	_, err := AddGameToUserProfile(user.ID, first.ID, first.Name, first.Image)
	require.NoError(t, err)
	_, err = AddGameToUserProfile(user.ID, second.ID, second.Name, second.Image)
	require.NoError(t, err)

	entries, err := GetUserGames(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Second", entries[0].GameName)
	assert.Equal(t, "First", entries[1].GameName)
}

func TestRemoveGameFromUserProfile_ByGameID(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	game := createTestGame(t, "Pong", &user.ID, nil, nil)

	_, err := AddGameToUserProfile(user.ID, game.ID, game.Name, game.Image)
	require.NoError(t, err)

	removed, err := RemoveGameFromUserProfile(user.ID, game.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	inProfile, err := IsGameInUserProfile(user.ID, game.ID)
	require.NoError(t, err)
	assert.False(t, inProfile)

	// Removal must not block re-adding the same game.
	_, err = AddGameToUserProfile(user.ID, game.ID, game.Name, game.Image)
	require.NoError(t, err)
}

func TestRemoveGameFromUserProfile_RowIDFallback(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	// Burn low ids so the row id cannot collide with a live game id.
	for _, name := range []string{"g1", "g2", "g3"} {
		createTestGame(t, name, &user.ID, nil, nil)
	}
	game := createTestGame(t, "Pong", &user.ID, nil, nil)

	entry, err := AddGameToUserProfile(user.ID, game.ID, game.Name, game.Image)
	require.NoError(t, err)

	// Old clients sent the user_games row id instead of the game id.
	removed, err := RemoveGameFromUserProfile(user.ID, entry.ID)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestRemoveGameFromUserProfile_Missing(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	removed, err := RemoveGameFromUserProfile(user.ID, 42)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemoveGameFromUserProfile_OtherUsersEntryIsSafe(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	game := createTestGame(t, "Pong", &alice.ID, nil, nil)

	_, err := AddGameToUserProfile(alice.ID, game.ID, game.Name, game.Image)
	require.NoError(t, err)

	removed, err := RemoveGameFromUserProfile(bob.ID, game.ID)
	require.NoError(t, err)
	assert.False(t, removed, "one user's removal must not touch another's list")

	inProfile, err := IsGameInUserProfile(alice.ID, game.ID)
	require.NoError(t, err)
	assert.True(t, inProfile)
}
