package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ProfileGameInput adds a catalog game to the caller's profile list.
type ProfileGameInput struct {
	GameID    uint   `json:"gameId" binding:"required"`
	GameName  string `json:"gameName" binding:"required"`
	GameImage string `json:"gameImage"`
}

// UserGameResponse is one entry of a user's profile list.
type UserGameResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	GameID    uint      `json:"gameId"`
	GameName  string    `json:"gameName"`
	GameImage string    `json:"gameImage"`
	AddedAt   time.Time `json:"addedAt"`
}

func newUserGameResponse(entry *models.UserGame) UserGameResponse {
	return UserGameResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		GameID:    entry.GameID,
		GameName:  entry.GameName,
		GameImage: entry.GameImage,
		AddedAt:   entry.AddedAt,
	}
}

// endregion

// GetProfileGames godoc
// @Summary      List the caller's profile games
// @Description  Returns the games the user added to their profile, newest first.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   UserGameResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /api/profile/games [get]
func GetProfileGames(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	entries, err := store.GetUserGames(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]UserGameResponse, 0, len(entries))
	for i := range entries {
		response = append(response, newUserGameResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, response)
}

// AddProfileGame godoc
// @Summary      Add a game to the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ProfileGameInput true "Game reference"
// @Success      201  {object}  UserGameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Already in profile"
// @Router       /api/profile/games [post]
func AddProfileGame(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input ProfileGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game ID and name are required"})
		return
	}

	entry, err := store.AddGameToUserProfile(userID, input.GameID, input.GameName, input.GameImage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserGameResponse(entry))
}

// CheckProfileGame godoc
// @Summary      Check whether a game is in the caller's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200  {object}  map[string]bool "{"isInProfile": true}"
// @Failure      401  {object}  ErrorResponse
// @Router       /api/profile/games/{gameId} [get]
func CheckProfileGame(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	gameID, err := strconv.ParseUint(c.Param("gameId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	inProfile, err := store.IsGameInUserProfile(userID, uint(gameID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isInProfile": inProfile})
}

// RemoveProfileGame godoc
// @Summary      Remove a game from the caller's profile
// @Description  The identifier is the game id. For old clients that sent the profile row id, that is retried as a fallback.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200  {object}  map[string]string "{"message": "Game removed from profile"}"
// @Failure      404  {object}  ErrorResponse "Game not in profile"
// @Router       /api/profile/games/{gameId} [delete]
func RemoveProfileGame(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	ref, err := strconv.ParseUint(c.Param("gameId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	removed, err := store.RemoveGameFromUserProfile(userID, uint(ref))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		respondError(c, apperror.NotFound("Game in profile"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game removed from profile"})
}
