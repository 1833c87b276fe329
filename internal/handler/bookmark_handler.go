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

// BookmarkInput saves a reference to a game. Name, image, genre and author
// are snapshotted so the bookmark stays renderable if the game changes.
type BookmarkInput struct {
	GameID     uint   `json:"gameId" binding:"required"`
	GameName   string `json:"gameName" binding:"required"`
	GameImage  string `json:"gameImage"`
	GameGenre  string `json:"gameGenre"`
	AuthorName string `json:"authorName"`
}

// BookmarkResponse is one saved bookmark.
type BookmarkResponse struct {
	ID         uint      `json:"id"`
	GameID     uint      `json:"gameId"`
	GameName   string    `json:"gameName"`
	GameImage  string    `json:"gameImage"`
	GameGenre  string    `json:"gameGenre"`
	AuthorName string    `json:"authorName"`
	AddedAt    time.Time `json:"addedAt"`
}

func newBookmarkResponse(bookmark *models.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:         bookmark.ID,
		GameID:     bookmark.GameID,
		GameName:   bookmark.GameName,
		GameImage:  bookmark.GameImage,
		GameGenre:  bookmark.GameGenre,
		AuthorName: bookmark.AuthorName,
		AddedAt:    bookmark.AddedAt,
	}
}

// endregion

// GetBookmarks godoc
// @Summary      List the caller's bookmarks
// @Description  Returns saved bookmarks, newest first. The server table is the canonical store.
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   BookmarkResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /api/profile/bookmarks [get]
func GetBookmarks(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	bookmarks, err := store.GetBookmarks(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BookmarkResponse, 0, len(bookmarks))
	for i := range bookmarks {
		response = append(response, newBookmarkResponse(&bookmarks[i]))
	}
	c.JSON(http.StatusOK, response)
}

// AddBookmark godoc
// @Summary      Bookmark a game
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body BookmarkInput true "Bookmark"
// @Success      201  {object}  BookmarkResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Already bookmarked"
// @Router       /api/profile/bookmarks [post]
func AddBookmark(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input BookmarkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game ID and name are required"})
		return
	}

	bookmark, err := store.AddBookmark(userID, input.GameID, input.GameName, input.GameImage, input.GameGenre, input.AuthorName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBookmarkResponse(bookmark))
}

// RemoveBookmark godoc
// @Summary      Remove a bookmark
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200  {object}  map[string]string "{"message": "Bookmark removed"}"
// @Failure      404  {object}  ErrorResponse
// @Router       /api/profile/bookmarks/{gameId} [delete]
func RemoveBookmark(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	gameID, err := strconv.ParseUint(c.Param("gameId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	removed, err := store.RemoveBookmark(userID, uint(gameID))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		respondError(c, apperror.NotFound("Bookmark"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed"})
}
