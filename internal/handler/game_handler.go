package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/auth"
	"gamehub/backend/internal/logger"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/store"
	"gamehub/backend/internal/upload"

	"github.com/gin-gonic/gin"
)

// Uploads is the pipeline game files go through. Wired in main.
var Uploads *upload.Pipeline

// region --- DTOs ---

// GameFileResponse describes the current packaged archive of a game.
type GameFileResponse struct {
	ID         uint      `json:"id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"filePath"`
	FileSize   int64     `json:"fileSize"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// GameResponse is the full game record: base row plus tags, screenshots,
// click count, current archive and resolved author, assembled at read time.
type GameResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Platform    string            `json:"platform"`
	Multiplayer string            `json:"multiplayer"`
	Genre       string            `json:"genre"`
	AgeRating   string            `json:"ageRating"`
	ReleaseDate string            `json:"releaseDate"`
	Image       string            `json:"image"`
	UserID      *uint             `json:"userId"`
	Author      *string           `json:"author"`
	CreatedAt   time.Time         `json:"createdAt"`
	Tags        []string          `json:"tags"`
	Screenshots []string          `json:"screenshots"`
	Clicks      int               `json:"clicks"`
	GameFile    *GameFileResponse `json:"gameFile"`
	InProfile   *bool             `json:"inProfile,omitempty"`
	Bookmarked  *bool             `json:"bookmarked,omitempty"`
}

func newGameFileResponse(file *models.GameFile) *GameFileResponse {
	if file == nil {
		return nil
	}
	return &GameFileResponse{
		ID:         file.ID,
		Filename:   file.Filename,
		FilePath:   file.FilePath,
		FileSize:   file.FileSize,
		UploadedAt: file.UploadedAt,
	}
}

func newGameResponse(game *models.Game) GameResponse {
	tags := make([]string, 0, len(game.Tags))
	for _, t := range game.Tags {
		tags = append(tags, t.Tag)
	}

	screenshots := make([]string, 0, len(game.Screenshots))
	for _, s := range game.Screenshots {
		screenshots = append(screenshots, s.ScreenshotURL)
	}

	clicks := 0
	if game.Click != nil {
		clicks = game.Click.ClickCount
	}

	var author *string
	if game.Author != nil {
		author = &game.Author.Username
	}

	return GameResponse{
		ID:          game.ID,
		Name:        game.Name,
		Description: game.Description,
		Platform:    game.Platform,
		Multiplayer: game.Multiplayer,
		Genre:       game.Genre,
		AgeRating:   game.AgeRating,
		ReleaseDate: game.ReleaseDate,
		Image:       game.Image,
		UserID:      game.UserID,
		Author:      author,
		CreatedAt:   game.CreatedAt,
		Tags:        tags,
		Screenshots: screenshots,
		Clicks:      clicks,
		GameFile:    newGameFileResponse(game.File),
	}
}

// ClickResponse is returned by the click endpoint.
type ClickResponse struct {
	GameID uint `json:"gameId"`
	Clicks int  `json:"clicks"`
}

// endregion

// region --- Catalog Handlers ---

// GetGames godoc
// @Summary      List the catalog
// @Description  Returns all games, newest first, with optional equality filters.
// @Tags         games
// @Produce      json
// @Param        genre    query  string  false  "Filter by genre"
// @Param        platform query  string  false  "Filter by platform"
// @Param        tag      query  string  false  "Filter by tag"
// @Param        q        query  string  false  "Filter by name substring"
// @Success      200  {array}   GameResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/games [get]
func GetGames(c *gin.Context) {
	games, err := store.GetAllGames(store.GameFilter{
		Genre:    c.Query("genre"),
		Platform: c.Query("platform"),
		Tag:      c.Query("tag"),
		Query:    c.Query("q"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]GameResponse, 0, len(games))
	for i := range games {
		response = append(response, newGameResponse(&games[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetPopularGames godoc
// @Summary      List games by popularity
// @Description  Returns all games sorted by click count descending. Ties keep catalog order.
// @Tags         games
// @Produce      json
// @Success      200  {array}   GameResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/games/popular [get]
func GetPopularGames(c *gin.Context) {
	games, err := store.GetPopularGames()
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]GameResponse, 0, len(games))
	for i := range games {
		response = append(response, newGameResponse(&games[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetGameByID godoc
// @Summary      Get a single game
// @Description  Returns the full game record and increments its view counter. A valid optional bearer token adds viewer flags.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /api/games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	game, err := store.GetGameByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	// Every detail fetch counts as a view.
	clicks, err := store.IncrementGameClicks(game.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := newGameResponse(game)
	response.Clicks = clicks

	if userID, ok := c.Get("userID"); ok {
		if inProfile, err := store.IsGameInUserProfile(userID.(uint), game.ID); err == nil {
			response.InProfile = &inProfile
		}
		if bookmarked, err := store.IsBookmarked(userID.(uint), game.ID); err == nil {
			response.Bookmarked = &bookmarked
		}
	}

	c.JSON(http.StatusOK, response)
}

// ClickGame godoc
// @Summary      Increment a game's click counter
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200  {object}  ClickResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/games/{id}/click [post]
func ClickGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	clicks, err := store.IncrementGameClicks(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ClickResponse{GameID: uint(id), Clicks: clicks})
}

// CreateGame godoc
// @Summary      Add a game to the catalog
// @Description  Multipart form: required image, up to five screenshots, optional .zip archive, plus the text fields name, description, platform, multiplayer, genre, ageRating, releaseDate and tag1..tag3. The game is also added to the author's profile list.
// @Tags         games
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      413  {object}  ErrorResponse
// @Router       /api/games [post]
func CreateGame(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	name := c.PostForm("name")
	description := c.PostForm("description")
	platform := c.PostForm("platform")
	genre := c.PostForm("genre")
	if name == "" || description == "" || platform == "" || genre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not all required fields are filled"})
		return
	}

	multiplayer := c.PostForm("multiplayer")
	if multiplayer == "" {
		multiplayer = "No"
	}
	ageRating := c.PostForm("ageRating")
	if ageRating == "" {
		ageRating = "Not specified"
	}

	var tags []string
	for _, field := range []string{"tag1", "tag2", "tag3"} {
		if tag := c.PostForm(field); tag != "" {
			tags = append(tags, tag)
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	images := form.File["image"]
	if len(images) != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exactly one cover image is required"})
		return
	}
	screenshotFiles := form.File["screenshots"]
	if len(screenshotFiles) > upload.MaxScreenshots {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At most five screenshots are allowed"})
		return
	}
	archives := form.File["gameFile"]
	if len(archives) > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At most one game file is allowed"})
		return
	}

	// From here on any failure must leave no files behind.
	session := Uploads.Begin()

	imagePath, err := session.SaveImage(images[0])
	if err != nil {
		session.Cleanup()
		respondError(c, err)
		return
	}

	var screenshots []string
	for _, fh := range screenshotFiles {
		url, err := session.SaveScreenshot(fh)
		if err != nil {
			session.Cleanup()
			respondError(c, err)
			return
		}
		screenshots = append(screenshots, url)
	}

	var archivePath string
	if len(archives) == 1 {
		archivePath, err = session.SaveArchive(archives[0])
		if err != nil {
			session.Cleanup()
			respondError(c, err)
			return
		}
	}

	game := models.Game{
		Name:        name,
		Description: description,
		Platform:    platform,
		Multiplayer: multiplayer,
		Genre:       genre,
		AgeRating:   ageRating,
		ReleaseDate: c.PostForm("releaseDate"),
		Image:       imagePath,
		UserID:      &userID,
	}

	if err := store.AddGame(&game, tags, screenshots); err != nil {
		session.Cleanup()
		respondError(c, err)
		return
	}

	if archivePath != "" {
		if _, err := store.AddGameFile(game.ID, archives[0].Filename, archivePath, archives[0].Size); err != nil {
			// The game itself is committed; drop the unrecorded archive so it
			// does not sit orphaned on disk. The response carries gameFile null.
			logger.Log.Errorw("failed to record game file", "gameID", game.ID, "error", err)
			Uploads.Remove(archivePath)
		}
	}

	// The author's profile list gets the new game too; a failure here does
	// not undo the catalog insert.
	if _, err := store.AddGameToUserProfile(userID, game.ID, game.Name, game.Image); err != nil {
		logger.Log.Warnw("failed to add game to author profile", "gameID", game.ID, "error", err)
	}

	created, err := store.GetGameByID(game.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(created))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Removes the game and all dependent rows. Allowed for the author and admins. Uploaded files are unlinked best-effort.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200  {object}  map[string]string "{"message": "Game deleted"}"
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /api/games/{id} [delete]
func DeleteGame(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	game, err := store.GetGameByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := store.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !auth.CanModifyGame(user, game) {
		respondError(c, apperror.Forbidden("You are not allowed to delete this game"))
		return
	}

	existed, err := store.DeleteGame(game.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !existed {
		respondError(c, apperror.NotFound("Game"))
		return
	}

	// Disk cleanup is best-effort; failures are logged inside Remove.
	Uploads.Remove(game.Image)
	for _, s := range game.Screenshots {
		Uploads.Remove(s.ScreenshotURL)
	}
	if game.File != nil {
		Uploads.Remove(game.File.FilePath)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// endregion

// region --- Archive Handlers ---

// UploadGameFile godoc
// @Summary      Upload a packaged game archive
// @Description  Replaces the game's current .zip archive. Allowed for the author and admins.
// @Tags         games
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Param        gameFile formData file true "Game archive (.zip)"
// @Success      201  {object}  map[string]GameFileResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      413  {object}  ErrorResponse
// @Router       /api/games/{id}/upload [post]
func UploadGameFile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	game, err := store.GetGameByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := store.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !auth.CanModifyGame(user, game) {
		respondError(c, apperror.Forbidden("You are not allowed to upload files for this game"))
		return
	}

	fh, err := c.FormFile("gameFile")
	if err != nil {
		respondError(c, apperror.Validation("Game file is required"))
		return
	}

	session := Uploads.Begin()
	path, err := session.SaveArchive(fh)
	if err != nil {
		session.Cleanup()
		respondError(c, err)
		return
	}

	file, err := store.AddGameFile(game.ID, fh.Filename, path, fh.Size)
	if err != nil {
		session.Cleanup()
		respondError(c, err)
		return
	}

	// The replaced archive, if any, is no longer referenced.
	if game.File != nil {
		Uploads.Remove(game.File.FilePath)
	}

	c.JSON(http.StatusCreated, gin.H{"gameFile": newGameFileResponse(file)})
}

// DownloadGameFile godoc
// @Summary      Download a game's packaged archive
// @Tags         games
// @Produce      application/zip
// @Param        id path int true "Game ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  ErrorResponse
// @Router       /api/games/{id}/download [get]
func DownloadGameFile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	file, err := store.GetGameFile(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/zip")
	c.FileAttachment(Uploads.Resolve(file.FilePath), file.Filename)
}

// endregion
