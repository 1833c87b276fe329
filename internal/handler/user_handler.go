package handler

import (
	"net/http"
	"time"

	"gamehub/backend/internal/auth"
	"gamehub/backend/internal/models"
	"gamehub/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// UserResponse is the account payload returned with a session token.
type UserResponse struct {
	ID        uint      `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Role      string    `json:"role" example:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse bundles the user with a fresh token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// PublicProfileResponse is another user's page: account basics plus the
// games they authored.
type PublicProfileResponse struct {
	Username  string         `json:"username"`
	CreatedAt time.Time      `json:"createdAt"`
	Games     []GameResponse `json:"games"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new account and returns it with an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	user, token, err := auth.Register(input.Username, input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{User: newUserResponse(user), Token: token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates with username and password and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /api/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	user, token, err := auth.Login(input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: newUserResponse(user), Token: token})
}

// endregion

// region --- User Handlers ---

// GetProfile godoc
// @Summary      Get the current user's profile
// @Description  Returns the account of the authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/profile [get]
func GetProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	user, err := store.GetUserByID(userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// GetPublicProfile godoc
// @Summary      Get a public user profile
// @Description  Returns account basics and the games authored by the user.
// @Tags         users
// @Produce      json
// @Param        username path string true "Username"
// @Success      200  {object}  PublicProfileResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/users/{username} [get]
func GetPublicProfile(c *gin.Context) {
	user, err := store.GetUserByUsername(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	games := make([]GameResponse, 0, len(user.Games))
	for i := range user.Games {
		games = append(games, newGameResponse(&user.Games[i]))
	}

	c.JSON(http.StatusOK, PublicProfileResponse{
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		Games:     games,
	})
}

// endregion
