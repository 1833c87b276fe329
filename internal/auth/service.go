package auth

import (
	"errors"
	"regexp"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/database"
	"gamehub/backend/internal/models"
	"gamehub/backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register creates an account, hashes the password and issues a session token.
func Register(username, email, password string) (*models.User, string, error) {
	if username == "" || email == "" || password == "" {
		return nil, "", apperror.Validation("All fields are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, "", apperror.Validation("Invalid email format")
	}
	if len(password) < 6 {
		return nil, "", apperror.Validation("Password must be at least 6 characters")
	}

	var existing models.User
	err := database.DB.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		if existing.Username == username {
			return nil, "", apperror.Conflict("Username already exists")
		}
		return nil, "", apperror.Conflict("Email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "user",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Login authenticates by username and password and issues a fresh token.
func Login(username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", apperror.Validation("All fields are required")
	}

	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperror.NotFound("User")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	token, err := jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}
