package jwt

import (
	"fmt"
	"time"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by a session token.
type Claims struct {
	UserID   uint
	Username string
}

// GenerateToken creates a new JWT for a given user. Tokens expire after 24 hours.
func GenerateToken(userID uint, username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// VerifyToken validates a token string and extracts its claims. It is a pure
// check: no side effects. Signature or expiry failures map to 401.
func VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Unauthorized("Invalid or expired token")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, apperror.Unauthorized("Invalid or expired token")
	}
	username, _ := claims["username"].(string)

	return &Claims{UserID: uint(sub), Username: username}, nil
}
