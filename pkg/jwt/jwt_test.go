package jwt

import (
	"errors"
	"testing"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTTest(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestGenerateAndVerifyToken(t *testing.T) {
	setupJWTTest(t)

	token, err := GenerateToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestVerifyToken_Garbage(t *testing.T) {
	setupJWTTest(t)

	_, err := VerifyToken("not-a-token")
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	setupJWTTest(t)

	token, err := GenerateToken(1, "alice")
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "a-different-secret"
	_, err = VerifyToken(token)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}

func TestVerifyToken_Tampered(t *testing.T) {
	setupJWTTest(t)

	token, err := GenerateToken(1, "alice")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = VerifyToken(tampered)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}
