package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	manager := &JWTManager{secret: "test-secret"}

	token, err := manager.GenerateAccessJWT("john@example.com", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	email, err := manager.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", email)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	manager := &JWTManager{secret: "test-secret"}
	other := &JWTManager{secret: "other-secret"}

	token, err := manager.GenerateAccessJWT("john@example.com", time.Hour)
	assert.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	manager := &JWTManager{secret: "test-secret"}

	token, err := manager.GenerateAccessJWT("john@example.com", -time.Minute)
	assert.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredJWTToken)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	manager := &JWTManager{secret: "test-secret"}

	_, err := manager.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestNewJWTManager_ReadsSecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	manager := NewJWTManager()
	token, err := manager.GenerateAccessJWT("john@example.com", time.Hour)
	assert.NoError(t, err)

	email, err := manager.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "john@example.com", email)
}
