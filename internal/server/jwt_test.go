package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key",
		ExpirationHours: 1,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := testJWTService()
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_RejectsEmptyToken(t *testing.T) {
	_, err := testJWTService().ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	_, err := testJWTService().ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := testJWTService()
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	getter, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
