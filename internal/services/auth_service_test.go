package services

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user, token, err := env.auth.Register(&models.RegisterRequest{
		Username: "hana",
		Email:    "hana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	claims := &models.JwtCustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "hana", claims.Username)

	loggedIn, token, err := env.auth.Login(&models.LoginRequest{
		Email:    "hana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Register(&models.RegisterRequest{
		Username: "hana",
		Email:    "hana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, _, err = env.auth.Register(&models.RegisterRequest{
		Username: "hana2",
		Email:    "hana@example.com",
		Password: "correct horse",
	})
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
	assert.Equal(t, "AUTH.EMAIL_ALREADY_REGISTERED", appErr.MessageKey)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Register(&models.RegisterRequest{
		Username: "hana",
		Email:    "hana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, _, err = env.auth.Register(&models.RegisterRequest{
		Username: "hana",
		Email:    "hana2@example.com",
		Password: "correct horse",
	})
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
	assert.Equal(t, "AUTH.USERNAME_ALREADY_TAKEN", appErr.MessageKey)
}

func TestLogin_BadCredentials(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Register(&models.RegisterRequest{
		Username: "hana",
		Email:    "hana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	// Unknown email and wrong password map to the same opaque error so the
	// response does not leak which accounts exist.
	for _, req := range []*models.LoginRequest{
		{Email: "nobody@example.com", Password: "correct horse"},
		{Email: "hana@example.com", Password: "wrong horse"},
	} {
		_, _, err := env.auth.Login(req)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
		assert.Equal(t, "AUTH.INVALID_CREDENTIALS", appErr.MessageKey)
	}
}
