package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

const (
	// ContextUserKey holds the authenticated *models.User.
	ContextUserKey = "user"
	// ContextUserIDKey holds the authenticated user id; 0 means anonymous.
	ContextUserIDKey = "userID"
)

// JWTAuth validates the Bearer token and re-validates the claims against the
// store: a token for a deleted user is rejected even if the signature is
// still valid.
func JWTAuth(secret string, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := authenticate(c, secret, userRepo)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, user)
			c.Set(ContextUserIDKey, user.ID)
			return next(c)
		}
	}
}

// OptionalJWTAuth resolves the user when a valid token is present and leaves
// the request anonymous otherwise. Used on public read endpoints where
// visibility depends on who is asking.
func OptionalJWTAuth(secret string, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := authenticate(c, secret, userRepo)
			if err == nil {
				c.Set(ContextUserKey, user)
				c.Set(ContextUserIDKey, user.ID)
			}
			return next(c)
		}
	}
}

func authenticate(c echo.Context, secret string, userRepo repositories.UserRepository) (*models.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, apperrors.Unauthorized("AUTH.AUTHENTICATION_TOKEN_REQUIRED")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, apperrors.Unauthorized("AUTH.AUTHENTICATION_TOKEN_REQUIRED")
	}

	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.Unauthorized("AUTH.INVALID_TOKEN_OR_USER_NOT_FOUND")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("AUTH.INVALID_TOKEN_OR_USER_NOT_FOUND")
	}

	user, err := userRepo.GetUserByID(claims.UserID)
	if err != nil {
		return nil, apperrors.Unauthorized("AUTH.INVALID_TOKEN_OR_USER_NOT_FOUND")
	}
	return user, nil
}

// UserID returns the authenticated user id, or 0 for anonymous requests.
func UserID(c echo.Context) uint {
	if id, ok := c.Get(ContextUserIDKey).(uint); ok {
		return id
	}
	return 0
}
