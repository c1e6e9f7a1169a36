package handlers

import (
	"net/http"

	"github.com/hanseol-dev/lumina-backend/internal/middleware"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/services"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterAuthRoutes registers the unprotected authentication routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
}

// RegisterMeRoutes registers the authenticated identity route
func (h *AuthHandler) RegisterMeRoutes(g *echo.Group) {
	g.GET("/auth/me", h.Me)
}

// Register creates a new account and returns the user with a token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Register(&req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"user": user, "token": token})
}

// Login authenticates credentials and returns the user with a token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(&req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user, "token": token})
}

// Logout is stateless: tokens expire on their own, the client just drops it.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Me returns the authenticated user resolved by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := c.Get(middleware.ContextUserKey).(*models.User)
	if !ok {
		return apperrors.Unauthorized("GLOBAL.UNAUTHORIZED")
	}
	return c.JSON(http.StatusOK, user)
}
