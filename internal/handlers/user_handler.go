package handlers

import (
	"net/http"

	"github.com/hanseol-dev/lumina-backend/internal/middleware"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/services"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userService   *services.UserService
	photoService  *services.PhotoService
	followService *services.FollowService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService, photoService *services.PhotoService, followService *services.FollowService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		photoService:  photoService,
		followService: followService,
	}
}

// RegisterPublicUserRoutes registers the anonymous-readable user routes
func (h *UserHandler) RegisterPublicUserRoutes(g *echo.Group) {
	g.GET("/users/:id", h.GetProfile)
	g.GET("/users/:id/photos", h.GetUserPhotos)
}

// RegisterUserRoutes registers the authenticated user routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.PATCH("/users/me", h.UpdateProfile)
	g.PATCH("/users/me/notification-preferences", h.UpdateNotificationPrefs)
	g.DELETE("/users/me", h.DeleteAccount)
}

// GetProfile returns a user's public profile. When the caller is
// authenticated the response also says whether they follow this user.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		return err
	}

	isFollowing := false
	if viewerID := middleware.UserID(c); viewerID != 0 && viewerID != userID {
		isFollowing, err = h.followService.IsFollowing(viewerID, userID)
		if err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user":        user,
		"isFollowing": isFollowing,
	})
}

// GetUserPhotos lists a user's photos. Owners see their private photos too.
func (h *UserHandler) GetUserPhotos(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	photos, err := h.photoService.ListByUser(userID, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, photos)
}

// UpdateProfile patches the caller's profile fields.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateProfile(middleware.UserID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateNotificationPrefs patches the caller's per-category notification
// switches.
func (h *UserHandler) UpdateNotificationPrefs(c echo.Context) error {
	var req models.UpdateNotificationPrefsRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}

	user, err := h.userService.UpdateNotificationPrefs(middleware.UserID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteAccount soft-deletes the caller's account.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	if err := h.userService.Delete(middleware.UserID(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
