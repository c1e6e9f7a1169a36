package handlers

import (
	"net/http"
	"strconv"

	"github.com/hanseol-dev/lumina-backend/internal/middleware"
	"github.com/hanseol-dev/lumina-backend/internal/services"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followService *services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService *services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/toggle-follow", h.ToggleFollow)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

// ToggleFollow flips the caller's follow edge to the target user.
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	following, err := h.followService.Toggle(middleware.UserID(c), targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"isFollowing": following})
}

// GetFollowers lists the users following the target user.
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	users, err := h.followService.Followers(targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetFollowing lists the users the target user follows.
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	users, err := h.followService.Following(targetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	return uint(id), nil
}
