package handlers

import (
	"net/http"

	"github.com/hanseol-dev/lumina-backend/internal/middleware"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/services"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterPublicLikeRoutes registers the anonymous-readable like routes
func (h *LikeHandler) RegisterPublicLikeRoutes(g *echo.Group) {
	g.GET("/photos/:id/likes", h.photoLikeStatus)
	g.GET("/series/:id/likes", h.seriesLikeStatus)
	g.GET("/comments/:id/likes", h.commentLikeStatus)
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/likes", h.ToggleLike)
}

// ToggleLike flips the caller's like on exactly one of photo, series or
// comment and returns the resulting state.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	var req models.ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}

	target, err := services.LikeTargetFromRequest(&req)
	if err != nil {
		return err
	}

	liked, err := h.likeService.Toggle(middleware.UserID(c), target)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked})
}

func (h *LikeHandler) photoLikeStatus(c echo.Context) error {
	return h.likeStatus(c, models.LikeTargetPhoto)
}

func (h *LikeHandler) seriesLikeStatus(c echo.Context) error {
	return h.likeStatus(c, models.LikeTargetSeries)
}

func (h *LikeHandler) commentLikeStatus(c echo.Context) error {
	return h.likeStatus(c, models.LikeTargetComment)
}

func (h *LikeHandler) likeStatus(c echo.Context, targetType models.LikeTargetType) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	count, liked, err := h.likeService.Status(middleware.UserID(c), services.LikeTarget{Type: targetType, ID: id})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count, "liked": liked})
}
