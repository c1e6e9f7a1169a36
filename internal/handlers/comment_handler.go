package handlers

import (
	"net/http"

	"github.com/hanseol-dev/lumina-backend/internal/middleware"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/services"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterPublicCommentRoutes registers the anonymous-readable comment routes
func (h *CommentHandler) RegisterPublicCommentRoutes(g *echo.Group) {
	g.GET("/photos/:id/comments", h.GetPhotoComments)
	g.GET("/series/:id/comments", h.GetSeriesComments)
}

// RegisterCommentRoutes registers the authenticated comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/photos/:id/comments", h.CreatePhotoComment)
	g.POST("/series/:id/comments", h.CreateSeriesComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreatePhotoComment creates a comment (or reply) on a photo.
func (h *CommentHandler) CreatePhotoComment(c echo.Context) error {
	photoID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	return h.create(c, services.CommentTarget{PhotoID: &photoID})
}

// CreateSeriesComment creates a comment (or reply) on a series.
func (h *CommentHandler) CreateSeriesComment(c echo.Context) error {
	seriesID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	return h.create(c, services.CommentTarget{SeriesID: &seriesID})
}

func (h *CommentHandler) create(c echo.Context, target services.CommentTarget) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Create(middleware.UserID(c), target, req.ParentID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetPhotoComments returns the two-level comment tree of a photo.
func (h *CommentHandler) GetPhotoComments(c echo.Context) error {
	photoID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	tree, err := h.commentService.List(middleware.UserID(c), services.CommentTarget{PhotoID: &photoID})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tree)
}

// GetSeriesComments returns the two-level comment tree of a series.
func (h *CommentHandler) GetSeriesComments(c echo.Context) error {
	seriesID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	tree, err := h.commentService.List(middleware.UserID(c), services.CommentTarget{SeriesID: &seriesID})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tree)
}

// DeleteComment soft-deletes the caller's own comment.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.commentService.Delete(middleware.UserID(c), commentID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
