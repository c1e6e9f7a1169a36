package handlers

import (
	"net/http"

	"github.com/hanseol-dev/lumina-backend/internal/middleware"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/services"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// CollectionHandler handles HTTP requests related to collections
type CollectionHandler struct {
	collectionService *services.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(collectionService *services.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// RegisterCollectionRoutes registers collection-related routes
func (h *CollectionHandler) RegisterCollectionRoutes(g *echo.Group) {
	g.POST("/collections/saved/toggle", h.ToggleSaved)
	g.GET("/collections/saved", h.ListSaved)
	g.POST("/collections", h.CreateCollection)
	g.GET("/collections", h.ListCollections)
	g.DELETE("/collections/:id", h.DeleteCollection)
}

// ToggleSaved saves or unsaves a photo in the caller's default collection.
func (h *CollectionHandler) ToggleSaved(c echo.Context) error {
	var req models.SavePhotoRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	saved, err := h.collectionService.ToggleSaved(middleware.UserID(c), req.PhotoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"saved": saved})
}

// ListSaved lists the live photos in the caller's default collection.
func (h *CollectionHandler) ListSaved(c echo.Context) error {
	photos, err := h.collectionService.ListSaved(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, photos)
}

// CreateCollection creates a named collection for the caller.
func (h *CollectionHandler) CreateCollection(c echo.Context) error {
	var req models.CreateCollectionRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	collection, err := h.collectionService.Create(middleware.UserID(c), req.Title, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, collection)
}

// ListCollections lists the caller's collections, default first.
func (h *CollectionHandler) ListCollections(c echo.Context) error {
	collections, err := h.collectionService.ListByUser(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, collections)
}

// DeleteCollection removes a named collection; the default one is protected.
func (h *CollectionHandler) DeleteCollection(c echo.Context) error {
	collectionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.collectionService.Delete(middleware.UserID(c), collectionID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
