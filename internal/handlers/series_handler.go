package handlers

import (
	"net/http"

	"github.com/hanseol-dev/lumina-backend/internal/middleware"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/services"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// SeriesHandler handles HTTP requests related to photo series
type SeriesHandler struct {
	seriesService *services.SeriesService
}

// NewSeriesHandler creates a new SeriesHandler
func NewSeriesHandler(seriesService *services.SeriesService) *SeriesHandler {
	return &SeriesHandler{seriesService: seriesService}
}

// RegisterPublicSeriesRoutes registers the anonymous-readable series routes
func (h *SeriesHandler) RegisterPublicSeriesRoutes(g *echo.Group) {
	g.GET("/series/:id", h.GetSeries)
	g.GET("/users/:id/series", h.GetUserSeries)
}

// RegisterSeriesRoutes registers the authenticated series routes
func (h *SeriesHandler) RegisterSeriesRoutes(g *echo.Group) {
	g.POST("/series", h.CreateSeries)
	g.PATCH("/series/:id", h.UpdateSeries)
	g.DELETE("/series/:id", h.DeleteSeries)
	g.POST("/series/:id/photos", h.AddPhoto)
	g.DELETE("/series/:id/photos/:photoId", h.RemovePhoto)
	g.PATCH("/series/:id/reorder", h.Reorder)
}

// CreateSeries creates a new series for the caller.
func (h *SeriesHandler) CreateSeries(c echo.Context) error {
	var req models.CreateSeriesRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	series, err := h.seriesService.Create(middleware.UserID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, series)
}

// GetSeries returns a series with its photos in display order.
func (h *SeriesHandler) GetSeries(c echo.Context) error {
	seriesID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.seriesService.Get(seriesID, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// GetUserSeries lists a user's series.
func (h *SeriesHandler) GetUserSeries(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	list, err := h.seriesService.ListByUser(userID, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// UpdateSeries patches a series; owner only.
func (h *SeriesHandler) UpdateSeries(c echo.Context) error {
	seriesID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateSeriesRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	series, err := h.seriesService.Update(middleware.UserID(c), seriesID, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}

// DeleteSeries removes a series and its membership rows.
func (h *SeriesHandler) DeleteSeries(c echo.Context) error {
	seriesID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.seriesService.Delete(middleware.UserID(c), seriesID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddPhoto appends a photo to the series.
func (h *SeriesHandler) AddPhoto(c echo.Context) error {
	seriesID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.AddSeriesPhotoRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.seriesService.AddPhoto(middleware.UserID(c), seriesID, req.PhotoID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

// RemovePhoto detaches a photo from the series.
func (h *SeriesHandler) RemovePhoto(c echo.Context) error {
	seriesID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	photoID, err := parseIDParam(c, "photoId")
	if err != nil {
		return err
	}
	if err := h.seriesService.RemovePhoto(middleware.UserID(c), seriesID, photoID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Reorder rewrites the display order of the series' photos.
func (h *SeriesHandler) Reorder(c echo.Context) error {
	seriesID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.ReorderSeriesRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.seriesService.Reorder(middleware.UserID(c), seriesID, req.PhotoIDs); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
