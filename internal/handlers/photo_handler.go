package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/hanseol-dev/lumina-backend/internal/middleware"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/internal/services"
	"github.com/hanseol-dev/lumina-backend/internal/storage"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// maxUploadBytes caps multipart photo uploads at 20 MiB.
const maxUploadBytes = 20 << 20

// PhotoHandler handles HTTP requests related to photos
type PhotoHandler struct {
	photoService *services.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(photoService *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// RegisterPublicPhotoRoutes registers the read routes that allow anonymous
// access; visibility still depends on who is asking.
func (h *PhotoHandler) RegisterPublicPhotoRoutes(g *echo.Group) {
	g.GET("/photos", h.ListPhotos)
	g.GET("/photos/:id", h.GetPhoto)
	g.GET("/photos/:id/image", h.GetImage)
	g.GET("/photos/:id/thumbnail", h.GetThumbnail)
}

// RegisterPhotoRoutes registers the authenticated photo routes
func (h *PhotoHandler) RegisterPhotoRoutes(g *echo.Group) {
	g.POST("/photos", h.UploadPhoto)
	g.PATCH("/photos/:id/visibility", h.UpdateVisibility)
	g.DELETE("/photos/:id", h.DeletePhoto)
}

// ListPhotos lists public photos sorted by ?sort=latest|popular.
func (h *PhotoHandler) ListPhotos(c echo.Context) error {
	sort := repositories.PhotoSortLatest
	if c.QueryParam("sort") == "popular" {
		sort = repositories.PhotoSortPopular
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	photos, err := h.photoService.List(sort, page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, photos)
}

// GetPhoto returns one photo, subject to the visibility invariant.
func (h *PhotoHandler) GetPhoto(c echo.Context) error {
	photoID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	photo, err := h.photoService.Get(photoID, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, photo)
}

// UploadPhoto ingests a multipart image upload. The resize and both storage
// writes happen synchronously before the response.
func (h *PhotoHandler) UploadPhoto(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if fileHeader.Size > maxUploadBytes {
		return apperrors.Validation("PHOTO.INVALID_IMAGE")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.Internal(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return apperrors.Internal(err)
	}

	isPublic := c.FormValue("is_public") != "false"
	photo, err := h.photoService.Upload(
		c.Request().Context(),
		middleware.UserID(c),
		c.FormValue("title"),
		c.FormValue("description"),
		isPublic,
		data,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, photo)
}

// UpdateVisibility flips a photo between public and private.
func (h *PhotoHandler) UpdateVisibility(c echo.Context) error {
	photoID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePhotoVisibilityRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("GLOBAL.INVALID_REQUEST")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	photo, err := h.photoService.UpdateVisibility(middleware.UserID(c), photoID, *req.IsPublic)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, photo)
}

// DeletePhoto soft-deletes the caller's photo.
func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	photoID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.photoService.Delete(middleware.UserID(c), photoID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetImage proxies the original image bytes from object storage.
func (h *PhotoHandler) GetImage(c echo.Context) error {
	return h.proxyObject(c, h.photoService.GetImage)
}

// GetThumbnail proxies the thumbnail bytes from object storage.
func (h *PhotoHandler) GetThumbnail(c echo.Context) error {
	return h.proxyObject(c, h.photoService.GetThumbnail)
}

func (h *PhotoHandler) proxyObject(c echo.Context, fetch func(ctx context.Context, photoID, viewerID uint) (*storage.Object, error)) error {
	photoID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	obj, err := fetch(c.Request().Context(), photoID, middleware.UserID(c))
	if err != nil {
		return err
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	c.Response().Header().Set("Last-Modified", obj.LastModified.UTC().Format(http.TimeFormat))
	if obj.ContentLength > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(obj.ContentLength, 10))
	}
	return c.Stream(http.StatusOK, contentType, obj.Body)
}
