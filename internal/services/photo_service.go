package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hanseol-dev/lumina-backend/internal/imageproc"
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/internal/storage"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"gorm.io/gorm"
)

// PhotoService handles photo CRUD including ingestion: resize, two object
// storage writes, then the database row. Image processing runs synchronously
// in the request path; there is no background job queue.
type PhotoService struct {
	photoRepo repositories.PhotoRepository
	store     storage.Storage
	processor *imageproc.Processor
}

func NewPhotoService(photoRepo repositories.PhotoRepository, store storage.Storage, processor *imageproc.Processor) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		store:     store,
		processor: processor,
	}
}

// List returns live public photos sorted by recency or like count.
func (s *PhotoService) List(sort repositories.PhotoSort, page, limit int) ([]models.Photo, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	photos, err := s.photoRepo.GetPublicPhotos(sort, page, limit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return photos, nil
}

// Get returns one photo, enforcing the private-photo invariant for the viewer.
func (s *PhotoService) Get(photoID, viewerID uint) (*models.Photo, error) {
	return resolvePhoto(s.photoRepo, photoID, viewerID)
}

// ListByUser returns a user's photos; private ones only for the owner.
func (s *PhotoService) ListByUser(userID, viewerID uint) ([]models.Photo, error) {
	photos, err := s.photoRepo.GetPhotosByUserID(userID, userID == viewerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return photos, nil
}

// Upload ingests an image: decode and thumbnail it, write the original and
// the thumbnail to object storage, then persist the row. If the database
// write fails the uploaded objects are not cleaned up.
func (s *PhotoService) Upload(ctx context.Context, userID uint, title, description string, isPublic bool, data []byte, contentType string) (*models.Photo, error) {
	thumb, format, err := s.processor.Resize(bytes.NewReader(data), imageproc.SizeThumbnail)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeValidationFailed, "PHOTO.INVALID_IMAGE", 400)
	}

	id := uuid.New().String()
	imageKey := fmt.Sprintf("photos/%s.%s", id, ext(format))
	thumbnailKey := fmt.Sprintf("thumbnails/%s.%s", id, ext(format))

	if err := s.store.Save(ctx, imageKey, bytes.NewReader(data), contentType); err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := s.store.Save(ctx, thumbnailKey, bytes.NewReader(thumb), contentType); err != nil {
		return nil, apperrors.Internal(err)
	}

	if title == "" {
		title = "Untitled"
	}
	photo := &models.Photo{
		UserID:       userID,
		Title:        title,
		Description:  description,
		ImageKey:     imageKey,
		ThumbnailKey: thumbnailKey,
		IsPublic:     isPublic,
	}
	if err := s.photoRepo.CreatePhoto(photo); err != nil {
		return nil, apperrors.Internal(err)
	}
	return photo, nil
}

func ext(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}

// UpdateVisibility flips a photo between public and private; owner only.
func (s *PhotoService) UpdateVisibility(userID, photoID uint, isPublic bool) (*models.Photo, error) {
	photo, err := s.requireOwn(userID, photoID)
	if err != nil {
		return nil, err
	}
	photo.IsPublic = isPublic
	if err := s.photoRepo.UpdatePhoto(photo); err != nil {
		return nil, apperrors.Internal(err)
	}
	return photo, nil
}

// Delete soft-deletes the photo; the stored objects are kept so existing
// references stay resolvable.
func (s *PhotoService) Delete(userID, photoID uint) error {
	if _, err := s.requireOwn(userID, photoID); err != nil {
		return err
	}
	if err := s.photoRepo.DeletePhoto(photoID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// GetImage streams the original image bytes for the proxy endpoint.
func (s *PhotoService) GetImage(ctx context.Context, photoID, viewerID uint) (*storage.Object, error) {
	photo, err := resolvePhoto(s.photoRepo, photoID, viewerID)
	if err != nil {
		return nil, err
	}
	obj, err := s.store.Get(ctx, photo.ImageKey)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return obj, nil
}

// GetThumbnail streams the thumbnail bytes for the proxy endpoint.
func (s *PhotoService) GetThumbnail(ctx context.Context, photoID, viewerID uint) (*storage.Object, error) {
	photo, err := resolvePhoto(s.photoRepo, photoID, viewerID)
	if err != nil {
		return nil, err
	}
	obj, err := s.store.Get(ctx, photo.ThumbnailKey)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return obj, nil
}

func (s *PhotoService) requireOwn(userID, photoID uint) (*models.Photo, error) {
	photo, err := s.photoRepo.GetPhotoByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("PHOTO.NOT_FOUND")
		}
		return nil, apperrors.Internal(err)
	}
	if photo.UserID != userID {
		return nil, apperrors.Forbidden("PHOTO.NOT_OWNER")
	}
	return photo, nil
}
