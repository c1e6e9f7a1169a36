package services

import (
	"errors"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"gorm.io/gorm"
)

// resolvePhoto loads a live photo and enforces the visibility invariant:
// a private photo is visible only to its owner. viewerID 0 means anonymous.
func resolvePhoto(repo repositories.PhotoRepository, photoID, viewerID uint) (*models.Photo, error) {
	photo, err := repo.GetPhotoByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("PHOTO.NOT_FOUND")
		}
		return nil, apperrors.Internal(err)
	}
	if !photo.IsPublic && photo.UserID != viewerID {
		return nil, apperrors.Forbidden("PHOTO.IS_PRIVATE")
	}
	return photo, nil
}

// resolveSeries is the series counterpart of resolvePhoto.
func resolveSeries(repo repositories.SeriesRepository, seriesID, viewerID uint) (*models.Series, error) {
	series, err := repo.GetSeriesByID(seriesID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("SERIES.NOT_FOUND")
		}
		return nil, apperrors.Internal(err)
	}
	if !series.IsPublic && series.UserID != viewerID {
		return nil, apperrors.Forbidden("SERIES.IS_PRIVATE")
	}
	return series, nil
}
