package services

import (
	"errors"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"gorm.io/gorm"
)

// SeriesDetail is a series with its member photos in display order.
type SeriesDetail struct {
	models.Series
	Photos []models.SeriesPhoto `json:"photos"`
}

// SeriesService manages ordered photo series.
type SeriesService struct {
	seriesRepo repositories.SeriesRepository
	photoRepo  repositories.PhotoRepository
}

func NewSeriesService(seriesRepo repositories.SeriesRepository, photoRepo repositories.PhotoRepository) *SeriesService {
	return &SeriesService{
		seriesRepo: seriesRepo,
		photoRepo:  photoRepo,
	}
}

// Create adds a new series. A cover photo, when given, must be an existing
// photo owned by the caller.
func (s *SeriesService) Create(userID uint, req *models.CreateSeriesRequest) (*models.Series, error) {
	if req.CoverPhotoID != nil {
		if err := s.requireOwnPhoto(userID, *req.CoverPhotoID); err != nil {
			return nil, err
		}
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	series := &models.Series{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		CoverPhotoID: req.CoverPhotoID,
		IsPublic:     isPublic,
	}
	if err := s.seriesRepo.CreateSeries(series); err != nil {
		return nil, apperrors.Internal(err)
	}
	return series, nil
}

// Get returns the series with its photos ordered by position. Membership rows
// whose photo was soft-deleted are filtered out.
func (s *SeriesService) Get(seriesID, viewerID uint) (*SeriesDetail, error) {
	series, err := resolveSeries(s.seriesRepo, seriesID, viewerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.seriesRepo.GetSeriesPhotos(seriesID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	photos := make([]models.SeriesPhoto, 0, len(rows))
	for _, row := range rows {
		if row.Photo != nil {
			photos = append(photos, row)
		}
	}
	return &SeriesDetail{Series: *series, Photos: photos}, nil
}

// ListByUser returns a user's series; private series only for the owner.
func (s *SeriesService) ListByUser(userID, viewerID uint) ([]models.Series, error) {
	list, err := s.seriesRepo.GetSeriesByUserID(userID, userID == viewerID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return list, nil
}

// Update patches title, description, cover photo and visibility; owner only.
func (s *SeriesService) Update(userID, seriesID uint, req *models.UpdateSeriesRequest) (*models.Series, error) {
	series, err := s.requireOwnSeries(userID, seriesID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		series.Title = *req.Title
	}
	if req.Description != nil {
		series.Description = *req.Description
	}
	if req.CoverPhotoID != nil {
		if err := s.requireOwnPhoto(userID, *req.CoverPhotoID); err != nil {
			return nil, err
		}
		series.CoverPhotoID = req.CoverPhotoID
	}
	if req.IsPublic != nil {
		series.IsPublic = *req.IsPublic
	}
	if err := s.seriesRepo.UpdateSeries(series); err != nil {
		return nil, apperrors.Internal(err)
	}
	return series, nil
}

// Delete soft-deletes the series and removes its membership rows in one
// transaction; owner only.
func (s *SeriesService) Delete(userID, seriesID uint) error {
	if _, err := s.requireOwnSeries(userID, seriesID); err != nil {
		return err
	}
	if err := s.seriesRepo.DeleteSeriesWithPhotos(seriesID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// AddPhoto appends the caller's photo at the end of the series.
func (s *SeriesService) AddPhoto(userID, seriesID, photoID uint) error {
	if _, err := s.requireOwnSeries(userID, seriesID); err != nil {
		return err
	}
	if err := s.requireOwnPhoto(userID, photoID); err != nil {
		return err
	}

	position, err := s.seriesRepo.NextPosition(seriesID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if err := s.seriesRepo.AddPhoto(seriesID, photoID, position); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("SERIES.PHOTO_ALREADY_IN_SERIES")
		}
		return apperrors.Internal(err)
	}
	return nil
}

// RemovePhoto detaches a photo from the series.
func (s *SeriesService) RemovePhoto(userID, seriesID, photoID uint) error {
	if _, err := s.requireOwnSeries(userID, seriesID); err != nil {
		return err
	}
	affected, err := s.seriesRepo.RemovePhoto(seriesID, photoID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if affected == 0 {
		return apperrors.NotFound("SERIES.PHOTO_NOT_IN_SERIES")
	}
	return nil
}

// Reorder rewrites the display positions to match photoIDs. Every id must be
// a member of the series; the whole reorder commits atomically or not at all.
func (s *SeriesService) Reorder(userID, seriesID uint, photoIDs []uint) error {
	if _, err := s.requireOwnSeries(userID, seriesID); err != nil {
		return err
	}
	if err := s.seriesRepo.ReorderPhotos(seriesID, photoIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validation("SERIES.PHOTO_NOT_IN_SERIES")
		}
		return apperrors.Internal(err)
	}
	return nil
}

func (s *SeriesService) requireOwnSeries(userID, seriesID uint) (*models.Series, error) {
	series, err := s.seriesRepo.GetSeriesByID(seriesID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("SERIES.NOT_FOUND")
		}
		return nil, apperrors.Internal(err)
	}
	if series.UserID != userID {
		return nil, apperrors.Forbidden("SERIES.NOT_OWNER")
	}
	return series, nil
}

func (s *SeriesService) requireOwnPhoto(userID, photoID uint) error {
	photo, err := s.photoRepo.GetPhotoByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("PHOTO.NOT_FOUND")
		}
		return apperrors.Internal(err)
	}
	if photo.UserID != userID {
		return apperrors.Forbidden("PHOTO.NOT_OWNER")
	}
	return nil
}
