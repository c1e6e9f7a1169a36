package repositories

import (
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"gorm.io/gorm"
)

// SeriesRepository defines the interface for series data operations
type SeriesRepository interface {
	CreateSeries(series *models.Series) error
	GetSeriesByID(id uint) (*models.Series, error)
	GetSeriesByUserID(userID uint, includePrivate bool) ([]models.Series, error)
	UpdateSeries(series *models.Series) error
	DeleteSeriesWithPhotos(id uint) error
	AddPhoto(seriesID, photoID uint, position int) error
	RemovePhoto(seriesID, photoID uint) (int64, error)
	GetSeriesPhotos(seriesID uint) ([]models.SeriesPhoto, error)
	NextPosition(seriesID uint) (int, error)
	ReorderPhotos(seriesID uint, photoIDs []uint) error
}

// PostgresSeriesRepository implements SeriesRepository for PostgreSQL
type PostgresSeriesRepository struct {
	db *gorm.DB
}

// NewPostgresSeriesRepository creates a new PostgresSeriesRepository
func NewPostgresSeriesRepository(db *gorm.DB) *PostgresSeriesRepository {
	return &PostgresSeriesRepository{db: db}
}

func (r *PostgresSeriesRepository) CreateSeries(series *models.Series) error {
	return r.db.Create(series).Error
}

func (r *PostgresSeriesRepository) GetSeriesByID(id uint) (*models.Series, error) {
	var series models.Series
	if err := r.db.First(&series, id).Error; err != nil {
		return nil, err
	}
	return &series, nil
}

func (r *PostgresSeriesRepository) GetSeriesByUserID(userID uint, includePrivate bool) ([]models.Series, error) {
	var list []models.Series
	q := r.db.Where("user_id = ?", userID)
	if !includePrivate {
		q = q.Where("is_public = ?", true)
	}
	err := q.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *PostgresSeriesRepository) UpdateSeries(series *models.Series) error {
	return r.db.Save(series).Error
}

// DeleteSeriesWithPhotos removes the membership rows and soft-deletes the
// series in one transaction.
func (r *PostgresSeriesRepository) DeleteSeriesWithPhotos(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("series_id = ?", id).Delete(&models.SeriesPhoto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Series{}, id).Error
	})
}

func (r *PostgresSeriesRepository) AddPhoto(seriesID, photoID uint, position int) error {
	return r.db.Create(&models.SeriesPhoto{
		SeriesID: seriesID,
		PhotoID:  photoID,
		Position: position,
	}).Error
}

func (r *PostgresSeriesRepository) RemovePhoto(seriesID, photoID uint) (int64, error) {
	res := r.db.Where("series_id = ? AND photo_id = ?", seriesID, photoID).
		Delete(&models.SeriesPhoto{})
	return res.RowsAffected, res.Error
}

func (r *PostgresSeriesRepository) GetSeriesPhotos(seriesID uint) ([]models.SeriesPhoto, error) {
	var rows []models.SeriesPhoto
	err := r.db.Where("series_id = ?", seriesID).
		Preload("Photo").
		Order("position ASC").
		Find(&rows).Error
	return rows, err
}

func (r *PostgresSeriesRepository) NextPosition(seriesID uint) (int, error) {
	var max *int
	err := r.db.Model(&models.SeriesPhoto{}).
		Where("series_id = ?", seriesID).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

// ReorderPhotos rewrites every position in one transaction so the ordering
// stays dense: either the whole new order commits or none of it does.
func (r *PostgresSeriesRepository) ReorderPhotos(seriesID uint, photoIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, photoID := range photoIDs {
			res := tx.Model(&models.SeriesPhoto{}).
				Where("series_id = ? AND photo_id = ?", seriesID, photoID).
				Update("position", i)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
