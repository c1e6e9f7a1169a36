package repositories

import (
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"gorm.io/gorm"
)

// PhotoSort selects the listing order for public photo feeds.
type PhotoSort string

const (
	PhotoSortLatest  PhotoSort = "latest"
	PhotoSortPopular PhotoSort = "popular"
)

// PhotoRepository defines the interface for photo data operations
type PhotoRepository interface {
	CreatePhoto(photo *models.Photo) error
	GetPhotoByID(id uint) (*models.Photo, error)
	GetPublicPhotos(sort PhotoSort, page, limit int) ([]models.Photo, error)
	GetPhotosByUserID(userID uint, includePrivate bool) ([]models.Photo, error)
	UpdatePhoto(photo *models.Photo) error
	DeletePhoto(id uint) error
}

// PostgresPhotoRepository implements PhotoRepository for PostgreSQL
type PostgresPhotoRepository struct {
	db *gorm.DB
}

// NewPostgresPhotoRepository creates a new PostgresPhotoRepository
func NewPostgresPhotoRepository(db *gorm.DB) *PostgresPhotoRepository {
	return &PostgresPhotoRepository{db: db}
}

func (r *PostgresPhotoRepository) CreatePhoto(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PostgresPhotoRepository) GetPhotoByID(id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetPublicPhotos lists live public photos. Popular sort orders by the number
// of photo likes, most liked first; ties fall back to recency.
func (r *PostgresPhotoRepository) GetPublicPhotos(sort PhotoSort, page, limit int) ([]models.Photo, error) {
	var photos []models.Photo
	offset := (page - 1) * limit

	q := r.db.Model(&models.Photo{}).Where("photos.is_public = ?", true)
	if sort == PhotoSortPopular {
		q = q.Joins("LEFT JOIN likes ON likes.target_type = ? AND likes.target_id = photos.id", models.LikeTargetPhoto).
			Group("photos.id").
			Order("COUNT(likes.id) DESC").
			Order("photos.created_at DESC")
	} else {
		q = q.Order("photos.created_at DESC")
	}

	err := q.Offset(offset).Limit(limit).Find(&photos).Error
	return photos, err
}

func (r *PostgresPhotoRepository) GetPhotosByUserID(userID uint, includePrivate bool) ([]models.Photo, error) {
	var photos []models.Photo
	q := r.db.Where("user_id = ?", userID)
	if !includePrivate {
		q = q.Where("is_public = ?", true)
	}
	err := q.Order("created_at DESC").Find(&photos).Error
	return photos, err
}

func (r *PostgresPhotoRepository) UpdatePhoto(photo *models.Photo) error {
	return r.db.Save(photo).Error
}

func (r *PostgresPhotoRepository) DeletePhoto(id uint) error {
	return r.db.Delete(&models.Photo{}, id).Error
}
