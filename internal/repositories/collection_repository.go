package repositories

import (
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"gorm.io/gorm"
)

// CollectionRepository defines the interface for collection data operations
type CollectionRepository interface {
	CreateCollection(collection *models.Collection) error
	GetCollectionByID(id uint) (*models.Collection, error)
	GetDefaultCollection(userID uint) (*models.Collection, error)
	GetCollectionsByUserID(userID uint) ([]models.Collection, error)
	DeleteCollectionWithPhotos(id uint) error
	GetCollectionPhoto(collectionID, photoID uint) (*models.CollectionPhoto, error)
	AddPhoto(collectionID, photoID uint) error
	RemovePhoto(id uint) error
	GetLivePhotos(collectionID uint) ([]models.CollectionPhoto, error)
}

// PostgresCollectionRepository implements CollectionRepository for PostgreSQL
type PostgresCollectionRepository struct {
	db *gorm.DB
}

// NewPostgresCollectionRepository creates a new PostgresCollectionRepository
func NewPostgresCollectionRepository(db *gorm.DB) *PostgresCollectionRepository {
	return &PostgresCollectionRepository{db: db}
}

func (r *PostgresCollectionRepository) CreateCollection(collection *models.Collection) error {
	return r.db.Create(collection).Error
}

func (r *PostgresCollectionRepository) GetCollectionByID(id uint) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.First(&collection, id).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *PostgresCollectionRepository) GetDefaultCollection(userID uint) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.Where("user_id = ? AND is_default = ?", userID, true).First(&collection).Error
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *PostgresCollectionRepository) GetCollectionsByUserID(userID uint) ([]models.Collection, error) {
	var list []models.Collection
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

// DeleteCollectionWithPhotos removes the membership rows and the collection
// itself in one transaction.
func (r *PostgresCollectionRepository) DeleteCollectionWithPhotos(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&models.CollectionPhoto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Collection{}, id).Error
	})
}

func (r *PostgresCollectionRepository) GetCollectionPhoto(collectionID, photoID uint) (*models.CollectionPhoto, error) {
	var row models.CollectionPhoto
	err := r.db.Where("collection_id = ? AND photo_id = ?", collectionID, photoID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *PostgresCollectionRepository) AddPhoto(collectionID, photoID uint) error {
	return r.db.Create(&models.CollectionPhoto{
		CollectionID: collectionID,
		PhotoID:      photoID,
	}).Error
}

func (r *PostgresCollectionRepository) RemovePhoto(id uint) error {
	return r.db.Delete(&models.CollectionPhoto{}, id).Error
}

// GetLivePhotos lists membership rows whose photo still exists, newest saved
// first. The join filters soft-deleted photos out.
func (r *PostgresCollectionRepository) GetLivePhotos(collectionID uint) ([]models.CollectionPhoto, error) {
	var rows []models.CollectionPhoto
	err := r.db.
		Joins("JOIN photos ON photos.id = collection_photos.photo_id AND photos.deleted_at IS NULL").
		Where("collection_photos.collection_id = ?", collectionID).
		Preload("Photo").
		Order("collection_photos.created_at DESC").
		Find(&rows).Error
	return rows, err
}
