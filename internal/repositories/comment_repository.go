package repositories

import (
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByPhotoID(photoID uint) ([]models.Comment, error)
	GetCommentsBySeriesID(seriesID uint) ([]models.Comment, error)
	DeleteComment(id uint) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPhotoID returns live comments in creation-ascending order, the
// ordering the tree assembly depends on.
func (r *PostgresCommentRepository) GetCommentsByPhotoID(photoID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("photo_id = ?", photoID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

func (r *PostgresCommentRepository) GetCommentsBySeriesID(seriesID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("series_id = ?", seriesID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// DeleteComment soft-deletes; replies keep their parent_id and are dropped
// from the tree on retrieval.
func (r *PostgresCommentRepository) DeleteComment(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
