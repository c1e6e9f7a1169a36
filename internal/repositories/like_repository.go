package repositories

import (
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	GetLike(userID uint, targetType models.LikeTargetType, targetID uint) (*models.Like, error)
	DeleteLike(id uint) error
	CountByTarget(targetType models.LikeTargetType, targetID uint) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts the like row. A gorm.ErrDuplicatedKey return means a
// concurrent request already created the same (user, target) pair.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

func (r *PostgresLikeRepository) GetLike(userID uint, targetType models.LikeTargetType, targetID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *PostgresLikeRepository) DeleteLike(id uint) error {
	return r.db.Delete(&models.Like{}, id).Error
}

func (r *PostgresLikeRepository) CountByTarget(targetType models.LikeTargetType, targetID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}
