package repositories

import (
	"github.com/hanseol-dev/lumina-backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	FindDuplicate(n *models.Notification) (bool, error)
	GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkAsRead(recipientID uint, ids []uint) error
	MarkAllAsRead(recipientID uint) error
}

// PostgresNotificationRepository implements NotificationRepository for PostgreSQL
type PostgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository
func NewPostgresNotificationRepository(db *gorm.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// FindDuplicate reports whether a notification with the identical
// (recipient, actor, event, target reference) tuple already exists. NULL
// target columns must match NULL, so the query compares pointers directly.
func (r *PostgresNotificationRepository) FindDuplicate(n *models.Notification) (bool, error) {
	var count int64
	q := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND actor_id = ? AND event_type = ?", n.RecipientID, n.ActorID, n.EventType)

	q = whereNullable(q, "photo_id", n.PhotoID)
	q = whereNullable(q, "series_id", n.SeriesID)
	q = whereNullable(q, "comment_id", n.CommentID)
	q = whereNullable(q, "follow_id", n.FollowID)

	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func whereNullable(q *gorm.DB, column string, value *uint) *gorm.DB {
	if value == nil {
		return q.Where(column + " IS NULL")
	}
	return q.Where(column+" = ?", *value)
}

func (r *PostgresNotificationRepository) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	if err := r.db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *PostgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

// MarkAsRead is scoped to the recipient so users cannot mark notifications
// that belong to someone else.
func (r *PostgresNotificationRepository) MarkAsRead(recipientID uint, ids []uint) error {
	return r.db.Model(&models.Notification{}).
		Where("id IN ? AND recipient_id = ?", ids, recipientID).
		Update("is_read", true).Error
}

func (r *PostgresNotificationRepository) MarkAllAsRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}
