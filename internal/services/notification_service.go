package services

import (
	"errors"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"gorm.io/gorm"
)

// NotificationData describes one interaction to fan out. Exactly the target
// reference fields of the producing interaction are set; the rest stay nil.
type NotificationData struct {
	RecipientID uint
	ActorID     uint
	EventType   models.NotificationEvent
	PhotoID     *uint
	SeriesID    *uint
	CommentID   *uint
	FollowID    *uint
}

// NotificationService decides whether an interaction produces a visible
// notification and records it at most once.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, userRepo repositories.UserRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Notify runs the fan-out gauntlet: self-suppression, recipient preference
// gating, then exact-tuple dedup. Every gate is a silent skip, not an error.
func (s *NotificationService) Notify(data NotificationData) error {
	if data.RecipientID == data.ActorID {
		return nil
	}

	recipient, err := s.userRepo.GetUserByID(data.RecipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.Internal(err)
	}

	switch data.EventType {
	case models.EventNewLike:
		if !recipient.NotifyLikes {
			return nil
		}
	case models.EventNewComment, models.EventNewReply:
		if !recipient.NotifyComments {
			return nil
		}
	case models.EventNewFollow:
		if !recipient.NotifyFollows {
			return nil
		}
	case models.EventNewSeries:
		if !recipient.NotifySeries {
			return nil
		}
	}

	notification := &models.Notification{
		RecipientID: data.RecipientID,
		ActorID:     data.ActorID,
		EventType:   data.EventType,
		PhotoID:     data.PhotoID,
		SeriesID:    data.SeriesID,
		CommentID:   data.CommentID,
		FollowID:    data.FollowID,
	}

	exists, err := s.notificationRepo.FindDuplicate(notification)
	if err != nil {
		return apperrors.Internal(err)
	}
	if exists {
		return nil
	}

	if err := s.notificationRepo.CreateNotification(notification); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// List returns the recipient's notifications, newest first, with the total.
func (s *NotificationService) List(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	notifications, total, err := s.notificationRepo.GetByRecipientID(recipientID, page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	return notifications, total, nil
}

func (s *NotificationService) UnreadCount(recipientID uint) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(recipientID)
	if err != nil {
		return 0, apperrors.Internal(err)
	}
	return count, nil
}

// MarkRead marks the given notifications read, scoped to the recipient.
func (s *NotificationService) MarkRead(recipientID uint, ids []uint) error {
	if len(ids) == 0 {
		return apperrors.Validation("NOTIFICATION.IDS_REQUIRED")
	}
	if err := s.notificationRepo.MarkAsRead(recipientID, ids); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(recipientID uint) error {
	if err := s.notificationRepo.MarkAllAsRead(recipientID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
