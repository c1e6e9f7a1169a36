package services

import (
	"errors"
	"log/slog"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"gorm.io/gorm"
)

// LikeTarget is the sum type a like applies to: exactly one entity kind.
// The HTTP boundary guarantees exactly one of the request fields was set
// before this is built.
type LikeTarget struct {
	Type models.LikeTargetType
	ID   uint
}

// LikeTargetFromRequest converts the wire-level tagged union into a LikeTarget.
// Returns a validation error unless exactly one field is set.
func LikeTargetFromRequest(req *models.ToggleLikeRequest) (LikeTarget, error) {
	set := 0
	var target LikeTarget
	if req.PhotoID != nil {
		set++
		target = LikeTarget{Type: models.LikeTargetPhoto, ID: *req.PhotoID}
	}
	if req.SeriesID != nil {
		set++
		target = LikeTarget{Type: models.LikeTargetSeries, ID: *req.SeriesID}
	}
	if req.CommentID != nil {
		set++
		target = LikeTarget{Type: models.LikeTargetComment, ID: *req.CommentID}
	}
	if set != 1 {
		return LikeTarget{}, apperrors.Validation("LIKE.TARGET_REQUIRED")
	}
	return target, nil
}

// LikeService flips likes on photos, series and comments.
type LikeService struct {
	likeRepo    repositories.LikeRepository
	photoRepo   repositories.PhotoRepository
	seriesRepo  repositories.SeriesRepository
	commentRepo repositories.CommentRepository
	notifier    *NotificationService
}

func NewLikeService(
	likeRepo repositories.LikeRepository,
	photoRepo repositories.PhotoRepository,
	seriesRepo repositories.SeriesRepository,
	commentRepo repositories.CommentRepository,
	notifier *NotificationService,
) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		photoRepo:   photoRepo,
		seriesRepo:  seriesRepo,
		commentRepo: commentRepo,
		notifier:    notifier,
	}
}

// Toggle flips the caller's like on the target and reports the resulting
// state. Unlike has no notification side effect; a fresh like notifies the
// target's owner. A unique-constraint race on the insert means another
// request created the pair concurrently: the toggle resolves to the existing
// liked state instead of erroring, and the concurrent creator owns the
// notification.
func (s *LikeService) Toggle(userID uint, target LikeTarget) (bool, error) {
	ownerID, notifData, err := s.resolveTarget(userID, target)
	if err != nil {
		return false, err
	}

	existing, err := s.likeRepo.GetLike(userID, target.Type, target.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, apperrors.Internal(err)
	}

	if existing != nil {
		if err := s.likeRepo.DeleteLike(existing.ID); err != nil {
			return false, apperrors.Internal(err)
		}
		return false, nil
	}

	like := &models.Like{
		UserID:     userID,
		TargetType: target.Type,
		TargetID:   target.ID,
	}
	if err := s.likeRepo.CreateLike(like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if _, rerr := s.likeRepo.GetLike(userID, target.Type, target.ID); rerr == nil {
				return true, nil
			}
			return false, apperrors.Internal(err)
		}
		return false, apperrors.Internal(err)
	}

	notifData.RecipientID = ownerID
	notifData.ActorID = userID
	notifData.EventType = models.EventNewLike
	if err := s.notifier.Notify(notifData); err != nil {
		slog.Error("like notification fan-out failed", "error", err, "actor_id", userID)
	}

	return true, nil
}

// Status reports the like count for a target and whether the viewer has
// liked it. viewerID 0 (anonymous) always reads liked=false.
func (s *LikeService) Status(viewerID uint, target LikeTarget) (int64, bool, error) {
	if _, _, err := s.resolveTarget(viewerID, target); err != nil {
		return 0, false, err
	}

	count, err := s.likeRepo.CountByTarget(target.Type, target.ID)
	if err != nil {
		return 0, false, apperrors.Internal(err)
	}

	liked := false
	if viewerID != 0 {
		if _, err := s.likeRepo.GetLike(viewerID, target.Type, target.ID); err == nil {
			liked = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, apperrors.Internal(err)
		}
	}
	return count, liked, nil
}

// resolveTarget checks that the target exists, is live, and is visible to the
// liker, and returns the owner to notify plus the notification target
// reference. A comment target inherits the visibility of the photo or series
// it was written on; its owner is the comment author.
func (s *LikeService) resolveTarget(userID uint, target LikeTarget) (uint, NotificationData, error) {
	switch target.Type {
	case models.LikeTargetPhoto:
		photo, err := resolvePhoto(s.photoRepo, target.ID, userID)
		if err != nil {
			return 0, NotificationData{}, err
		}
		return photo.UserID, NotificationData{PhotoID: &photo.ID}, nil

	case models.LikeTargetSeries:
		series, err := resolveSeries(s.seriesRepo, target.ID, userID)
		if err != nil {
			return 0, NotificationData{}, err
		}
		return series.UserID, NotificationData{SeriesID: &series.ID}, nil

	case models.LikeTargetComment:
		comment, err := s.commentRepo.GetCommentByID(target.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, NotificationData{}, apperrors.NotFound("COMMENT.NOT_FOUND")
			}
			return 0, NotificationData{}, apperrors.Internal(err)
		}
		if comment.PhotoID != nil {
			if _, err := resolvePhoto(s.photoRepo, *comment.PhotoID, userID); err != nil {
				return 0, NotificationData{}, err
			}
		} else if comment.SeriesID != nil {
			if _, err := resolveSeries(s.seriesRepo, *comment.SeriesID, userID); err != nil {
				return 0, NotificationData{}, err
			}
		}
		return comment.UserID, NotificationData{CommentID: &comment.ID}, nil
	}

	return 0, NotificationData{}, apperrors.Validation("LIKE.TARGET_REQUIRED")
}
