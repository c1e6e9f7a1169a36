package services

import (
	"errors"
	"log/slog"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"gorm.io/gorm"
)

// FollowService flips directed follow edges between users.
type FollowService struct {
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
	notifier   *NotificationService
}

func NewFollowService(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, notifier *NotificationService) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

// Toggle flips the follower -> following edge and reports the resulting
// state. Self-follow is always rejected. Unfollow has no notification side
// effect; a fresh follow notifies the followed user.
func (s *FollowService) Toggle(followerID, followingID uint) (bool, error) {
	if followerID == followingID {
		return false, apperrors.Validation("FOLLOW.CANNOT_FOLLOW_YOURSELF")
	}

	if _, err := s.userRepo.GetUserByID(followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.NotFound("USER.NOT_FOUND")
		}
		return false, apperrors.Internal(err)
	}

	existing, err := s.followRepo.GetFollow(followerID, followingID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, apperrors.Internal(err)
	}

	if existing != nil {
		if err := s.followRepo.DeleteFollow(existing.ID); err != nil {
			return false, apperrors.Internal(err)
		}
		return false, nil
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.followRepo.CreateFollow(follow); err != nil {
		// Concurrent toggle created the edge first; resolve to its state.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, apperrors.Internal(err)
	}

	if err := s.notifier.Notify(NotificationData{
		RecipientID: followingID,
		ActorID:     followerID,
		EventType:   models.EventNewFollow,
		FollowID:    &follow.ID,
	}); err != nil {
		slog.Error("follow notification fan-out failed", "error", err, "actor_id", followerID)
	}

	return true, nil
}

// Followers lists the users following userID.
func (s *FollowService) Followers(userID uint) ([]models.User, error) {
	users, err := s.followRepo.GetFollowers(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

// Following lists the users userID follows.
func (s *FollowService) Following(userID uint) ([]models.User, error) {
	users, err := s.followRepo.GetFollowing(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

// IsFollowing reports whether the directed edge exists.
func (s *FollowService) IsFollowing(followerID, followingID uint) (bool, error) {
	count, err := s.followRepo.CountBetween(followerID, followingID)
	if err != nil {
		return false, apperrors.Internal(err)
	}
	return count > 0, nil
}
