package services

import (
	"errors"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"gorm.io/gorm"
)

// UserService handles profiles, notification preferences and account removal.
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("USER.NOT_FOUND")
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// UpdateProfile patches the caller's own profile fields.
func (s *UserService) UpdateProfile(userID uint, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.userRepo.GetUserByUsername(*req.Username); err == nil {
			return nil, apperrors.Conflict("AUTH.USERNAME_ALREADY_TAKEN")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Internal(err)
		}
		user.Username = *req.Username
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}

	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// UpdateNotificationPrefs flips the per-category notification switches.
// Unset fields keep their current value.
func (s *UserService) UpdateNotificationPrefs(userID uint, req *models.UpdateNotificationPrefsRequest) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.NotifyLikes != nil {
		user.NotifyLikes = *req.NotifyLikes
	}
	if req.NotifyComments != nil {
		user.NotifyComments = *req.NotifyComments
	}
	if req.NotifyFollows != nil {
		user.NotifyFollows = *req.NotifyFollows
	}
	if req.NotifySeries != nil {
		user.NotifySeries = *req.NotifySeries
	}

	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// Delete soft-deletes the account. Historical comments and likes keep their
// references to the deleted user.
func (s *UserService) Delete(userID uint) error {
	if _, err := s.Get(userID); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(userID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
