package services

import (
	"errors"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"gorm.io/gorm"
)

// Titles of the lazily created save/bookmark collection.
const (
	defaultCollectionTitle       = "저장한 사진"
	defaultCollectionDescription = "사용자가 저장한 사진들을 모아둔 기본 컬렉션입니다."
)

// CollectionService manages photo collections, including each user's lazily
// created default save list.
type CollectionService struct {
	collectionRepo repositories.CollectionRepository
	photoRepo      repositories.PhotoRepository
}

func NewCollectionService(collectionRepo repositories.CollectionRepository, photoRepo repositories.PhotoRepository) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		photoRepo:      photoRepo,
	}
}

// EnsureDefaultCollection returns the user's default collection, creating it
// on first use. Idempotent: repeated calls return the same collection.
func (s *CollectionService) EnsureDefaultCollection(userID uint) (*models.Collection, error) {
	collection, err := s.collectionRepo.GetDefaultCollection(userID)
	if err == nil {
		return collection, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err)
	}

	collection = &models.Collection{
		UserID:      userID,
		Title:       defaultCollectionTitle,
		Description: defaultCollectionDescription,
		IsDefault:   true,
	}
	if err := s.collectionRepo.CreateCollection(collection); err != nil {
		return nil, apperrors.Internal(err)
	}
	return collection, nil
}

// ToggleSaved adds the photo to the caller's default collection, or removes
// it when already present, reporting the resulting state.
func (s *CollectionService) ToggleSaved(userID, photoID uint) (bool, error) {
	if _, err := resolvePhoto(s.photoRepo, photoID, userID); err != nil {
		return false, err
	}

	collection, err := s.EnsureDefaultCollection(userID)
	if err != nil {
		return false, err
	}

	existing, err := s.collectionRepo.GetCollectionPhoto(collection.ID, photoID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, apperrors.Internal(err)
	}

	if existing != nil {
		if err := s.collectionRepo.RemovePhoto(existing.ID); err != nil {
			return false, apperrors.Internal(err)
		}
		return false, nil
	}

	if err := s.collectionRepo.AddPhoto(collection.ID, photoID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, apperrors.Internal(err)
	}
	return true, nil
}

// ListSaved returns the live photos in the caller's default collection,
// newest saved first.
func (s *CollectionService) ListSaved(userID uint) ([]models.CollectionPhoto, error) {
	collection, err := s.EnsureDefaultCollection(userID)
	if err != nil {
		return nil, err
	}
	rows, err := s.collectionRepo.GetLivePhotos(collection.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return rows, nil
}

// Create adds a named (non-default) collection.
func (s *CollectionService) Create(userID uint, title, description string) (*models.Collection, error) {
	collection := &models.Collection{
		UserID:      userID,
		Title:       title,
		Description: description,
	}
	if err := s.collectionRepo.CreateCollection(collection); err != nil {
		return nil, apperrors.Internal(err)
	}
	return collection, nil
}

// ListByUser returns all of a user's collections.
func (s *CollectionService) ListByUser(userID uint) ([]models.Collection, error) {
	list, err := s.collectionRepo.GetCollectionsByUserID(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return list, nil
}

// Delete removes a named collection and its membership rows. The default
// collection cannot be deleted.
func (s *CollectionService) Delete(userID, collectionID uint) error {
	collection, err := s.collectionRepo.GetCollectionByID(collectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("COLLECTION.NOT_FOUND")
		}
		return apperrors.Internal(err)
	}
	if collection.UserID != userID {
		return apperrors.Forbidden("COLLECTION.NOT_OWNER")
	}
	if collection.IsDefault {
		return apperrors.Validation("COLLECTION.CANNOT_DELETE_DEFAULT")
	}
	if err := s.collectionRepo.DeleteCollectionWithPhotos(collectionID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
