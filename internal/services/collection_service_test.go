package services

import (
	"errors"
	"testing"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultCollection_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "user")

	first, err := env.collections.EnsureDefaultCollection(user.ID)
	require.NoError(t, err)
	assert.True(t, first.IsDefault)
	assert.Equal(t, defaultCollectionTitle, first.Title)

	second, err := env.collections.EnsureDefaultCollection(user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), countRows(t, env.db, &models.Collection{}))
}

func TestToggleSaved_Cycle(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	saver := seedUser(t, env.db, "saver")
	photo := seedPhoto(t, env.db, owner.ID, true)

	saved, err := env.collections.ToggleSaved(saver.ID, photo.ID)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, int64(1), countRows(t, env.db, &models.CollectionPhoto{}))

	saved, err = env.collections.ToggleSaved(saver.ID, photo.ID)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, int64(0), countRows(t, env.db, &models.CollectionPhoto{}))

	// The default collection itself survives the unsave.
	assert.Equal(t, int64(1), countRows(t, env.db, &models.Collection{}))
}

func TestToggleSaved_PrivatePhoto(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	stranger := seedUser(t, env.db, "stranger")
	photo := seedPhoto(t, env.db, owner.ID, false)

	_, err := env.collections.ToggleSaved(stranger.ID, photo.ID)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// Owners can save their own private photos.
	saved, err := env.collections.ToggleSaved(owner.ID, photo.ID)
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestListSaved_ExcludesDeletedPhotos(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	saver := seedUser(t, env.db, "saver")
	kept := seedPhoto(t, env.db, owner.ID, true)
	doomed := seedPhoto(t, env.db, owner.ID, true)

	_, err := env.collections.ToggleSaved(saver.ID, kept.ID)
	require.NoError(t, err)
	_, err = env.collections.ToggleSaved(saver.ID, doomed.ID)
	require.NoError(t, err)

	require.NoError(t, env.db.Delete(&models.Photo{}, doomed.ID).Error)

	saved, err := env.collections.ListSaved(saver.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, kept.ID, saved[0].PhotoID)
	require.NotNil(t, saved[0].Photo)
	assert.Equal(t, kept.ID, saved[0].Photo.ID)
}

func TestCollectionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "user")

	collection, err := env.collections.Create(user.ID, "Street", "night walks")
	require.NoError(t, err)
	assert.False(t, collection.IsDefault)

	_, err = env.collections.EnsureDefaultCollection(user.ID)
	require.NoError(t, err)

	list, err := env.collections.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, env.collections.Delete(user.ID, collection.ID))
	list, err = env.collections.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsDefault)
}

func TestDeleteCollection_DefaultProtected(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "user")

	def, err := env.collections.EnsureDefaultCollection(user.ID)
	require.NoError(t, err)

	err = env.collections.Delete(user.ID, def.ID)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Equal(t, "COLLECTION.CANNOT_DELETE_DEFAULT", appErr.MessageKey)
}

func TestDeleteCollection_OwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "user")
	other := seedUser(t, env.db, "other")

	collection, err := env.collections.Create(user.ID, "Street", "")
	require.NoError(t, err)

	err = env.collections.Delete(other.ID, collection.ID)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}
