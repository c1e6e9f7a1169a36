package services

import (
	"errors"
	"testing"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "hana")

	bio := "street photographer"
	updated, err := env.users.UpdateProfile(user.ID, &models.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "street photographer", updated.Bio)
	assert.Equal(t, "hana", updated.Username)
}

func TestUpdateProfile_UsernameTaken(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "hana")
	seedUser(t, env.db, "minji")

	taken := "minji"
	_, err := env.users.UpdateProfile(user.ID, &models.UpdateProfileRequest{Username: &taken})
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestUpdateNotificationPrefs_PartialPatch(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "hana")

	updated, err := env.users.UpdateNotificationPrefs(user.ID, &models.UpdateNotificationPrefsRequest{
		NotifyLikes: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.NotifyLikes)

	// Fields not present in the patch keep their previous values.
	assert.True(t, updated.NotifyComments)
	assert.True(t, updated.NotifyFollows)
	assert.True(t, updated.NotifySeries)
}

func TestDeleteUser_Soft(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "hana")

	require.NoError(t, env.users.Delete(user.ID))

	_, err := env.users.Get(user.ID)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// The row survives as a soft-deleted record.
	var count int64
	require.NoError(t, env.db.Unscoped().Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
