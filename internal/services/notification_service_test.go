package services

import (
	"errors"
	"testing"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_SelfSuppression(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "solo")

	err := env.notifications.Notify(NotificationData{
		RecipientID: user.ID,
		ActorID:     user.ID,
		EventType:   models.EventNewLike,
		PhotoID:     uintPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), countRows(t, env.db, &models.Notification{}))
}

func TestNotify_PreferenceGating(t *testing.T) {
	env := newTestEnv(t)
	actor := seedUser(t, env.db, "actor")
	recipient := seedUser(t, env.db, "recipient")
	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", recipient.ID).Update("notify_likes", false).Error)

	err := env.notifications.Notify(NotificationData{
		RecipientID: recipient.ID,
		ActorID:     actor.ID,
		EventType:   models.EventNewLike,
		PhotoID:     uintPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), countRows(t, env.db, &models.Notification{}))

	// The like switch does not gate the other categories.
	err = env.notifications.Notify(NotificationData{
		RecipientID: recipient.ID,
		ActorID:     actor.ID,
		EventType:   models.EventNewComment,
		PhotoID:     uintPtr(1),
		CommentID:   uintPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), countRows(t, env.db, &models.Notification{}))
}

func TestNotify_ReplyGatedByCommentSwitch(t *testing.T) {
	env := newTestEnv(t)
	actor := seedUser(t, env.db, "actor")
	recipient := seedUser(t, env.db, "recipient")
	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", recipient.ID).Update("notify_comments", false).Error)

	err := env.notifications.Notify(NotificationData{
		RecipientID: recipient.ID,
		ActorID:     actor.ID,
		EventType:   models.EventNewReply,
		PhotoID:     uintPtr(1),
		CommentID:   uintPtr(9),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), countRows(t, env.db, &models.Notification{}))
}

func TestNotify_ExactTupleDedup(t *testing.T) {
	env := newTestEnv(t)
	actor := seedUser(t, env.db, "actor")
	recipient := seedUser(t, env.db, "recipient")

	data := NotificationData{
		RecipientID: recipient.ID,
		ActorID:     actor.ID,
		EventType:   models.EventNewLike,
		PhotoID:     uintPtr(1),
	}
	require.NoError(t, env.notifications.Notify(data))
	require.NoError(t, env.notifications.Notify(data))
	assert.Equal(t, int64(1), countRows(t, env.db, &models.Notification{}))

	// A different target is a different tuple.
	data.PhotoID = uintPtr(2)
	require.NoError(t, env.notifications.Notify(data))
	assert.Equal(t, int64(2), countRows(t, env.db, &models.Notification{}))

	// Same ids on a different nullable column too: photo 1 vs series 1.
	require.NoError(t, env.notifications.Notify(NotificationData{
		RecipientID: recipient.ID,
		ActorID:     actor.ID,
		EventType:   models.EventNewLike,
		SeriesID:    uintPtr(1),
	}))
	assert.Equal(t, int64(3), countRows(t, env.db, &models.Notification{}))
}

func TestNotify_MissingRecipientIsSilent(t *testing.T) {
	env := newTestEnv(t)
	actor := seedUser(t, env.db, "actor")

	err := env.notifications.Notify(NotificationData{
		RecipientID: 999,
		ActorID:     actor.ID,
		EventType:   models.EventNewFollow,
		FollowID:    uintPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), countRows(t, env.db, &models.Notification{}))
}

func TestNotificationReadFlow(t *testing.T) {
	env := newTestEnv(t)
	actor := seedUser(t, env.db, "actor")
	recipient := seedUser(t, env.db, "recipient")
	other := seedUser(t, env.db, "other")

	for i := uint(1); i <= 3; i++ {
		require.NoError(t, env.notifications.Notify(NotificationData{
			RecipientID: recipient.ID,
			ActorID:     actor.ID,
			EventType:   models.EventNewLike,
			PhotoID:     uintPtr(i),
		}))
	}
	require.NoError(t, env.notifications.Notify(NotificationData{
		RecipientID: other.ID,
		ActorID:     actor.ID,
		EventType:   models.EventNewLike,
		PhotoID:     uintPtr(1),
	}))

	count, err := env.notifications.UnreadCount(recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	notifications, total, err := env.notifications.List(recipient.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, notifications, 2)

	// MarkRead is scoped to the recipient; another user's id in the list is
	// ignored.
	var foreign models.Notification
	require.NoError(t, env.db.Where("recipient_id = ?", other.ID).First(&foreign).Error)
	require.NoError(t, env.notifications.MarkRead(recipient.ID, []uint{notifications[0].ID, foreign.ID}))

	count, err = env.notifications.UnreadCount(recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = env.notifications.UnreadCount(other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, env.notifications.MarkAllRead(recipient.ID))
	count, err = env.notifications.UnreadCount(recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMarkRead_EmptyIDs(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env.db, "user")

	err := env.notifications.MarkRead(user.ID, nil)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}
