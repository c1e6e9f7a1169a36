package services

import (
	"errors"
	"testing"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment_NotifiesOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	commenter := seedUser(t, env.db, "commenter")
	photo := seedPhoto(t, env.db, owner.ID, true)

	comment, err := env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photo.ID}, nil, "great shot")
	require.NoError(t, err)
	require.NotNil(t, comment.PhotoID)
	assert.Equal(t, photo.ID, *comment.PhotoID)
	assert.Nil(t, comment.ParentID)

	var notification models.Notification
	require.NoError(t, env.db.First(&notification).Error)
	assert.Equal(t, owner.ID, notification.RecipientID)
	assert.Equal(t, commenter.ID, notification.ActorID)
	assert.Equal(t, models.EventNewComment, notification.EventType)
	require.NotNil(t, notification.CommentID)
	assert.Equal(t, comment.ID, *notification.CommentID)
}

func TestCreateComment_ReplyFanOut(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	commenter := seedUser(t, env.db, "commenter")
	replier := seedUser(t, env.db, "replier")
	photo := seedPhoto(t, env.db, owner.ID, true)

	parent, err := env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photo.ID}, nil, "root")
	require.NoError(t, err)

	_, err = env.comments.Create(replier.ID, CommentTarget{PhotoID: &photo.ID}, &parent.ID, "reply")
	require.NoError(t, err)

	// Owner gets NEW_COMMENT for both comments, parent author gets NEW_REPLY.
	var commentEvents, replyEvents int64
	require.NoError(t, env.db.Model(&models.Notification{}).
		Where("event_type = ? AND recipient_id = ?", models.EventNewComment, owner.ID).
		Count(&commentEvents).Error)
	require.NoError(t, env.db.Model(&models.Notification{}).
		Where("event_type = ? AND recipient_id = ?", models.EventNewReply, commenter.ID).
		Count(&replyEvents).Error)
	assert.Equal(t, int64(2), commentEvents)
	assert.Equal(t, int64(1), replyEvents)
}

func TestCreateComment_ReplyToOwnComment(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	commenter := seedUser(t, env.db, "commenter")
	photo := seedPhoto(t, env.db, owner.ID, true)

	parent, err := env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photo.ID}, nil, "root")
	require.NoError(t, err)

	// Replying to yourself never produces NEW_REPLY.
	_, err = env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photo.ID}, &parent.ID, "follow-up")
	require.NoError(t, err)

	var replyEvents int64
	require.NoError(t, env.db.Model(&models.Notification{}).
		Where("event_type = ?", models.EventNewReply).
		Count(&replyEvents).Error)
	assert.Equal(t, int64(0), replyEvents)
}

func TestCreateComment_ReplyToReplyFlattens(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	commenter := seedUser(t, env.db, "commenter")
	replier := seedUser(t, env.db, "replier")
	photo := seedPhoto(t, env.db, owner.ID, true)

	root, err := env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photo.ID}, nil, "root")
	require.NoError(t, err)
	reply, err := env.comments.Create(replier.ID, CommentTarget{PhotoID: &photo.ID}, &root.ID, "reply")
	require.NoError(t, err)

	// Replying to the reply lands under the thread root.
	deep, err := env.comments.Create(owner.ID, CommentTarget{PhotoID: &photo.ID}, &reply.ID, "deep")
	require.NoError(t, err)
	require.NotNil(t, deep.ParentID)
	assert.Equal(t, root.ID, *deep.ParentID)

	tree, err := env.comments.List(0, CommentTarget{PhotoID: &photo.ID})
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Replies, 2)

	// The replied-to author, not the root author, gets the NEW_REPLY.
	var notification models.Notification
	require.NoError(t, env.db.Where("event_type = ? AND comment_id = ?", models.EventNewReply, deep.ID).First(&notification).Error)
	assert.Equal(t, replier.ID, notification.RecipientID)
}

func TestCreateComment_ParentChecks(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	commenter := seedUser(t, env.db, "commenter")
	photoA := seedPhoto(t, env.db, owner.ID, true)
	photoB := seedPhoto(t, env.db, owner.ID, true)

	parent, err := env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photoA.ID}, nil, "on A")
	require.NoError(t, err)

	t.Run("parent on a different target", func(t *testing.T) {
		_, err := env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photoB.ID}, &parent.ID, "mismatch")
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
		assert.Equal(t, "COMMENT.PARENT_TARGET_MISMATCH", appErr.MessageKey)
	})

	t.Run("parent does not exist", func(t *testing.T) {
		_, err := env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photoA.ID}, uintPtr(999), "dangling")
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "COMMENT.PARENT_NOT_FOUND", appErr.MessageKey)
	})

	// The failed creates left no rows behind.
	assert.Equal(t, int64(1), countRows(t, env.db, &models.Comment{}))
}

func TestListComments_TreeAssembly(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	commenter := seedUser(t, env.db, "commenter")
	photo := seedPhoto(t, env.db, owner.ID, true)

	first, err := env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photo.ID}, nil, "first")
	require.NoError(t, err)
	second, err := env.comments.Create(owner.ID, CommentTarget{PhotoID: &photo.ID}, nil, "second")
	require.NoError(t, err)
	replyA, err := env.comments.Create(owner.ID, CommentTarget{PhotoID: &photo.ID}, &first.ID, "reply a")
	require.NoError(t, err)
	replyB, err := env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photo.ID}, &first.ID, "reply b")
	require.NoError(t, err)

	tree, err := env.comments.List(0, CommentTarget{PhotoID: &photo.ID})
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, first.ID, tree[0].ID)
	assert.Equal(t, second.ID, tree[1].ID)
	require.Len(t, tree[0].Replies, 2)
	assert.Equal(t, replyA.ID, tree[0].Replies[0].ID)
	assert.Equal(t, replyB.ID, tree[0].Replies[1].ID)
	assert.Empty(t, tree[1].Replies)
}

func TestListComments_OrphanedRepliesDropped(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	commenter := seedUser(t, env.db, "commenter")
	photo := seedPhoto(t, env.db, owner.ID, true)

	parent, err := env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photo.ID}, nil, "root")
	require.NoError(t, err)
	_, err = env.comments.Create(owner.ID, CommentTarget{PhotoID: &photo.ID}, &parent.ID, "reply")
	require.NoError(t, err)
	keeper, err := env.comments.Create(owner.ID, CommentTarget{PhotoID: &photo.ID}, nil, "survivor")
	require.NoError(t, err)

	require.NoError(t, env.comments.Delete(commenter.ID, parent.ID))

	tree, err := env.comments.List(0, CommentTarget{PhotoID: &photo.ID})
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, keeper.ID, tree[0].ID)
}

func TestDeleteComment_AuthorOnly(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	commenter := seedUser(t, env.db, "commenter")
	photo := seedPhoto(t, env.db, owner.ID, true)

	comment, err := env.comments.Create(commenter.ID, CommentTarget{PhotoID: &photo.ID}, nil, "mine")
	require.NoError(t, err)

	// Even the photo owner cannot delete someone else's comment.
	err = env.comments.Delete(owner.ID, comment.ID)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	require.NoError(t, env.comments.Delete(commenter.ID, comment.ID))

	tree, err := env.comments.List(0, CommentTarget{PhotoID: &photo.ID})
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestCreateComment_PrivatePhoto(t *testing.T) {
	env := newTestEnv(t)
	owner := seedUser(t, env.db, "owner")
	stranger := seedUser(t, env.db, "stranger")
	photo := seedPhoto(t, env.db, owner.ID, false)

	_, err := env.comments.Create(stranger.ID, CommentTarget{PhotoID: &photo.ID}, nil, "sneaky")
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}
