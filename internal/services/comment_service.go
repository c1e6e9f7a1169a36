package services

import (
	"errors"
	"log/slog"

	"github.com/hanseol-dev/lumina-backend/internal/models"
	"github.com/hanseol-dev/lumina-backend/internal/repositories"
	"github.com/hanseol-dev/lumina-backend/pkg/apperrors"
	"gorm.io/gorm"
)

// CommentTarget is the mutually exclusive photo/series target of a comment.
type CommentTarget struct {
	PhotoID  *uint
	SeriesID *uint
}

func (t CommentTarget) valid() bool {
	return (t.PhotoID != nil) != (t.SeriesID != nil)
}

// CommentService creates comments with single-level reply support and
// rebuilds the display tree.
type CommentService struct {
	commentRepo repositories.CommentRepository
	photoRepo   repositories.PhotoRepository
	seriesRepo  repositories.SeriesRepository
	notifier    *NotificationService
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	photoRepo   repositories.PhotoRepository,
	seriesRepo  repositories.SeriesRepository,
	notifier    *NotificationService,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		photoRepo:   photoRepo,
		seriesRepo:  seriesRepo,
		notifier:    notifier,
	}
}

// Create writes a comment against the target and fans out up to two
// notifications: NEW_COMMENT to the content owner and, for replies, NEW_REPLY
// to the parent author when that author is neither the owner nor the actor.
func (s *CommentService) Create(userID uint, target CommentTarget, parentID *uint, content string) (*models.Comment, error) {
	if !target.valid() {
		return nil, apperrors.Validation("COMMENT.TARGET_REQUIRED")
	}

	ownerID, err := s.resolveOwner(target, userID)
	if err != nil {
		return nil, err
	}

	var parent *models.Comment
	if parentID != nil {
		parent, err = s.commentRepo.GetCommentByID(*parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.Validation("COMMENT.PARENT_NOT_FOUND")
			}
			return nil, apperrors.Internal(err)
		}
		if !sameTarget(parent, target) {
			return nil, apperrors.Validation("COMMENT.PARENT_TARGET_MISMATCH")
		}
		// Threads stay one level deep: replying to a reply attaches the
		// new comment to the thread root. The replied-to author still
		// gets the NEW_REPLY.
		if parent.ParentID != nil {
			parentID = parent.ParentID
		}
	}

	comment := &models.Comment{
		UserID:   userID,
		PhotoID:  target.PhotoID,
		SeriesID: target.SeriesID,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.fanOut(comment, ownerID, parent)
	return comment, nil
}

func (s *CommentService) fanOut(comment *models.Comment, ownerID uint, parent *models.Comment) {
	base := NotificationData{
		ActorID:   comment.UserID,
		PhotoID:   comment.PhotoID,
		SeriesID:  comment.SeriesID,
		CommentID: &comment.ID,
	}

	ownerData := base
	ownerData.RecipientID = ownerID
	ownerData.EventType = models.EventNewComment
	if err := s.notifier.Notify(ownerData); err != nil {
		slog.Error("comment notification fan-out failed", "error", err, "comment_id", comment.ID)
	}

	// The parent author gets NEW_REPLY unless they are the content owner
	// (already notified) or the actor (never self-notified).
	if parent != nil && parent.UserID != ownerID && parent.UserID != comment.UserID {
		replyData := base
		replyData.RecipientID = parent.UserID
		replyData.EventType = models.EventNewReply
		if err := s.notifier.Notify(replyData); err != nil {
			slog.Error("reply notification fan-out failed", "error", err, "comment_id", comment.ID)
		}
	}
}

// List rebuilds the comment tree for a target from the flat,
// creation-ascending query result. Every live comment with no parent is a
// root; a comment with a parent is appended to that parent's replies. A reply
// whose parent was soft-deleted is dropped from the tree, not promoted.
func (s *CommentService) List(viewerID uint, target CommentTarget) ([]models.CommentNode, error) {
	if !target.valid() {
		return nil, apperrors.Validation("COMMENT.TARGET_REQUIRED")
	}
	if _, err := s.resolveOwner(target, viewerID); err != nil {
		return nil, err
	}

	var comments []models.Comment
	var err error
	if target.PhotoID != nil {
		comments, err = s.commentRepo.GetCommentsByPhotoID(*target.PhotoID)
	} else {
		comments, err = s.commentRepo.GetCommentsBySeriesID(*target.SeriesID)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return assembleTree(comments), nil
}

func assembleTree(comments []models.Comment) []models.CommentNode {
	nodes := make(map[uint]*models.CommentNode, len(comments))
	order := make([]uint, 0, len(comments))
	for _, c := range comments {
		nodes[c.ID] = &models.CommentNode{Comment: c, Replies: []models.CommentNode{}}
		order = append(order, c.ID)
	}

	roots := make([]models.CommentNode, 0)
	// Creation-ascending order guarantees parents precede replies, so a
	// parent's node is fully placed before its replies are appended.
	for _, id := range order {
		node := nodes[id]
		if node.ParentID == nil {
			continue
		}
		if parent, ok := nodes[*node.ParentID]; ok {
			parent.Replies = append(parent.Replies, *node)
		}
		// Orphaned reply: parent soft-deleted or filtered out. Dropped.
	}
	for _, id := range order {
		node := nodes[id]
		if node.ParentID == nil {
			roots = append(roots, *node)
		}
	}
	return roots
}

// Delete soft-deletes a comment; only the author may delete it.
func (s *CommentService) Delete(userID, commentID uint) error {
	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("COMMENT.NOT_FOUND")
		}
		return apperrors.Internal(err)
	}
	if comment.UserID != userID {
		return apperrors.Forbidden("COMMENT.NOT_OWNER")
	}
	if err := s.commentRepo.DeleteComment(commentID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// resolveOwner enforces target existence and visibility for the viewer and
// returns the content owner's id.
func (s *CommentService) resolveOwner(target CommentTarget, viewerID uint) (uint, error) {
	if target.PhotoID != nil {
		photo, err := resolvePhoto(s.photoRepo, *target.PhotoID, viewerID)
		if err != nil {
			return 0, err
		}
		return photo.UserID, nil
	}
	series, err := resolveSeries(s.seriesRepo, *target.SeriesID, viewerID)
	if err != nil {
		return 0, err
	}
	return series.UserID, nil
}

func sameTarget(parent *models.Comment, target CommentTarget) bool {
	if target.PhotoID != nil {
		return parent.PhotoID != nil && *parent.PhotoID == *target.PhotoID
	}
	return parent.SeriesID != nil && *parent.SeriesID == *target.SeriesID
}
