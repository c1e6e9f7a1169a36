package models

import "time"

// LikeTargetType discriminates what a like row points at.
type LikeTargetType string

const (
	LikeTargetPhoto   LikeTargetType = "photo"
	LikeTargetSeries  LikeTargetType = "series"
	LikeTargetComment LikeTargetType = "comment"
)

// Like is a unique (user, target) pair. The composite unique index is what
// makes the concurrent create path resolvable (see LikeService.Toggle).
type Like struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"index;uniqueIndex:idx_user_target_like"`
	TargetType LikeTargetType `json:"target_type" gorm:"size:20;uniqueIndex:idx_user_target_like"`
	TargetID   uint           `json:"target_id" gorm:"index;uniqueIndex:idx_user_target_like"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ToggleLikeRequest carries the tagged-union target: exactly one field set.
type ToggleLikeRequest struct {
	PhotoID   *uint `json:"photoId,omitempty"`
	SeriesID  *uint `json:"seriesId,omitempty"`
	CommentID *uint `json:"commentId,omitempty"`
}
