package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment belongs to exactly one of photo or series, optionally replying to a
// parent comment on the same target.
type Comment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index"`
	PhotoID   *uint          `json:"photo_id,omitempty" gorm:"index"`
	SeriesID  *uint          `json:"series_id,omitempty" gorm:"index"`
	ParentID  *uint          `json:"parent_id,omitempty" gorm:"index"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=1000"`
	ParentID *uint  `json:"parent_id,omitempty"`
}

// CommentNode is a comment with its direct replies, as returned by the
// two-level tree assembly.
type CommentNode struct {
	Comment
	Replies []CommentNode `json:"replies"`
}
