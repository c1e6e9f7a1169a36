package models

import "time"

// NotificationEvent is the closed set of notification categories.
type NotificationEvent string

const (
	EventNewLike    NotificationEvent = "NEW_LIKE"
	EventNewComment NotificationEvent = "NEW_COMMENT"
	EventNewReply   NotificationEvent = "NEW_REPLY"
	EventNewFollow  NotificationEvent = "NEW_FOLLOW"
	EventNewSeries  NotificationEvent = "NEW_SERIES"
)

// Notification is an immutable record of one interaction. The nullable target
// columns mirror the tagged-union target of the interaction that produced it.
type Notification struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	RecipientID uint              `json:"recipient_id" gorm:"index"`
	ActorID     uint              `json:"actor_id" gorm:"index"`
	EventType   NotificationEvent `json:"event_type" gorm:"size:20;index"`
	PhotoID     *uint             `json:"photo_id,omitempty"`
	SeriesID    *uint             `json:"series_id,omitempty"`
	CommentID   *uint             `json:"comment_id,omitempty"`
	FollowID    *uint             `json:"follow_id,omitempty"`
	IsRead      bool              `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time         `json:"created_at" gorm:"index"`
}

type MarkNotificationsReadRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}
