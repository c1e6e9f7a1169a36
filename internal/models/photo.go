package models

import (
	"time"

	"gorm.io/gorm"
)

// Photo is owned by exactly one user. A private photo is visible only to its
// owner; every read path must enforce that.
type Photo struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"index"`
	Title        string         `json:"title" gorm:"size:200"`
	Description  string         `json:"description"`
	ImageKey     string         `json:"-"`
	ThumbnailKey string         `json:"-"`
	IsPublic     bool           `json:"is_public"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

type UpdatePhotoVisibilityRequest struct {
	IsPublic *bool `json:"is_public" validate:"required"`
}
