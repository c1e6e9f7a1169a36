package models

import (
	"time"

	"gorm.io/gorm"
)

// Series is an ordered grouping of photos with a designated cover.
type Series struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"index"`
	Title        string         `json:"title" gorm:"size:200"`
	Description  string         `json:"description"`
	CoverPhotoID *uint          `json:"cover_photo_id,omitempty"`
	IsPublic     bool           `json:"is_public"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// SeriesPhoto is a membership row. Position is a dense, user-controlled
// display order, not insertion order.
type SeriesPhoto struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SeriesID  uint      `json:"series_id" gorm:"index;uniqueIndex:idx_series_photo"`
	PhotoID   uint      `json:"photo_id" gorm:"index;uniqueIndex:idx_series_photo"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`

	Photo *Photo `json:"photo,omitempty" gorm:"foreignKey:PhotoID"`
}

type CreateSeriesRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Description  string `json:"description,omitempty" validate:"omitempty,max=1000"`
	CoverPhotoID *uint  `json:"cover_photo_id,omitempty"`
	IsPublic     *bool  `json:"is_public,omitempty"`
}

type UpdateSeriesRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	CoverPhotoID *uint   `json:"cover_photo_id,omitempty"`
	IsPublic     *bool   `json:"is_public,omitempty"`
}

type AddSeriesPhotoRequest struct {
	PhotoID uint `json:"photo_id" validate:"required"`
}

// ReorderSeriesRequest carries the complete new ordering: photo IDs in the
// desired display order.
type ReorderSeriesRequest struct {
	PhotoIDs []uint `json:"photo_ids" validate:"required,min=1"`
}
