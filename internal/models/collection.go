package models

import "time"

// Collection is an unordered bag of photos. Each user has at most one default
// collection (the save/bookmark list), created lazily on first use.
type Collection struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	Title       string    `json:"title" gorm:"size:200"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"is_default" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CollectionPhoto struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CollectionID uint      `json:"collection_id" gorm:"index;uniqueIndex:idx_collection_photo"`
	PhotoID      uint      `json:"photo_id" gorm:"index;uniqueIndex:idx_collection_photo"`
	CreatedAt    time.Time `json:"created_at"`

	Photo *Photo `json:"photo,omitempty" gorm:"foreignKey:PhotoID"`
}

type CreateCollectionRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type SavePhotoRequest struct {
	PhotoID uint `json:"photo_id" validate:"required"`
}
