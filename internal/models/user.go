package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// User is an account holder. Deletion is soft: the row stays and historical
// references (comments, likes) remain valid foreign keys.
type User struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Username        string         `json:"username" gorm:"size:50;uniqueIndex"`
	Email           string         `json:"email" gorm:"uniqueIndex"`
	PasswordHash    string         `json:"-"`
	Bio             string         `json:"bio"`
	ProfileImageURL string         `json:"profile_image_url"`
	NotifyLikes     bool           `json:"notify_likes" gorm:"default:true"`
	NotifyComments  bool           `json:"notify_comments" gorm:"default:true"`
	NotifyFollows   bool           `json:"notify_follows" gorm:"default:true"`
	NotifySeries    bool           `json:"notify_series" gorm:"default:true"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Username        *string `json:"username,omitempty" validate:"omitempty,min=2,max=50"`
	Bio             *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfileImageURL *string `json:"profile_image_url,omitempty" validate:"omitempty,url"`
}

// UpdateNotificationPrefsRequest uses pointers so a client can flip a single
// category without resetting the others.
type UpdateNotificationPrefsRequest struct {
	NotifyLikes    *bool `json:"notify_likes,omitempty"`
	NotifyComments *bool `json:"notify_comments,omitempty"`
	NotifyFollows  *bool `json:"notify_follows,omitempty"`
	NotifySeries   *bool `json:"notify_series,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims.
// The claims are hints only; the auth middleware re-validates the user id
// against the store on every request.
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
