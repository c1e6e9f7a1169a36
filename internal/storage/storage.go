package storage

import (
	"context"
	"io"
	"time"
)

// Object is a stored binary plus the metadata the image proxy forwards.
type Object struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	LastModified  time.Time
}

// Storage is the object-store capability photos and thumbnails are written to.
type Storage interface {
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error
	Get(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
}
