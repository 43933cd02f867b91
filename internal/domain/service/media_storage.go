package service

import (
	"context"
	"io"
)

// MediaStorage stores photo bytes and returns a public URL for them.
type MediaStorage interface {
	UploadImage(ctx context.Context, file io.Reader, contentType string) (string, error)
	DeleteImage(ctx context.Context, url string) error
}
