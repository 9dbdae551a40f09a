package service

import (
	"context"
	"io"
)

// UploadResult identifies a stored asset.
type UploadResult struct {
	PublicID string
	URL      string
}

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}
