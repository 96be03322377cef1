package storage

import (
	"context"
)

// FileStorage holds the uploaded shop and service images that
// appointment records reference by URL.
type FileStorage interface {
	UploadFile(ctx context.Context, data []byte, filename string) (string, error)

	DeleteFile(ctx context.Context, fileURL string) error
}
