package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"bookbarber/internal/storage"
)

var ErrStorageUnavailable = errors.New("file storage is not configured")

// AssetServiceImpl manages the uploaded shop and service images that
// appointments reference. Storage is optional; without it the upload
// surface reports unavailable instead of failing at startup.
type AssetServiceImpl struct {
	files  storage.FileStorage
	logger *zap.Logger
}

func NewAssetService(files storage.FileStorage, logger *zap.Logger) *AssetServiceImpl {
	return &AssetServiceImpl{
		files:  files,
		logger: logger,
	}
}

func (s *AssetServiceImpl) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if s.files == nil {
		return "", ErrStorageUnavailable
	}

	url, err := s.files.UploadFile(ctx, data, filename)
	if err != nil {
		s.logger.Error("uploading asset", zap.String("filename", filename), zap.Error(err))
		return "", errors.New("failed to upload image")
	}

	return url, nil
}

func (s *AssetServiceImpl) Delete(ctx context.Context, fileURL string) error {
	if s.files == nil {
		return ErrStorageUnavailable
	}

	if err := s.files.DeleteFile(ctx, fileURL); err != nil {
		s.logger.Error("deleting asset", zap.String("url", fileURL), zap.Error(err))
		return errors.New("failed to delete image")
	}

	return nil
}
