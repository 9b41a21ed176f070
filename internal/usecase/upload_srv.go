package usecase

import (
	"context"
	"fmt"
	"io"

	"identity-service/internal/dto/response"
	"identity-service/pkg/storage"

	"go.uber.org/zap"
)

type UploadService interface {
	UploadPhoto(ctx context.Context, folder, filename, contentType string, body io.Reader) (*response.UploadResponse, error)
}

type uploadService struct {
	uploader storage.Uploader
	log      *zap.Logger
}

func NewUploadService(uploader storage.Uploader, log *zap.Logger) UploadService {
	return &uploadService{
		uploader: uploader,
		log:      log,
	}
}

func (s *uploadService) UploadPhoto(ctx context.Context, folder, filename, contentType string, body io.Reader) (*response.UploadResponse, error) {
	url, err := s.uploader.Upload(ctx, folder, filename, contentType, body)
	if err != nil {
		s.log.Error("Failed to upload photo",
			zap.Error(err),
			zap.String("filename", filename),
		)
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	s.log.Info("Photo uploaded", zap.String("url", url))

	return &response.UploadResponse{URL: url}, nil
}
