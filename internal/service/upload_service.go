package service

import (
	"context"
	"io"
	"log"

	"Community_Hub/internal/pkg"
)

type UploadService struct {
	client *pkg.CloudinaryClient
}

func NewUploadService(cfg pkg.CloudinaryConfig) *UploadService {
	return &UploadService{client: pkg.NewCloudinaryClient(cfg)}
}

func (s *UploadService) Upload(ctx context.Context, filename string, file io.Reader, folder string) (*pkg.UploadResult, error) {
	if folder == "" {
		folder = "community_hub"
	}
	res, err := s.client.Upload(ctx, filename, file, folder)
	if err != nil {
		// Upload failures surface; the caller decides what to tell the user.
		log.Printf("cloudinary upload err: %v", err)
		return nil, err
	}
	return res, nil
}
