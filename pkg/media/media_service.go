package media

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/internal/utils/storage"
	"context"
	"encoding/base64"
	"fmt"
)

type (
	MediaService interface {
		UploadPhoto(ctx context.Context, req domain.UploadPhotoRequest, userID string) (domain.UploadPhotoResponse, error)
		DeletePhoto(ctx context.Context, req domain.DeletePhotoRequest, userID string) error
	}

	mediaService struct {
		s3 storage.AwsS3
	}
)

func NewMediaService(s3 storage.AwsS3) MediaService {
	return &mediaService{s3: s3}
}

func (s *mediaService) UploadPhoto(ctx context.Context, req domain.UploadPhotoRequest, userID string) (domain.UploadPhotoResponse, error) {
	imageBytes, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		return domain.UploadPhotoResponse{}, domain.ErrInvalidImageData
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	objectKey, err := s.s3.UploadUserFile(ctx, userID, imageBytes, contentType, storage.AllowImage...)
	if err != nil {
		return domain.UploadPhotoResponse{}, fmt.Errorf("failed to store photo: %w", err)
	}

	return domain.UploadPhotoResponse{URL: s.s3.GetPublicLinkKey(objectKey)}, nil
}

func (s *mediaService) DeletePhoto(ctx context.Context, req domain.DeletePhotoRequest, userID string) error {
	objectKey := s.s3.GetObjectKeyFromLink(req.URL)
	if objectKey == "" {
		return domain.ErrInvalidPhotoURL
	}
	if !storage.KeyOwnedBy(objectKey, userID) {
		return domain.ErrPhotoNotOwned
	}

	return s.s3.DeleteFile(ctx, objectKey)
}
