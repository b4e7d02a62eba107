package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores car images in Cloudinary.
type StorageService interface {
	// UploadImage uploads a local file into the given folder and returns the
	// hosted secure URL together with the public id.
	UploadImage(ctx context.Context, localFilePath, destFolder string) (url, publicID string, err error)
	// DeleteImage removes an uploaded image by its public id.
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorageService is the production implementation of StorageService.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService creates a CloudinaryStorageService.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorageService{cld: cld}
}

// UploadImage uploads a local file into the given folder.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, localFilePath, destFolder string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", "", fmt.Errorf("storage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("storage: no public ID returned")
	}
	return result.SecureURL, result.PublicID, nil
}

// DeleteImage removes an uploaded image by its public id.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}
