package service

import (
	"context"
	"time"

	"mojicode/internal/models"
	"mojicode/internal/repository"
)

// MediaService stores opaque binary assets. Blob contents are never
// inspected; the declared MIME type and size are recorded as given.
type MediaService struct {
	mediaRepo repository.MediaRepository
}

// NewMediaService returns a new MediaService.
func NewMediaService(mediaRepo repository.MediaRepository) *MediaService {
	return &MediaService{mediaRepo: mediaRepo}
}

// Store saves a blob for the owner and returns the stored record.
func (s *MediaService) Store(ctx context.Context, ownerEmail string, blob []byte, mimeType string) (*models.Media, error) {
	if len(blob) == 0 {
		return nil, models.NewValidationError("media blob is empty")
	}

	media := &models.Media{
		OwnerEmail: ownerEmail,
		Blob:       blob,
		MimeType:   mimeType,
		Size:       int64(len(blob)),
		Timestamp:  time.Now(),
	}
	if err := s.mediaRepo.Add(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

// Get fetches one asset by key.
func (s *MediaService) Get(ctx context.Context, id uint) (*models.Media, error) {
	return s.mediaRepo.Get(ctx, id)
}

// ListByOwner returns the owner's assets.
func (s *MediaService) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Media, error) {
	return s.mediaRepo.GetByOwner(ctx, ownerEmail)
}

// ListByType returns assets with the declared MIME type.
func (s *MediaService) ListByType(ctx context.Context, mimeType string) ([]models.Media, error) {
	return s.mediaRepo.GetByType(ctx, mimeType)
}

// Delete removes the asset; an absent key is a no-op.
func (s *MediaService) Delete(ctx context.Context, id uint) error {
	return s.mediaRepo.Delete(ctx, id)
}
