package repository

import (
	"context"

	"mojicode/internal/models"

	"gorm.io/gorm"
)

// MediaRepository defines persistence operations for binary assets.
type MediaRepository interface {
	Add(ctx context.Context, media *models.Media) error
	Get(ctx context.Context, id uint) (*models.Media, error)
	GetAll(ctx context.Context) ([]models.Media, error)
	GetByOwner(ctx context.Context, ownerEmail string) ([]models.Media, error)
	GetByType(ctx context.Context, mimeType string) ([]models.Media, error)
	Put(ctx context.Context, media *models.Media) error
	Delete(ctx context.Context, id uint) error
}

type mediaRepository struct {
	store[models.Media]
}

// NewMediaRepository returns a new MediaRepository implementation.
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{store: newStore[models.Media](db, "Media")}
}

func (r *mediaRepository) Add(ctx context.Context, media *models.Media) error {
	return r.add(ctx, media, media.ID)
}

func (r *mediaRepository) Get(ctx context.Context, id uint) (*models.Media, error) {
	return r.get(ctx, id, "id = ?", id)
}

func (r *mediaRepository) GetAll(ctx context.Context) ([]models.Media, error) {
	return r.getAll(ctx)
}

func (r *mediaRepository) GetByOwner(ctx context.Context, ownerEmail string) ([]models.Media, error) {
	return r.byIndex(ctx, "owner_email = ?", ownerEmail)
}

func (r *mediaRepository) GetByType(ctx context.Context, mimeType string) ([]models.Media, error) {
	return r.byIndex(ctx, "mime_type = ?", mimeType)
}

func (r *mediaRepository) Put(ctx context.Context, media *models.Media) error {
	return r.put(ctx, media, media.ID)
}

func (r *mediaRepository) Delete(ctx context.Context, id uint) error {
	return r.remove(ctx, "id = ?", id)
}
