package repository

import (
	"context"

	"mojicode/internal/models"

	"gorm.io/gorm"
)

// PendingRequestRepository stores queued mutating requests awaiting replay.
// ListPending returns entries in enqueue order; replay removes each entry
// independently once its re-issue produced a response.
type PendingRequestRepository interface {
	Add(ctx context.Context, req *models.PendingRequest) error
	ListPending(ctx context.Context) ([]models.PendingRequest, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type pendingRequestRepository struct {
	store[models.PendingRequest]
}

// NewPendingRequestRepository returns a new PendingRequestRepository implementation.
func NewPendingRequestRepository(db *gorm.DB) PendingRequestRepository {
	return &pendingRequestRepository{store: newStore[models.PendingRequest](db, "PendingRequest")}
}

func (r *pendingRequestRepository) Add(ctx context.Context, req *models.PendingRequest) error {
	return r.add(ctx, req, req.ID)
}

func (r *pendingRequestRepository) ListPending(ctx context.Context) ([]models.PendingRequest, error) {
	var records []models.PendingRequest
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

func (r *pendingRequestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PendingRequest{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *pendingRequestRepository) Delete(ctx context.Context, id uint) error {
	return r.remove(ctx, "id = ?", id)
}
