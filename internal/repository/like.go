package repository

import (
	"context"

	"mojicode/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for like records.
type LikeRepository interface {
	Add(ctx context.Context, like *models.Like) error
	Get(ctx context.Context, id uint) (*models.Like, error)
	GetByPost(ctx context.Context, postID uint) ([]models.Like, error)
	GetByUser(ctx context.Context, userEmail string) ([]models.Like, error)
	// FindByPair returns the active like for (postID, userEmail), or nil.
	FindByPair(ctx context.Context, postID uint, userEmail string) (*models.Like, error)
	Delete(ctx context.Context, id uint) error
}

type likeRepository struct {
	store[models.Like]
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{store: newStore[models.Like](db, "Like")}
}

func (r *likeRepository) Add(ctx context.Context, like *models.Like) error {
	return r.add(ctx, like, like.ID)
}

func (r *likeRepository) Get(ctx context.Context, id uint) (*models.Like, error) {
	return r.get(ctx, id, "id = ?", id)
}

func (r *likeRepository) GetByPost(ctx context.Context, postID uint) ([]models.Like, error) {
	return r.byIndex(ctx, "post_id = ?", postID)
}

func (r *likeRepository) GetByUser(ctx context.Context, userEmail string) ([]models.Like, error) {
	return r.byIndex(ctx, "user_email = ?", userEmail)
}

func (r *likeRepository) FindByPair(ctx context.Context, postID uint, userEmail string) (*models.Like, error) {
	return r.find(ctx, "post_id = ? AND user_email = ?", postID, userEmail)
}

func (r *likeRepository) Delete(ctx context.Context, id uint) error {
	return r.remove(ctx, "id = ?", id)
}
