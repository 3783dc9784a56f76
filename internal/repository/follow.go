package repository

import (
	"context"

	"mojicode/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for follow records.
type FollowRepository interface {
	Add(ctx context.Context, follow *models.Follow) error
	Get(ctx context.Context, id uint) (*models.Follow, error)
	GetByFollower(ctx context.Context, followerEmail string) ([]models.Follow, error)
	GetByFollowing(ctx context.Context, followingEmail string) ([]models.Follow, error)
	// FindByPair returns the active follow for (follower, following), or nil.
	FindByPair(ctx context.Context, followerEmail, followingEmail string) (*models.Follow, error)
	Delete(ctx context.Context, id uint) error
}

type followRepository struct {
	store[models.Follow]
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{store: newStore[models.Follow](db, "Follow")}
}

func (r *followRepository) Add(ctx context.Context, follow *models.Follow) error {
	return r.add(ctx, follow, follow.ID)
}

func (r *followRepository) Get(ctx context.Context, id uint) (*models.Follow, error) {
	return r.get(ctx, id, "id = ?", id)
}

func (r *followRepository) GetByFollower(ctx context.Context, followerEmail string) ([]models.Follow, error) {
	return r.byIndex(ctx, "follower_email = ?", followerEmail)
}

func (r *followRepository) GetByFollowing(ctx context.Context, followingEmail string) ([]models.Follow, error) {
	return r.byIndex(ctx, "following_email = ?", followingEmail)
}

func (r *followRepository) FindByPair(ctx context.Context, followerEmail, followingEmail string) (*models.Follow, error) {
	return r.find(ctx, "follower_email = ? AND following_email = ?", followerEmail, followingEmail)
}

func (r *followRepository) Delete(ctx context.Context, id uint) error {
	return r.remove(ctx, "id = ?", id)
}
