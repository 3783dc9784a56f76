package repository

import (
	"context"
	"time"

	"mojicode/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Add(ctx context.Context, post *models.Post) error
	Get(ctx context.Context, id uint) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByAuthor(ctx context.Context, authorEmail string) ([]models.Post, error)
	GetByTimestampRange(ctx context.Context, from, to time.Time) ([]models.Post, error)
	Put(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	store[models.Post]
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{store: newStore[models.Post](db, "Post")}
}

func (r *postRepository) Add(ctx context.Context, post *models.Post) error {
	return r.add(ctx, post, post.ID)
}

func (r *postRepository) Get(ctx context.Context, id uint) (*models.Post, error) {
	return r.get(ctx, id, "id = ?", id)
}

func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	return r.getAll(ctx)
}

func (r *postRepository) GetByAuthor(ctx context.Context, authorEmail string) ([]models.Post, error) {
	return r.byIndex(ctx, "author_email = ?", authorEmail)
}

func (r *postRepository) GetByTimestampRange(ctx context.Context, from, to time.Time) ([]models.Post, error) {
	return r.byIndex(ctx, "timestamp >= ? AND timestamp < ?", from, to)
}

func (r *postRepository) Put(ctx context.Context, post *models.Post) error {
	return r.put(ctx, post, post.ID)
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.remove(ctx, "id = ?", id)
}
