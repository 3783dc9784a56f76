package repository

import (
	"context"

	"mojicode/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Add(ctx context.Context, comment *models.Comment) error
	Get(ctx context.Context, id uint) (*models.Comment, error)
	GetAll(ctx context.Context) ([]models.Comment, error)
	GetByPost(ctx context.Context, postID uint) ([]models.Comment, error)
	GetByAuthor(ctx context.Context, authorEmail string) ([]models.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	store[models.Comment]
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{store: newStore[models.Comment](db, "Comment")}
}

func (r *commentRepository) Add(ctx context.Context, comment *models.Comment) error {
	return r.add(ctx, comment, comment.ID)
}

func (r *commentRepository) Get(ctx context.Context, id uint) (*models.Comment, error) {
	return r.get(ctx, id, "id = ?", id)
}

func (r *commentRepository) GetAll(ctx context.Context) ([]models.Comment, error) {
	return r.getAll(ctx)
}

func (r *commentRepository) GetByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return r.byIndex(ctx, "post_id = ?", postID)
}

func (r *commentRepository) GetByAuthor(ctx context.Context, authorEmail string) ([]models.Comment, error) {
	return r.byIndex(ctx, "author_email = ?", authorEmail)
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.remove(ctx, "id = ?", id)
}
