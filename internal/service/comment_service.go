package service

import (
	"context"
	"strings"
	"time"

	"mojicode/internal/models"
	"mojicode/internal/repository"
)

// CommentService provides comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// AddComment stamps the comment and stores it.
func (s *CommentService) AddComment(ctx context.Context, postID uint, authorEmail, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("comment text is required")
	}

	comment := &models.Comment{
		PostID:      postID,
		AuthorEmail: authorEmail,
		Text:        text,
		Timestamp:   time.Now(),
	}
	if err := s.commentRepo.Add(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetComments returns the comments on a post.
func (s *CommentService) GetComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.GetByPost(ctx, postID)
}

// GetCommentsByAuthor returns the comments written by one author.
func (s *CommentService) GetCommentsByAuthor(ctx context.Context, authorEmail string) ([]models.Comment, error) {
	return s.commentRepo.GetByAuthor(ctx, authorEmail)
}

// DeleteComment removes the comment; an absent key is a no-op.
func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	return s.commentRepo.Delete(ctx, id)
}
