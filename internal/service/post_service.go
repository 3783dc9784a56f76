package service

import (
	"context"
	"strings"
	"time"

	"mojicode/internal/models"
	"mojicode/internal/repository"
)

// PostService provides post business logic.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput is the data needed to author a new post.
type CreatePostInput struct {
	AuthorEmail string
	Content     string
}

// UpdatePostInput carries partial post fields; empty fields are left as is.
type UpdatePostInput struct {
	Content string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost stamps the post and stores it, returning the stored record.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("post content is required")
	}

	now := time.Now()
	post := &models.Post{
		AuthorEmail: in.AuthorEmail,
		Content:     in.Content,
		Timestamp:   now,
		LikeCount:   0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.postRepo.Add(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost fetches one post by key.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.Get(ctx, id)
}

// GetPosts returns every post, or only those by authorEmail when set.
func (s *PostService) GetPosts(ctx context.Context, authorEmail string) ([]models.Post, error) {
	if authorEmail != "" {
		return s.postRepo.GetByAuthor(ctx, authorEmail)
	}
	return s.postRepo.GetAll(ctx)
}

// GetPostsBetween returns posts with timestamps in [from, to).
func (s *PostService) GetPostsBetween(ctx context.Context, from, to time.Time) ([]models.Post, error) {
	return s.postRepo.GetByTimestampRange(ctx, from, to)
}

// UpdatePost merges the given fields onto the stored post, re-stamps
// UpdatedAt, and writes the result back. Fails with NotFound for a missing key.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Content != "" {
		post.Content = in.Content
	}
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Put(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post. Comments and likes referencing it are left in
// place; there is no cascading delete.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.postRepo.Delete(ctx, id)
}
