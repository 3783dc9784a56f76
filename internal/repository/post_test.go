package repository

import (
	"context"
	"testing"
	"time"

	"mojicode/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost(author string, ts time.Time) *models.Post {
	return &models.Post{
		AuthorEmail: author,
		Content:     "hello",
		Timestamp:   ts,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func TestPostRepository_AddAssignsKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	first := newTestPost("ada@example.com", time.Now())
	second := newTestPost("ada@example.com", time.Now())
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestPostRepository_GetByAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newTestPost("ada@example.com", time.Now())))
	require.NoError(t, repo.Add(ctx, newTestPost("ada@example.com", time.Now())))
	require.NoError(t, repo.Add(ctx, newTestPost("grace@example.com", time.Now())))

	posts, err := repo.GetByAuthor(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, "ada@example.com", p.AuthorEmail)
	}
}

func TestPostRepository_GetByTimestampRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Add(ctx, newTestPost("ada@example.com", base)))
	require.NoError(t, repo.Add(ctx, newTestPost("ada@example.com", base.Add(time.Hour))))
	require.NoError(t, repo.Add(ctx, newTestPost("ada@example.com", base.Add(48*time.Hour))))

	posts, err := repo.GetByTimestampRange(ctx, base, base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostRepository_UpdateRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := newTestPost("ada@example.com", time.Now())
	require.NoError(t, repo.Add(ctx, post))

	post.Content = "edited"
	require.NoError(t, repo.Put(ctx, post))

	got, err := repo.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
	assert.Equal(t, post.AuthorEmail, got.AuthorEmail)
}

func TestPostRepository_DeleteLeavesOthers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	keep := newTestPost("ada@example.com", time.Now())
	drop := newTestPost("ada@example.com", time.Now())
	require.NoError(t, repo.Add(ctx, keep))
	require.NoError(t, repo.Add(ctx, drop))

	require.NoError(t, repo.Delete(ctx, drop.ID))

	_, err := repo.Get(ctx, drop.ID)
	assert.True(t, models.IsNotFound(err))
	_, err = repo.Get(ctx, keep.ID)
	assert.NoError(t, err)
}
