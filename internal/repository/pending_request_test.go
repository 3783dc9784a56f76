package repository

import (
	"context"
	"testing"

	"mojicode/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingRequestRepository_ListPendingKeepsEnqueueOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPendingRequestRepository(db)
	ctx := context.Background()

	first := &models.PendingRequest{Method: "POST", URL: "/api/posts", Body: []byte(`{"content":"A"}`), IdempotencyKey: "k1"}
	second := &models.PendingRequest{Method: "POST", URL: "/api/posts", Body: []byte(`{"content":"B"}`), IdempotencyKey: "k2"}
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)
}

func TestPendingRequestRepository_DeleteIsIndependent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPendingRequestRepository(db)
	ctx := context.Background()

	first := &models.PendingRequest{Method: "POST", URL: "/api/posts", IdempotencyKey: "k1"}
	second := &models.PendingRequest{Method: "DELETE", URL: "/api/posts/4", IdempotencyKey: "k2"}
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	require.NoError(t, repo.Delete(ctx, first.ID))

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
