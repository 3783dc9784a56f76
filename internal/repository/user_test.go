package repository

import (
	"context"
	"testing"
	"time"

	"mojicode/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *models.User {
	now := time.Now()
	return &models.User{
		Email:          email,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		HashedPassword: "digest",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestUserRepository_AddAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newTestUser("ada@example.com")))

	user, err := repo.Get(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
}

func TestUserRepository_AddDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newTestUser("ada@example.com")))

	err := repo.Add(ctx, newTestUser("ada@example.com"))
	require.Error(t, err)
	assert.True(t, models.IsDuplicateKey(err))
}

func TestUserRepository_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Get(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestUserRepository_FindMissingIsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.Find(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_GetByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newTestUser("ada@example.com")))
	other := newTestUser("grace@example.com")
	other.FirstName = "Grace"
	other.LastName = "Hopper"
	require.NoError(t, repo.Add(ctx, other))

	users, err := repo.GetByName(ctx, "Ada", "Lovelace")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ada@example.com", users[0].Email)
}

func TestUserRepository_PutUpdatesAndInserts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newTestUser("ada@example.com")
	require.NoError(t, repo.Add(ctx, user))

	// Put over an existing key rewrites the record.
	user.FirstName = "Augusta"
	require.NoError(t, repo.Put(ctx, user))
	got, err := repo.Get(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Augusta", got.FirstName)

	// Put at a fresh key inserts.
	fresh := newTestUser("grace@example.com")
	require.NoError(t, repo.Put(ctx, fresh))
	_, err = repo.Get(ctx, "grace@example.com")
	assert.NoError(t, err)
}

func TestUserRepository_DeleteAbsentIsNoop(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Delete(ctx, "nobody@example.com"))

	require.NoError(t, repo.Add(ctx, newTestUser("ada@example.com")))
	require.NoError(t, repo.Delete(ctx, "ada@example.com"))

	_, err := repo.Get(ctx, "ada@example.com")
	assert.True(t, models.IsNotFound(err))
}

func TestUserRepository_GetAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newTestUser("ada@example.com")))
	other := newTestUser("grace@example.com")
	require.NoError(t, repo.Add(ctx, other))

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
