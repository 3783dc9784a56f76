package service

import (
	"context"
	"testing"

	"mojicode/internal/models"
	"mojicode/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityService(t *testing.T) (*IdentityService, repository.UserRepository) {
	t.Helper()
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return NewIdentityService(userRepo), userRepo
}

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	digest, err := HashPassword("pw")
	require.NoError(t, err)

	assert.NotEqual(t, "pw", digest)
	assert.NotContains(t, digest, "pw")
	assert.True(t, VerifyPassword("pw", digest))
	assert.False(t, VerifyPassword("wrong", digest))
}

func TestCreateUser(t *testing.T) {
	svc, userRepo := newIdentityService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{
		Email:     "a@x.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Empty(t, user.HashedPassword)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)

	// The stored record carries a digest, never the plaintext.
	stored, err := userRepo.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.HashedPassword)
	assert.NotEqual(t, "pw", stored.HashedPassword)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "other"})
	assert.True(t, models.IsDuplicateKey(err))
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{Email: "  Ada@X.COM ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", user.Email)

	_, err = svc.CreateUser(ctx, CreateUserInput{Email: "ada@x.com", Password: "pw"})
	assert.True(t, models.IsDuplicateKey(err))
}

func TestCreateUserRequiresEmail(t *testing.T) {
	svc, _ := newIdentityService(t)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{Password: "pw"})
	assert.True(t, models.IsValidation(err))
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", FirstName: "Ada", Password: "pw"})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Empty(t, user.HashedPassword)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "a@x.com", "nope")
	assert.True(t, models.IsInvalidCredentials(err))
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _ := newIdentityService(t)

	_, err := svc.Authenticate(context.Background(), "nobody@x.com", "pw")
	assert.True(t, models.IsNotFound(err))
}

func TestUpdateUser(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", FirstName: "Ada", Password: "pw"})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, "a@x.com", UpdateUserInput{FirstName: "Grace"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.FirstName)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	got, err := svc.GetUser(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.FirstName)
}

func TestUpdateUserChangesPassword(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", Password: "old"})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, "a@x.com", UpdateUserInput{Password: "new"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "a@x.com", "old")
	assert.True(t, models.IsInvalidCredentials(err))

	_, err = svc.Authenticate(ctx, "a@x.com", "new")
	assert.NoError(t, err)
}

func TestUpdateUserMissingAccount(t *testing.T) {
	svc, _ := newIdentityService(t)

	_, err := svc.UpdateUser(context.Background(), "nobody@x.com", UpdateUserInput{FirstName: "X"})
	assert.True(t, models.IsNotFound(err))
}

func TestSearchByNameStripsDigests(t *testing.T) {
	svc, _ := newIdentityService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserInput{Email: "a@x.com", FirstName: "Ada", LastName: "Lovelace", Password: "pw"})
	require.NoError(t, err)

	users, err := svc.SearchByName(ctx, "Ada", "Lovelace")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].HashedPassword)
}
