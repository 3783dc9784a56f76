// Package service implements the business logic on top of the repositories.
package service

import (
	"context"
	"strings"
	"time"

	"mojicode/internal/models"
	"mojicode/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// IdentityService owns password hashing and the user account lifecycle.
// Password digests never leave this boundary: every user it returns has
// HashedPassword zeroed.
type IdentityService struct {
	userRepo repository.UserRepository
}

// CreateUserInput is the data needed to register a new account.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// UpdateUserInput carries partial profile fields; empty fields are left as is.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	Password  string
}

// NewIdentityService returns a new IdentityService.
func NewIdentityService(userRepo repository.UserRepository) *IdentityService {
	return &IdentityService{userRepo: userRepo}
}

// HashPassword produces a one-way digest of the password.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches the stored digest.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// CreateUser hashes the password, stamps both timestamps, and stores the
// account. Fails with DuplicateKey when the email is already registered.
func (s *IdentityService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, models.NewValidationError("email is required")
	}

	digest, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Email:          email,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		HashedPassword: digest,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.userRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	return sanitize(user), nil
}

// Authenticate verifies the credentials and returns the account without its
// password digest. Unknown emails fail with NotFound; a digest mismatch
// fails with InvalidCredentials and is never retried here.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.Get(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}

	if !VerifyPassword(password, user.HashedPassword) {
		return nil, models.NewInvalidCredentialsError()
	}

	return sanitize(user), nil
}

// UpdateUser merges the given fields onto the stored account, re-stamps
// UpdatedAt, and writes the result back.
func (s *IdentityService) UpdateUser(ctx context.Context, email string, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.Get(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}

	if in.FirstName != "" {
		user.FirstName = strings.TrimSpace(in.FirstName)
	}
	if in.LastName != "" {
		user.LastName = strings.TrimSpace(in.LastName)
	}
	if in.Password != "" {
		digest, err := HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = digest
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Put(ctx, user); err != nil {
		return nil, err
	}

	return sanitize(user), nil
}

// GetUser returns the account without its password digest.
func (s *IdentityService) GetUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.Get(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	return sanitize(user), nil
}

// SearchByName returns accounts matching the name index, digests stripped.
func (s *IdentityService) SearchByName(ctx context.Context, firstName, lastName string) ([]models.User, error) {
	users, err := s.userRepo.GetByName(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].HashedPassword = ""
	}
	return users, nil
}

func sanitize(user *models.User) *models.User {
	clean := *user
	clean.HashedPassword = ""
	return &clean
}
