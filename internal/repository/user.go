package repository

import (
	"context"

	"mojicode/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users. Email is the
// primary key; the name index covers (first_name, last_name).
type UserRepository interface {
	Add(ctx context.Context, user *models.User) error
	Get(ctx context.Context, email string) (*models.User, error)
	Find(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByName(ctx context.Context, firstName, lastName string) ([]models.User, error)
	Put(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, email string) error
}

type userRepository struct {
	store[models.User]
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{store: newStore[models.User](db, "User")}
}

func (r *userRepository) Add(ctx context.Context, user *models.User) error {
	return r.add(ctx, user, user.Email)
}

func (r *userRepository) Get(ctx context.Context, email string) (*models.User, error) {
	return r.get(ctx, email, "email = ?", email)
}

// Find is Get with absence reported as (nil, nil).
func (r *userRepository) Find(ctx context.Context, email string) (*models.User, error) {
	return r.find(ctx, "email = ?", email)
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return r.getAll(ctx)
}

func (r *userRepository) GetByName(ctx context.Context, firstName, lastName string) ([]models.User, error) {
	return r.byIndex(ctx, "first_name = ? AND last_name = ?", firstName, lastName)
}

func (r *userRepository) Put(ctx context.Context, user *models.User) error {
	return r.put(ctx, user, user.Email)
}

func (r *userRepository) Delete(ctx context.Context, email string) error {
	return r.remove(ctx, "email = ?", email)
}
