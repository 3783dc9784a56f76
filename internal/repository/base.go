// Package repository implements the data access layer for the application.
//
// Every exported operation runs in its own transaction against a single
// entity's store: reads are independent snapshots, writes commit atomically.
// No operation here spans two stores; multi-store workflows compose these
// calls and tolerate interleaving between them.
package repository

import (
	"context"
	"errors"
	"strings"

	"mojicode/internal/models"
	"mojicode/internal/observability"

	"gorm.io/gorm"
)

// store is the uniform operation set shared by all entity repositories,
// implemented once and instantiated per entity type.
type store[T any] struct {
	db   *gorm.DB
	name string
}

func newStore[T any](db *gorm.DB, name string) store[T] {
	return store[T]{db: db, name: name}
}

// add inserts a new record. Natural-key stores fail with DuplicateKey when
// the key is already present; auto-increment stores cannot collide.
func (s *store[T]) add(ctx context.Context, record *T, key interface{}) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		observability.StorageErrors.WithLabelValues(s.name, "add").Inc()
		return s.wrapWriteError(err, key)
	}
	return nil
}

// get fetches one record by an exact condition, NotFound when absent.
func (s *store[T]) get(ctx context.Context, key interface{}, query string, args ...interface{}) (*T, error) {
	var record T
	if err := s.db.WithContext(ctx).Where(query, args...).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(s.name, key)
		}
		observability.StorageErrors.WithLabelValues(s.name, "get").Inc()
		return nil, models.NewInternalError(err)
	}
	return &record, nil
}

// find fetches one record like get but reports absence as (nil, nil) so
// callers that treat "missing" as a normal outcome skip the error dance.
func (s *store[T]) find(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var record T
	if err := s.db.WithContext(ctx).Where(query, args...).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		observability.StorageErrors.WithLabelValues(s.name, "get").Inc()
		return nil, models.NewInternalError(err)
	}
	return &record, nil
}

// getAll returns every record in the store. Order is store-defined.
func (s *store[T]) getAll(ctx context.Context) ([]T, error) {
	var records []T
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		observability.StorageErrors.WithLabelValues(s.name, "getAll").Inc()
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

// byIndex returns every record matching one secondary-index value.
func (s *store[T]) byIndex(ctx context.Context, query string, args ...interface{}) ([]T, error) {
	var records []T
	if err := s.db.WithContext(ctx).Where(query, args...).Find(&records).Error; err != nil {
		observability.StorageErrors.WithLabelValues(s.name, "byIndex").Inc()
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

// put writes the full record at its key: an update when the key exists, an
// insert otherwise. Existence checks belong to the caller.
func (s *store[T]) put(ctx context.Context, record *T, key interface{}) error {
	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		observability.StorageErrors.WithLabelValues(s.name, "put").Inc()
		return s.wrapWriteError(err, key)
	}
	return nil
}

// remove deletes matching records. An absent key is a no-op success.
func (s *store[T]) remove(ctx context.Context, query string, args ...interface{}) error {
	var zero T
	if err := s.db.WithContext(ctx).Where(query, args...).Delete(&zero).Error; err != nil {
		observability.StorageErrors.WithLabelValues(s.name, "delete").Inc()
		return s.wrapWriteError(err, nil)
	}
	return nil
}

func (s *store[T]) wrapWriteError(err error, key interface{}) error {
	switch {
	case isUniqueConstraintError(err):
		return models.NewDuplicateKeyError(s.name, key)
	case isBusyError(err):
		return models.NewTransactionAbortedError(err)
	default:
		return models.NewInternalError(err)
	}
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}

// isBusyError checks if a DB error means the transaction could not commit
// and the whole operation is safe to retry.
func isBusyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "busy")
}
