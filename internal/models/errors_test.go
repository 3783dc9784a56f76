package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestPredicatesMatchCodes(t *testing.T) {
	assert.True(t, IsDuplicateKey(NewDuplicateKeyError("User", "a@x.com")))
	assert.True(t, IsNotFound(NewNotFoundError("Post", 7)))
	assert.True(t, IsInvalidCredentials(NewInvalidCredentialsError()))
	assert.True(t, IsTransactionAborted(NewTransactionAbortedError(errors.New("locked"))))
	assert.True(t, IsNetworkFailure(NewNetworkFailureError(errors.New("refused"))))
	assert.True(t, IsValidation(NewValidationError("bad input")))

	assert.False(t, IsNotFound(NewDuplicateKeyError("User", "a@x.com")))
	assert.False(t, IsDuplicateKey(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("toggle like: %w", NewNotFoundError("Post", 7))
	assert.True(t, IsNotFound(wrapped))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, CodeNotFound, appErr.Code)
}

func TestAppErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkFailureError(cause)

	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, fiber.StatusConflict, StatusForError(NewDuplicateKeyError("User", "a@x.com")))
	assert.Equal(t, fiber.StatusNotFound, StatusForError(NewNotFoundError("Post", 7)))
	assert.Equal(t, fiber.StatusUnauthorized, StatusForError(NewInvalidCredentialsError()))
	assert.Equal(t, fiber.StatusBadRequest, StatusForError(NewValidationError("bad")))
	assert.Equal(t, fiber.StatusBadGateway, StatusForError(NewNetworkFailureError(nil)))
	assert.Equal(t, fiber.StatusServiceUnavailable, StatusForError(NewTransactionAbortedError(nil)))
	assert.Equal(t, fiber.StatusInternalServerError, StatusForError(NewInternalError(nil)))
	assert.Equal(t, fiber.StatusInternalServerError, StatusForError(errors.New("plain")))
}
