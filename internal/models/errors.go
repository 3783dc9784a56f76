package models

import (
	"errors"
	"fmt"
)

// Error codes used across the storage and service layers.
const (
	CodeDuplicateKey       = "DUPLICATE_KEY"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeTransactionAborted = "TRANSACTION_ABORTED"
	CodeNetworkFailure     = "NETWORK_FAILURE"
	CodeValidation         = "VALIDATION_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors

func NewDuplicateKeyError(resource string, key interface{}) *AppError {
	return &AppError{
		Code:    CodeDuplicateKey,
		Message: fmt.Sprintf("%s with key %v already exists", resource, key),
	}
}

func NewNotFoundError(resource string, key interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with key %v not found", resource, key),
	}
}

func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Code:    CodeInvalidCredentials,
		Message: "Invalid credentials",
	}
}

func NewTransactionAbortedError(err error) *AppError {
	return &AppError{
		Code:    CodeTransactionAborted,
		Message: "Storage transaction could not commit",
		Err:     err,
	}
}

func NewNetworkFailureError(err error) *AppError {
	return &AppError{
		Code:    CodeNetworkFailure,
		Message: "Network request failed",
		Err:     err,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal error",
		Err:     err,
	}
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsDuplicateKey reports whether err is a duplicate primary key failure.
func IsDuplicateKey(err error) bool { return hasCode(err, CodeDuplicateKey) }

// IsNotFound reports whether err addresses a missing key.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsInvalidCredentials reports whether err is an authentication mismatch.
func IsInvalidCredentials(err error) bool { return hasCode(err, CodeInvalidCredentials) }

// IsTransactionAborted reports whether the storage transaction failed to
// commit. The whole operation is safe to retry.
func IsTransactionAborted(err error) bool { return hasCode(err, CodeTransactionAborted) }

// IsNetworkFailure reports whether err is a transport-level failure that the
// sync queue may have absorbed.
func IsNetworkFailure(err error) bool { return hasCode(err, CodeNetworkFailure) }

// IsValidation reports whether err is a rejected input.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }
