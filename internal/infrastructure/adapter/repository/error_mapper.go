package repository

import (
	"fmt"
	"strings"

	errs "github.com/scorepulse/scorepulse/internal/domain/error"
)

// ErrorMapper translates GORM and driver errors into domain errors. A single
// shared instance keeps the string matching against driver messages in one
// place instead of scattered across the repositories.
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// IsDuplicateKey checks if the error is a unique constraint violation
func (m *ErrorMapper) IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint") ||
		strings.Contains(err.Error(), "Duplicate entry")
}

// IsTransient checks if the error is a retryable condition such as a
// deadlock, a serialization failure, or a dropped connection. Repositories
// log these at warning level since a later attempt may well succeed.
func (m *ErrorMapper) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "deadlock") ||
		strings.Contains(err.Error(), "could not serialize access") ||
		strings.Contains(err.Error(), "serialization failure") ||
		strings.Contains(err.Error(), "connection reset") ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "EOF") ||
		strings.Contains(err.Error(), "server closed") ||
		strings.Contains(err.Error(), "broken pipe")
}

// Storage wraps the error as ErrStorageUnavailable, preserving the driver
// message for operators
func (m *ErrorMapper) Storage(err error) error {
	return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, err.Error())
}
