package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/scorepulse/scorepulse/internal/domain/error"
)

func TestErrorMapper_IsDuplicateKey(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "postgres duplicate key",
			err:      errors.New(`ERROR: duplicate key value violates unique constraint "idx_transactions_checkout_request_id"`),
			expected: true,
		},
		{
			name:     "sqlite unique constraint",
			err:      errors.New("UNIQUE constraint failed: accounts.email"),
			expected: true,
		},
		{
			name:     "mysql duplicate entry",
			err:      errors.New("Error 1062: Duplicate entry 'a@b.com' for key 'email'"),
			expected: true,
		},
		{
			name:     "unrelated error",
			err:      errors.New("syntax error at or near SELECT"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapper.IsDuplicateKey(tc.err))
		})
	}
}

func TestErrorMapper_IsTransient(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "deadlock",
			err:      errors.New("ERROR: deadlock detected"),
			expected: true,
		},
		{
			name:     "serialization failure",
			err:      errors.New("ERROR: could not serialize access due to concurrent update"),
			expected: true,
		},
		{
			name:     "connection reset",
			err:      errors.New("read tcp 10.0.0.1:5432: connection reset by peer"),
			expected: true,
		},
		{
			name:     "timeout",
			err:      errors.New("dial tcp 10.0.0.1:5432: i/o timeout"),
			expected: true,
		},
		{
			name:     "constraint violation is not transient",
			err:      errors.New(`ERROR: duplicate key value violates unique constraint "accounts_email_key"`),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapper.IsTransient(tc.err))
		})
	}
}

func TestErrorMapper_Storage(t *testing.T) {
	mapper := NewErrorMapper()

	wrapped := mapper.Storage(errors.New("server closed the connection unexpectedly"))

	require.Error(t, wrapped)
	assert.True(t, errors.Is(wrapped, errs.ErrStorageUnavailable))
	assert.Contains(t, wrapped.Error(), "server closed the connection unexpectedly")
}
