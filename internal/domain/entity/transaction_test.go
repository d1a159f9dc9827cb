package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	mockcore "github.com/scorepulse/scorepulse/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		key           string
		accountID     uint64
		phoneNumber   string
		amount        int64
		expectedError error
	}{
		{
			name:        "valid transaction",
			key:         "ws_CO_01062025120000123456",
			accountID:   42,
			phoneNumber: "254712345678",
			amount:      500,
		},
		{
			name:          "empty key",
			key:           "",
			accountID:     42,
			phoneNumber:   "254712345678",
			amount:        500,
			expectedError: errs.ErrInvalidTransactionKey,
		},
		{
			name:          "zero account id",
			key:           "ws_CO_01062025120000123456",
			accountID:     0,
			phoneNumber:   "254712345678",
			amount:        500,
			expectedError: errs.ErrInvalidAccountID,
		},
		{
			name:          "empty phone number",
			key:           "ws_CO_01062025120000123456",
			accountID:     42,
			phoneNumber:   "",
			amount:        500,
			expectedError: errs.ErrInvalidPhoneNumber,
		},
		{
			name:          "zero amount",
			key:           "ws_CO_01062025120000123456",
			accountID:     42,
			phoneNumber:   "254712345678",
			amount:        0,
			expectedError: errs.ErrInvalidAmount,
		},
		{
			name:          "negative amount",
			key:           "ws_CO_01062025120000123456",
			accountID:     42,
			phoneNumber:   "254712345678",
			amount:        -500,
			expectedError: errs.ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTimeProvider := new(mockcore.MockTimeProvider)
			if tc.expectedError == nil {
				mockTimeProvider.On("Now").Return(now)
			}

			transaction, err := NewTransaction(tc.key, tc.accountID, tc.phoneNumber, tc.amount, mockTimeProvider)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, transaction)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.key, transaction.Key)
			assert.Equal(t, tc.accountID, transaction.AccountID)
			assert.Equal(t, tc.phoneNumber, transaction.PhoneNumber)
			assert.Equal(t, tc.amount, transaction.Amount)
			assert.Equal(t, StatusPending, transaction.Status)
			assert.Equal(t, now, transaction.CreatedAt)
			assert.Nil(t, transaction.CompletedAt)
		})
	}
}

func TestTransaction_IsTerminal(t *testing.T) {
	testCases := []struct {
		name     string
		status   TransactionStatus
		expected bool
	}{
		{name: "pending is not terminal", status: StatusPending, expected: false},
		{name: "completed is terminal", status: StatusCompleted, expected: true},
		{name: "failed is terminal", status: StatusFailed, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transaction := &Transaction{Status: tc.status}
			assert.Equal(t, tc.expected, transaction.IsTerminal())
		})
	}
}
