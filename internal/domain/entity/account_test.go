package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	mockcore "github.com/scorepulse/scorepulse/mocks/port/core"
)

func TestNewAccount(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		email         string
		expectedEmail string
		expectedError error
	}{
		{
			name:          "valid email",
			email:         "fan@example.com",
			expectedEmail: "fan@example.com",
		},
		{
			name:          "email gets trimmed",
			email:         "  fan@example.com  ",
			expectedEmail: "fan@example.com",
		},
		{
			name:          "empty email",
			email:         "",
			expectedError: errs.ErrInvalidEmail,
		},
		{
			name:          "whitespace only",
			email:         "   ",
			expectedError: errs.ErrInvalidEmail,
		},
		{
			name:          "missing at sign",
			email:         "fan.example.com",
			expectedError: errs.ErrInvalidEmail,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTimeProvider := new(mockcore.MockTimeProvider)
			if tc.expectedError == nil {
				mockTimeProvider.On("Now").Return(now)
			}

			account, err := NewAccount(tc.email, mockTimeProvider)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, account)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedEmail, account.Email)
			assert.Equal(t, EntitlementFree, account.Entitlement)
			assert.Equal(t, uint(0), account.UsageCount)
			assert.Nil(t, account.SubscriptionEnd)
			assert.Equal(t, now, account.CreatedAt)
			assert.Equal(t, now, account.UpdatedAt)
		})
	}
}

func TestAccount_IsPro(t *testing.T) {
	free := &Account{Entitlement: EntitlementFree}
	pro := &Account{Entitlement: EntitlementPro}

	assert.False(t, free.IsPro())
	assert.True(t, pro.IsPro())
}

func TestAccount_RemainingFree(t *testing.T) {
	testCases := []struct {
		name     string
		account  Account
		limit    uint
		expected uint
	}{
		{
			name:     "fresh account has the full quota",
			account:  Account{Entitlement: EntitlementFree, UsageCount: 0},
			limit:    100,
			expected: 100,
		},
		{
			name:     "partially used quota",
			account:  Account{Entitlement: EntitlementFree, UsageCount: 37},
			limit:    100,
			expected: 63,
		},
		{
			name:     "exhausted quota",
			account:  Account{Entitlement: EntitlementFree, UsageCount: 100},
			limit:    100,
			expected: 0,
		},
		{
			name:     "usage past the limit still reports zero",
			account:  Account{Entitlement: EntitlementFree, UsageCount: 150},
			limit:    100,
			expected: 0,
		},
		{
			name:     "pro account reports zero",
			account:  Account{Entitlement: EntitlementPro, UsageCount: 5},
			limit:    100,
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.account.RemainingFree(tc.limit))
		})
	}
}
