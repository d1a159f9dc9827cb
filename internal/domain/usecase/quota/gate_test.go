package quota

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	mockcore "github.com/scorepulse/scorepulse/mocks/port/core"
	mockpersistence "github.com/scorepulse/scorepulse/mocks/port/persistence"
)

func quietLogger() *mockcore.MockLogger {
	logger := new(mockcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestNewGate_DefaultLimit(t *testing.T) {
	gate := NewGate(new(mockpersistence.MockAccountRepository), quietLogger(), 0)
	assert.Equal(t, DefaultFreeLimit, gate.Limit())

	gate = NewGate(new(mockpersistence.MockAccountRepository), quietLogger(), 25)
	assert.Equal(t, uint(25), gate.Limit())
}

func TestGate_TryConsume(t *testing.T) {
	const accountID = uint64(42)

	testCases := []struct {
		name             string
		mockSetup        func(mockAccounts *mockpersistence.MockAccountRepository)
		expectedDecision *Decision
		expectedError    error
	}{
		{
			name: "free account under the limit is charged",
			mockSetup: func(mockAccounts *mockpersistence.MockAccountRepository) {
				mockAccounts.EXPECT().GetByID(mock.Anything, accountID).Return(&entity.Account{
					ID:          accountID,
					Entitlement: entity.EntitlementFree,
					UsageCount:  10,
				}, nil)
				mockAccounts.EXPECT().ConsumeFreePrediction(mock.Anything, accountID, uint(100)).Return(true, nil)
			},
			expectedDecision: &Decision{
				Allowed:     true,
				Entitlement: entity.EntitlementFree,
				Remaining:   89,
			},
		},
		{
			name: "last free prediction reports zero remaining",
			mockSetup: func(mockAccounts *mockpersistence.MockAccountRepository) {
				mockAccounts.EXPECT().GetByID(mock.Anything, accountID).Return(&entity.Account{
					ID:          accountID,
					Entitlement: entity.EntitlementFree,
					UsageCount:  99,
				}, nil)
				mockAccounts.EXPECT().ConsumeFreePrediction(mock.Anything, accountID, uint(100)).Return(true, nil)
			},
			expectedDecision: &Decision{
				Allowed:     true,
				Entitlement: entity.EntitlementFree,
				Remaining:   0,
			},
		},
		{
			name: "exhausted free account is denied without mutation",
			mockSetup: func(mockAccounts *mockpersistence.MockAccountRepository) {
				mockAccounts.EXPECT().GetByID(mock.Anything, accountID).Return(&entity.Account{
					ID:          accountID,
					Entitlement: entity.EntitlementFree,
					UsageCount:  100,
				}, nil)
				mockAccounts.EXPECT().ConsumeFreePrediction(mock.Anything, accountID, uint(100)).Return(false, nil)
			},
			expectedDecision: &Decision{
				Allowed:     false,
				Entitlement: entity.EntitlementFree,
			},
		},
		{
			name: "pro account bypasses the gate entirely",
			mockSetup: func(mockAccounts *mockpersistence.MockAccountRepository) {
				mockAccounts.EXPECT().GetByID(mock.Anything, accountID).Return(&entity.Account{
					ID:          accountID,
					Entitlement: entity.EntitlementPro,
					UsageCount:  100,
				}, nil)
			},
			expectedDecision: &Decision{
				Allowed:     true,
				Entitlement: entity.EntitlementPro,
			},
		},
		{
			name: "unknown account",
			mockSetup: func(mockAccounts *mockpersistence.MockAccountRepository) {
				mockAccounts.EXPECT().GetByID(mock.Anything, accountID).Return(nil, errs.ErrAccountNotFound)
			},
			expectedError: errs.ErrAccountNotFound,
		},
		{
			name: "store failure on read fails closed",
			mockSetup: func(mockAccounts *mockpersistence.MockAccountRepository) {
				mockAccounts.EXPECT().GetByID(mock.Anything, accountID).Return(nil, errors.New("connection refused"))
			},
			expectedError: errs.ErrStorageUnavailable,
		},
		{
			name: "store failure on charge fails closed",
			mockSetup: func(mockAccounts *mockpersistence.MockAccountRepository) {
				mockAccounts.EXPECT().GetByID(mock.Anything, accountID).Return(&entity.Account{
					ID:          accountID,
					Entitlement: entity.EntitlementFree,
					UsageCount:  10,
				}, nil)
				mockAccounts.EXPECT().ConsumeFreePrediction(mock.Anything, accountID, uint(100)).Return(false, errors.New("connection refused"))
			},
			expectedError: errs.ErrStorageUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockAccounts := new(mockpersistence.MockAccountRepository)
			tc.mockSetup(mockAccounts)

			gate := NewGate(mockAccounts, quietLogger(), 100)
			decision, err := gate.TryConsume(context.Background(), accountID)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, decision)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedDecision, decision)
			}

			mockAccounts.AssertExpectations(t)
		})
	}
}

// The ceiling lives in the store's conditional update, not in the gate.
// With a store that only grants the first N charges, hammering the gate
// concurrently must never allow more than N predictions through.
func TestGate_TryConsume_ConcurrentCeiling(t *testing.T) {
	const accountID = uint64(42)
	const limit = uint(10)
	const attempts = 100

	var usage int64

	mockAccounts := new(mockpersistence.MockAccountRepository)
	mockAccounts.EXPECT().GetByID(mock.Anything, accountID).RunAndReturn(
		func(ctx context.Context, id uint64) (*entity.Account, error) {
			return &entity.Account{
				ID:          id,
				Entitlement: entity.EntitlementFree,
				UsageCount:  uint(atomic.LoadInt64(&usage)),
			}, nil
		})
	mockAccounts.EXPECT().ConsumeFreePrediction(mock.Anything, accountID, limit).RunAndReturn(
		func(ctx context.Context, id uint64, lim uint) (bool, error) {
			for {
				current := atomic.LoadInt64(&usage)
				if current >= int64(lim) {
					return false, nil
				}
				if atomic.CompareAndSwapInt64(&usage, current, current+1) {
					return true, nil
				}
			}
		})

	gate := NewGate(mockAccounts, quietLogger(), limit)

	var allowed int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			decision, err := gate.TryConsume(context.Background(), accountID)
			if err == nil && decision.Allowed {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(limit), allowed)
	assert.Equal(t, int64(limit), atomic.LoadInt64(&usage))
}
