package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	mockcore "github.com/scorepulse/scorepulse/mocks/port/core"
	mockpersistence "github.com/scorepulse/scorepulse/mocks/port/persistence"
)

const testAccountID = uint64(42)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	accounts     *mockpersistence.MockAccountRepository
	transactions *mockpersistence.MockTransactionRepository
	timeProvider *mockcore.MockTimeProvider
	logger       *mockcore.MockLogger
}

func newServiceMocks() *serviceMocks {
	logger := new(mockcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	timeProvider := new(mockcore.MockTimeProvider)
	timeProvider.On("Now").Return(testNow).Maybe()

	return &serviceMocks{
		accounts:     new(mockpersistence.MockAccountRepository),
		transactions: new(mockpersistence.MockTransactionRepository),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (m *serviceMocks) service() *Service {
	return NewService(m.accounts, m.transactions, m.timeProvider, m.logger, 100, 15*time.Minute)
}

func TestService_Create(t *testing.T) {
	testCases := []struct {
		name          string
		email         string
		mockSetup     func(m *serviceMocks)
		expectedError error
	}{
		{
			name:  "valid email creates a free account",
			email: "fan@example.com",
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
					return a.Email == "fan@example.com" &&
						a.Entitlement == entity.EntitlementFree &&
						a.UsageCount == 0
				})).Return(nil)
			},
		},
		{
			name:          "invalid email never reaches the store",
			email:         "not-an-email",
			mockSetup:     func(m *serviceMocks) {},
			expectedError: errs.ErrInvalidEmail,
		},
		{
			name:  "duplicate email",
			email: "fan@example.com",
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateAccount)
			},
			expectedError: errs.ErrDuplicateAccount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks()
			tc.mockSetup(m)

			account, err := m.service().Create(context.Background(), tc.email)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, account)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "fan@example.com", account.Email)
			}

			m.accounts.AssertExpectations(t)
		})
	}
}

func TestService_Get(t *testing.T) {
	t.Run("returns the profile with recent transactions", func(t *testing.T) {
		m := newServiceMocks()
		m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(&entity.Account{
			ID:          testAccountID,
			Email:       "fan@example.com",
			Entitlement: entity.EntitlementFree,
			UsageCount:  30,
		}, nil)
		transactions := []entity.Transaction{
			{Key: "ws_CO_2", AccountID: testAccountID, Status: entity.StatusCompleted},
			{Key: "ws_CO_1", AccountID: testAccountID, Status: entity.StatusFailed},
		}
		m.transactions.EXPECT().ListByAccount(mock.Anything, testAccountID, 10).Return(transactions, nil)

		profile, err := m.service().Get(context.Background(), testAccountID)

		require.NoError(t, err)
		assert.Equal(t, testAccountID, profile.Account.ID)
		assert.Equal(t, uint(70), profile.RemainingFree)
		assert.Equal(t, transactions, profile.Transactions)
	})

	t.Run("unknown account", func(t *testing.T) {
		m := newServiceMocks()
		m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(nil, errs.ErrAccountNotFound)

		profile, err := m.service().Get(context.Background(), testAccountID)

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
		assert.Nil(t, profile)
	})

	t.Run("transaction listing failure", func(t *testing.T) {
		m := newServiceMocks()
		m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(&entity.Account{ID: testAccountID}, nil)
		m.transactions.EXPECT().ListByAccount(mock.Anything, testAccountID, 10).Return(nil, errors.New("connection refused"))

		profile, err := m.service().Get(context.Background(), testAccountID)

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.Nil(t, profile)
	})
}

func TestService_Stats(t *testing.T) {
	t.Run("gathers the dashboard numbers", func(t *testing.T) {
		m := newServiceMocks()
		cutoff := testNow.Add(-15 * time.Minute)
		recent := []entity.Transaction{{Key: "ws_CO_9", Status: entity.StatusCompleted}}

		m.accounts.EXPECT().Count(mock.Anything).Return(250, nil)
		m.accounts.EXPECT().CountByEntitlement(mock.Anything, entity.EntitlementPro).Return(40, nil)
		m.transactions.EXPECT().SumCompletedAmount(mock.Anything).Return(20000, nil)
		m.transactions.EXPECT().CountPendingOlderThan(mock.Anything, cutoff).Return(0, nil)
		m.transactions.EXPECT().Recent(mock.Anything, 10).Return(recent, nil)

		stats, err := m.service().Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(250), stats.TotalAccounts)
		assert.Equal(t, int64(40), stats.ProAccounts)
		assert.Equal(t, int64(20000), stats.CompletedRevenue)
		assert.Equal(t, int64(0), stats.StalePendingCount)
		assert.Equal(t, recent, stats.RecentTransactions)
	})

	t.Run("stale pending transactions raise a warning", func(t *testing.T) {
		m := newServiceMocks()
		cutoff := testNow.Add(-15 * time.Minute)

		m.accounts.EXPECT().Count(mock.Anything).Return(250, nil)
		m.accounts.EXPECT().CountByEntitlement(mock.Anything, entity.EntitlementPro).Return(40, nil)
		m.transactions.EXPECT().SumCompletedAmount(mock.Anything).Return(20000, nil)
		m.transactions.EXPECT().CountPendingOlderThan(mock.Anything, cutoff).Return(3, nil)
		m.transactions.EXPECT().Recent(mock.Anything, 10).Return(nil, nil)

		warned := new(mockcore.MockLogger)
		warned.On("Warn", "Stale pending transactions detected", mock.Anything).Once()
		m.logger = warned

		stats, err := m.service().Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.StalePendingCount)
		warned.AssertExpectations(t)
	})

	t.Run("count failure surfaces as storage unavailable", func(t *testing.T) {
		m := newServiceMocks()
		m.accounts.EXPECT().Count(mock.Anything).Return(0, errors.New("connection refused"))

		stats, err := m.service().Stats(context.Background())

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.Nil(t, stats)
	})
}
