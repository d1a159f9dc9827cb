package payment

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
	"github.com/scorepulse/scorepulse/internal/domain/port/gateway"
	mockcore "github.com/scorepulse/scorepulse/mocks/port/core"
	mockgateway "github.com/scorepulse/scorepulse/mocks/port/gateway"
	mockpersistence "github.com/scorepulse/scorepulse/mocks/port/persistence"
)

const (
	testAccountID = uint64(42)
	testPhone     = "254712345678"
	testAmount    = int64(500)
	testKey       = "ws_CO_01062025120000123456"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	uow          *mockpersistence.MockUnitOfWork
	accounts     *mockpersistence.MockAccountRepository
	transactions *mockpersistence.MockTransactionRepository
	gateway      *mockgateway.MockPaymentGateway
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
		uow:          new(mockpersistence.MockUnitOfWork),
		accounts:     new(mockpersistence.MockAccountRepository),
		transactions: new(mockpersistence.MockTransactionRepository),
		gateway:      new(mockgateway.MockPaymentGateway),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (m *serviceMocks) service() *Service {
	return NewService(m.uow, m.accounts, m.transactions, m.gateway, m.timeProvider, m.logger, 0)
}

func (m *serviceMocks) assertExpectations(t *testing.T) {
	m.uow.AssertExpectations(t)
	m.accounts.AssertExpectations(t)
	m.transactions.AssertExpectations(t)
	m.gateway.AssertExpectations(t)
}

func freeAccount() *entity.Account {
	return &entity.Account{
		ID:          testAccountID,
		Email:       "fan@example.com",
		Entitlement: entity.EntitlementFree,
		UsageCount:  100,
	}
}

func TestService_Initiate(t *testing.T) {
	testCases := []struct {
		name          string
		accountID     uint64
		phoneNumber   string
		amount        int64
		mockSetup     func(m *serviceMocks)
		expectedKey   string
		expectedError error
	}{
		{
			name:        "successful initiation records a pending transaction",
			accountID:   testAccountID,
			phoneNumber: testPhone,
			amount:      testAmount,
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(freeAccount(), nil)
				m.gateway.EXPECT().RequestPush(mock.Anything, gateway.PushRequest{
					AccountID:   testAccountID,
					PhoneNumber: testPhone,
					Amount:      testAmount,
				}).Return(&gateway.PushResponse{CheckoutRequestID: testKey}, nil)
				m.transactions.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
					return txn.Key == testKey &&
						txn.AccountID == testAccountID &&
						txn.Amount == testAmount &&
						txn.Status == entity.StatusPending
				})).Return(nil)
			},
			expectedKey: testKey,
		},
		{
			name:          "zero amount is rejected before any call",
			accountID:     testAccountID,
			phoneNumber:   testPhone,
			amount:        0,
			mockSetup:     func(m *serviceMocks) {},
			expectedError: errs.ErrInvalidAmount,
		},
		{
			name:          "empty phone number is rejected before any call",
			accountID:     testAccountID,
			phoneNumber:   "",
			amount:        testAmount,
			mockSetup:     func(m *serviceMocks) {},
			expectedError: errs.ErrInvalidPhoneNumber,
		},
		{
			name:        "unknown account",
			accountID:   testAccountID,
			phoneNumber: testPhone,
			amount:      testAmount,
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(nil, errs.ErrAccountNotFound)
			},
			expectedError: errs.ErrAccountNotFound,
		},
		{
			name:        "gateway rejection creates no transaction",
			accountID:   testAccountID,
			phoneNumber: testPhone,
			amount:      testAmount,
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(freeAccount(), nil)
				m.gateway.EXPECT().RequestPush(mock.Anything, mock.Anything).Return(nil,
					errs.NewGatewayError("push", "Invalid PhoneNumber", errs.ErrGatewayRejected))
			},
			expectedError: errs.ErrGatewayRejected,
		},
		{
			name:        "gateway unreachable creates no transaction",
			accountID:   testAccountID,
			phoneNumber: testPhone,
			amount:      testAmount,
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(freeAccount(), nil)
				m.gateway.EXPECT().RequestPush(mock.Anything, mock.Anything).Return(nil,
					errs.NewGatewayError("push", "", errs.ErrGatewayUnreachable))
			},
			expectedError: errs.ErrGatewayUnreachable,
		},
		{
			name:        "gateway returning an empty key stores nothing",
			accountID:   testAccountID,
			phoneNumber: testPhone,
			amount:      testAmount,
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(freeAccount(), nil)
				m.gateway.EXPECT().RequestPush(mock.Anything, mock.Anything).Return(&gateway.PushResponse{}, nil)
			},
			expectedError: errs.ErrInvalidTransactionKey,
		},
		{
			name:        "replayed gateway key resolves to the existing transaction",
			accountID:   testAccountID,
			phoneNumber: testPhone,
			amount:      testAmount,
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(freeAccount(), nil)
				m.gateway.EXPECT().RequestPush(mock.Anything, mock.Anything).Return(&gateway.PushResponse{CheckoutRequestID: testKey}, nil)
				m.transactions.EXPECT().Create(mock.Anything, mock.Anything).Return(
					errs.NewDuplicateTransactionError(testKey, testAccountID))
			},
			expectedKey: testKey,
		},
		{
			name:        "ledger write failure after gateway acceptance",
			accountID:   testAccountID,
			phoneNumber: testPhone,
			amount:      testAmount,
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(freeAccount(), nil)
				m.gateway.EXPECT().RequestPush(mock.Anything, mock.Anything).Return(&gateway.PushResponse{CheckoutRequestID: testKey}, nil)
				m.transactions.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection refused"))
			},
			expectedError: errs.ErrStorageUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks()
			tc.mockSetup(m)

			key, err := m.service().Initiate(context.Background(), tc.accountID, tc.phoneNumber, tc.amount)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Empty(t, key)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedKey, key)
			}

			m.assertExpectations(t)
		})
	}
}

// The gateway must answer before anything is written: a transaction row
// without an accepted push behind it could never be reconciled.
func TestService_Initiate_GatewayAcksBeforeLedgerWrite(t *testing.T) {
	m := newServiceMocks()

	var pushed bool
	m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(freeAccount(), nil)
	m.gateway.EXPECT().RequestPush(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, req gateway.PushRequest) (*gateway.PushResponse, error) {
			pushed = true
			return &gateway.PushResponse{CheckoutRequestID: testKey}, nil
		})
	m.transactions.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, txn *entity.Transaction) error {
			assert.True(t, pushed, "ledger write happened before the gateway acknowledged")
			return nil
		})

	key, err := m.service().Initiate(context.Background(), testAccountID, testPhone, testAmount)

	require.NoError(t, err)
	assert.Equal(t, testKey, key)
	m.assertExpectations(t)
}
