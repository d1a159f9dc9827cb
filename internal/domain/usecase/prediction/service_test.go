package prediction

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
	"github.com/scorepulse/scorepulse/internal/domain/usecase/quota"
	mockcore "github.com/scorepulse/scorepulse/mocks/port/core"
	mockpersistence "github.com/scorepulse/scorepulse/mocks/port/persistence"
	mockpredict "github.com/scorepulse/scorepulse/mocks/port/predict"
)

const testAccountID = uint64(42)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	accounts     *mockpersistence.MockAccountRepository
	predictor    *mockpredict.MockPredictor
	predictions  *mockpersistence.MockPredictionRepository
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
		predictor:    new(mockpredict.MockPredictor),
		predictions:  new(mockpersistence.MockPredictionRepository),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (m *serviceMocks) service(limit uint) *Service {
	gate := quota.NewGate(m.accounts, m.logger, limit)
	return NewService(gate, m.predictor, m.predictions, m.timeProvider, m.logger)
}

func freeAccount(usage uint) *entity.Account {
	return &entity.Account{
		ID:          testAccountID,
		Entitlement: entity.EntitlementFree,
		UsageCount:  usage,
	}
}

func TestService_Predict(t *testing.T) {
	testCases := []struct {
		name           string
		homeTeam       string
		awayTeam       string
		mockSetup      func(m *serviceMocks)
		expectedResult *Result
		expectedError  error
	}{
		{
			name:     "free account gets a scored prediction",
			homeTeam: "Arsenal",
			awayTeam: "Chelsea",
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(freeAccount(10), nil)
				m.accounts.EXPECT().ConsumeFreePrediction(mock.Anything, testAccountID, uint(100)).Return(true, nil)
				m.predictor.EXPECT().Predict("Arsenal", "Chelsea").Return(2, 1)
				m.predictions.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Prediction) bool {
					return p.AccountID == testAccountID && p.HomeGoals == 2 && p.AwayGoals == 1
				})).Return(nil)
			},
			expectedResult: &Result{
				HomeTeam:    "Arsenal",
				AwayTeam:    "Chelsea",
				HomeGoals:   2,
				AwayGoals:   1,
				Outcome:     "Arsenal Win",
				Entitlement: entity.EntitlementFree,
				Remaining:   89,
			},
		},
		{
			name:     "team names are trimmed before use",
			homeTeam: "  Arsenal  ",
			awayTeam: " Chelsea ",
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(freeAccount(0), nil)
				m.accounts.EXPECT().ConsumeFreePrediction(mock.Anything, testAccountID, uint(100)).Return(true, nil)
				m.predictor.EXPECT().Predict("Arsenal", "Chelsea").Return(1, 1)
				m.predictions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
			},
			expectedResult: &Result{
				HomeTeam:    "Arsenal",
				AwayTeam:    "Chelsea",
				HomeGoals:   1,
				AwayGoals:   1,
				Outcome:     "Draw",
				Entitlement: entity.EntitlementFree,
				Remaining:   99,
			},
		},
		{
			name:     "pro account bypasses the quota",
			homeTeam: "Arsenal",
			awayTeam: "Chelsea",
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(&entity.Account{
					ID:          testAccountID,
					Entitlement: entity.EntitlementPro,
					UsageCount:  100,
				}, nil)
				m.predictor.EXPECT().Predict("Arsenal", "Chelsea").Return(0, 3)
				m.predictions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
			},
			expectedResult: &Result{
				HomeTeam:    "Arsenal",
				AwayTeam:    "Chelsea",
				HomeGoals:   0,
				AwayGoals:   3,
				Outcome:     "Chelsea Win",
				Entitlement: entity.EntitlementPro,
				Remaining:   0,
			},
		},
		{
			name:          "empty home team",
			homeTeam:      "  ",
			awayTeam:      "Chelsea",
			mockSetup:     func(m *serviceMocks) {},
			expectedError: errs.ErrInvalidTeamName,
		},
		{
			name:          "identical teams regardless of case",
			homeTeam:      "Arsenal",
			awayTeam:      "arsenal",
			mockSetup:     func(m *serviceMocks) {},
			expectedError: errs.ErrInvalidTeamName,
		},
		{
			name:     "exhausted quota denies with an upgrade signal",
			homeTeam: "Arsenal",
			awayTeam: "Chelsea",
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(freeAccount(100), nil)
				m.accounts.EXPECT().ConsumeFreePrediction(mock.Anything, testAccountID, uint(100)).Return(false, nil)
			},
			expectedError: errs.ErrQuotaExceeded,
		},
		{
			name:     "unknown account",
			homeTeam: "Arsenal",
			awayTeam: "Chelsea",
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(nil, errs.ErrAccountNotFound)
			},
			expectedError: errs.ErrAccountNotFound,
		},
		{
			name:     "store failure fails closed without running the predictor",
			homeTeam: "Arsenal",
			awayTeam: "Chelsea",
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(nil, errors.New("connection refused"))
			},
			expectedError: errs.ErrStorageUnavailable,
		},
		{
			name:     "history write failure still returns the score",
			homeTeam: "Arsenal",
			awayTeam: "Chelsea",
			mockSetup: func(m *serviceMocks) {
				m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(freeAccount(10), nil)
				m.accounts.EXPECT().ConsumeFreePrediction(mock.Anything, testAccountID, uint(100)).Return(true, nil)
				m.predictor.EXPECT().Predict("Arsenal", "Chelsea").Return(2, 0)
				m.predictions.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection refused"))
			},
			expectedResult: &Result{
				HomeTeam:    "Arsenal",
				AwayTeam:    "Chelsea",
				HomeGoals:   2,
				AwayGoals:   0,
				Outcome:     "Arsenal Win",
				Entitlement: entity.EntitlementFree,
				Remaining:   89,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks()
			tc.mockSetup(m)

			result, err := m.service(100).Predict(context.Background(), testAccountID, tc.homeTeam, tc.awayTeam)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedResult, result)
			}

			m.accounts.AssertExpectations(t)
			m.predictor.AssertExpectations(t)
			m.predictions.AssertExpectations(t)
		})
	}
}

func TestService_History(t *testing.T) {
	t.Run("returns recent predictions", func(t *testing.T) {
		m := newServiceMocks()
		expected := []entity.Prediction{
			{ID: 2, AccountID: testAccountID, HomeTeam: "Arsenal", AwayTeam: "Chelsea"},
			{ID: 1, AccountID: testAccountID, HomeTeam: "Liverpool", AwayTeam: "Everton"},
		}
		m.predictions.EXPECT().ListByAccount(mock.Anything, testAccountID, 5).Return(expected, nil)

		history, err := m.service(100).History(context.Background(), testAccountID, 5)

		require.NoError(t, err)
		assert.Equal(t, expected, history)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		m := newServiceMocks()
		m.predictions.EXPECT().ListByAccount(mock.Anything, testAccountID, 20).Return(nil, nil)

		_, err := m.service(100).History(context.Background(), testAccountID, 0)

		require.NoError(t, err)
		m.predictions.AssertExpectations(t)
	})
}
