package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	"github.com/scorepulse/scorepulse/internal/domain/port/gateway"
	paymentUseCase "github.com/scorepulse/scorepulse/internal/domain/usecase/payment"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/api/dto"
	mockcore "github.com/scorepulse/scorepulse/mocks/port/core"
	mockgateway "github.com/scorepulse/scorepulse/mocks/port/gateway"
	mockpersistence "github.com/scorepulse/scorepulse/mocks/port/persistence"
)

const (
	testAccountID = uint64(42)
	testKey       = "ws_CO_01062025120000123456"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type paymentHandlerMocks struct {
	uow          *mockpersistence.MockUnitOfWork
	accounts     *mockpersistence.MockAccountRepository
	transactions *mockpersistence.MockTransactionRepository
	gateway      *mockgateway.MockPaymentGateway
}

func newPaymentHandler() (*PaymentHandler, *paymentHandlerMocks) {
	gin.SetMode(gin.TestMode)

	logger := new(mockcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	timeProvider := new(mockcore.MockTimeProvider)
	timeProvider.On("Now").Return(testNow).Maybe()

	m := &paymentHandlerMocks{
		uow:          new(mockpersistence.MockUnitOfWork),
		accounts:     new(mockpersistence.MockAccountRepository),
		transactions: new(mockpersistence.MockTransactionRepository),
		gateway:      new(mockgateway.MockPaymentGateway),
	}
	service := paymentUseCase.NewService(m.uow, m.accounts, m.transactions, m.gateway, timeProvider, logger, 0)
	return NewPaymentHandler(service, logger), m
}

func performRequest(handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	router := gin.New()
	router.POST("/payment/webhook", handler)
	router.POST("/payment/initiate", handler)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	return recorder
}

func callbackBody(key string, resultCode int) []byte {
	var envelope dto.CallbackEnvelope
	envelope.Body.StkCallback.MerchantRequestID = "29115-34620561-1"
	envelope.Body.StkCallback.CheckoutRequestID = key
	envelope.Body.StkCallback.ResultCode = resultCode
	envelope.Body.StkCallback.ResultDesc = "The service request is processed successfully."

	body, _ := json.Marshal(envelope)
	return body
}

func assertAck(t *testing.T, recorder *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusOK, recorder.Code)

	var ack dto.CallbackAck
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &ack))
	assert.Equal(t, 0, ack.ResultCode)
	assert.Equal(t, "Accepted", ack.ResultDesc)
}

func TestPaymentHandler_Webhook_SuccessfulConfirmation(t *testing.T) {
	handler, m := newPaymentHandler()
	txCtx := context.Background()

	m.transactions.EXPECT().GetByKey(mock.Anything, testKey).Return(&entity.Transaction{
		Key:       testKey,
		AccountID: testAccountID,
		Status:    entity.StatusPending,
	}, nil)
	m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil)
	txTransactions := new(mockpersistence.MockTransactionRepository)
	txAccounts := new(mockpersistence.MockAccountRepository)
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(txTransactions)
	m.uow.EXPECT().GetAccountRepository(mock.Anything).Return(txAccounts)
	txTransactions.EXPECT().MarkCompletedIfPending(mock.Anything, testKey, testNow).Return(true, nil)
	txAccounts.EXPECT().MarkPro(mock.Anything, testAccountID, mock.Anything).Return(nil)
	m.uow.EXPECT().Commit(mock.Anything).Return(nil)

	recorder := performRequest(handler.Webhook, callbackBody(testKey, 0))

	assertAck(t, recorder)
	m.uow.AssertExpectations(t)
	txTransactions.AssertExpectations(t)
	txAccounts.AssertExpectations(t)
}

func TestPaymentHandler_Webhook_AlwaysAcknowledges(t *testing.T) {
	testCases := []struct {
		name      string
		body      []byte
		mockSetup func(m *paymentHandlerMocks)
	}{
		{
			name:      "unparseable body",
			body:      []byte("not json at all"),
			mockSetup: func(m *paymentHandlerMocks) {},
		},
		{
			name:      "missing checkout request id",
			body:      callbackBody("", 0),
			mockSetup: func(m *paymentHandlerMocks) {},
		},
		{
			name: "unknown transaction key",
			body: callbackBody(testKey, 0),
			mockSetup: func(m *paymentHandlerMocks) {
				m.transactions.EXPECT().GetByKey(mock.Anything, testKey).Return(nil, errs.ErrTransactionNotFound)
			},
		},
		{
			name: "failed payment confirmation",
			body: callbackBody(testKey, 1032),
			mockSetup: func(m *paymentHandlerMocks) {
				m.transactions.EXPECT().GetByKey(mock.Anything, testKey).Return(&entity.Transaction{
					Key:       testKey,
					AccountID: testAccountID,
					Status:    entity.StatusPending,
				}, nil)
				m.transactions.EXPECT().MarkFailedIfPending(mock.Anything, testKey, testNow).Return(true, nil)
			},
		},
		{
			name: "storage failure during reconciliation",
			body: callbackBody(testKey, 0),
			mockSetup: func(m *paymentHandlerMocks) {
				m.transactions.EXPECT().GetByKey(mock.Anything, testKey).Return(nil, errs.ErrStorageUnavailable)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, m := newPaymentHandler()
			tc.mockSetup(m)

			recorder := performRequest(handler.Webhook, tc.body)

			assertAck(t, recorder)
			m.transactions.AssertExpectations(t)
		})
	}
}

func TestPaymentHandler_Initiate(t *testing.T) {
	initiate := func(handler *PaymentHandler, body any) *httptest.ResponseRecorder {
		router := gin.New()
		router.POST("/payment/initiate", handler.Initiate)

		payload, _ := json.Marshal(body)
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payment/initiate", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, req)
		return recorder
	}

	t.Run("accepted push returns 202 with the transaction key", func(t *testing.T) {
		handler, m := newPaymentHandler()
		m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(&entity.Account{
			ID:          testAccountID,
			Entitlement: entity.EntitlementFree,
		}, nil)
		m.gateway.EXPECT().RequestPush(mock.Anything, mock.Anything).Return(&gateway.PushResponse{
			CheckoutRequestID: testKey,
		}, nil)
		m.transactions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		recorder := initiate(handler, dto.InitiateRequest{
			AccountID:   testAccountID,
			PhoneNumber: "254712345678",
			Amount:      500,
		})

		assert.Equal(t, http.StatusAccepted, recorder.Code)

		var resp dto.InitiateResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, testKey, resp.CheckoutRequestID)
		assert.Equal(t, "PENDING", resp.Status)
	})

	t.Run("unknown account returns 404", func(t *testing.T) {
		handler, m := newPaymentHandler()
		m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(nil, errs.ErrAccountNotFound)

		recorder := initiate(handler, dto.InitiateRequest{
			AccountID:   testAccountID,
			PhoneNumber: "254712345678",
			Amount:      500,
		})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("gateway rejection returns 502", func(t *testing.T) {
		handler, m := newPaymentHandler()
		m.accounts.EXPECT().GetByID(mock.Anything, testAccountID).Return(&entity.Account{ID: testAccountID}, nil)
		m.gateway.EXPECT().RequestPush(mock.Anything, mock.Anything).Return(nil,
			errs.NewGatewayError("push", "Invalid PhoneNumber", errs.ErrGatewayRejected))

		recorder := initiate(handler, dto.InitiateRequest{
			AccountID:   testAccountID,
			PhoneNumber: "254712345678",
			Amount:      500,
		})

		assert.Equal(t, http.StatusBadGateway, recorder.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeGatewayRejected, resp.Code)
	})

	t.Run("missing account id fails binding with 400", func(t *testing.T) {
		handler, _ := newPaymentHandler()

		recorder := initiate(handler, map[string]any{
			"phoneNumber": "254712345678",
			"amount":      500,
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
