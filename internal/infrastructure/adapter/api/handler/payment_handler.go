package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/scorepulse/scorepulse/internal/domain/error"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
	paymentUseCase "github.com/scorepulse/scorepulse/internal/domain/usecase/payment"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/api/dto"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *paymentUseCase.Service
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentService *paymentUseCase.Service, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// Initiate handles the POST /payment/initiate endpoint
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req dto.InitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid payment initiate request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	checkoutRequestID, err := h.paymentService.Initiate(c.Request.Context(), req.AccountID, req.PhoneNumber, req.Amount)
	if err != nil {
		status, message := initiateErrorStatus(err)
		h.logger.Error("Payment initiation failed", map[string]any{
			"account_id": req.AccountID,
			"error":      err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusAccepted, dto.InitiateResponse{
		CheckoutRequestID: checkoutRequestID,
		Status:            "PENDING",
	})
}

// Webhook handles the POST /payment/webhook endpoint. The gateway retries
// anything that doesn't look like a success, so every reachable path answers
// the fixed acknowledgement body with HTTP 200.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	ack := dto.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"}

	var envelope dto.CallbackEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		h.logger.Warn("Unparseable gateway callback", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusOK, ack)
		return
	}

	callback := envelope.Body.StkCallback
	if callback.CheckoutRequestID == "" {
		h.logger.Warn("Gateway callback without a checkout request id", nil)
		c.JSON(http.StatusOK, ack)
		return
	}

	outcome := h.paymentService.Reconcile(c.Request.Context(), callback.CheckoutRequestID, callback.ResultCode)
	h.logger.Info("Gateway callback reconciled", map[string]any{
		"checkout_request_id": callback.CheckoutRequestID,
		"result_code":         callback.ResultCode,
		"result_desc":         callback.ResultDesc,
		"outcome":             string(outcome),
	})

	c.JSON(http.StatusOK, ack)
}

// initiateErrorStatus maps initiation errors onto HTTP status codes
func initiateErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domainerr.ErrAccountNotFound):
		return http.StatusNotFound, "Account not found"
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidPhoneNumber),
		errors.Is(err, domainerr.ErrInvalidAccountID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domainerr.ErrGatewayRejected):
		return http.StatusBadGateway, "Payment gateway rejected the request"
	case errors.Is(err, domainerr.ErrGatewayAuth),
		errors.Is(err, domainerr.ErrGatewayUnreachable):
		return http.StatusBadGateway, "Payment gateway unavailable"
	case errors.Is(err, domainerr.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
