package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scorepulse/scorepulse/internal/domain/entity"
	domainerr "github.com/scorepulse/scorepulse/internal/domain/error"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
	accountUseCase "github.com/scorepulse/scorepulse/internal/domain/usecase/account"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/api/dto"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService *accountUseCase.Service
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountService *accountUseCase.Service, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Create handles the POST /account endpoint
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	account, err := h.accountService.Create(c.Request.Context(), req.Email)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Internal server error"
		switch {
		case errors.Is(err, domainerr.ErrInvalidEmail):
			status = http.StatusBadRequest
			message = err.Error()
		case errors.Is(err, domainerr.ErrDuplicateAccount):
			status = http.StatusConflict
			message = "An account with this email already exists"
		case errors.Is(err, domainerr.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
			message = "Service temporarily unavailable"
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.AccountResponse{
		AccountID:     account.ID,
		Email:         account.Email,
		Entitlement:   string(account.Entitlement),
		UsageCount:    account.UsageCount,
		RemainingFree: account.RemainingFree(h.accountService.FreeLimit()),
	})
}

// Get handles the GET /account/:accountId endpoint
func (h *AccountHandler) Get(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("accountId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountID),
			Message: "Invalid account ID format",
		})
		return
	}

	profile, err := h.accountService.Get(c.Request.Context(), accountID)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Internal server error"
		switch {
		case errors.Is(err, domainerr.ErrAccountNotFound):
			status = http.StatusNotFound
			message = "Account not found"
		case errors.Is(err, domainerr.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
			message = "Service temporarily unavailable"
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	response := dto.AccountResponse{
		AccountID:     profile.Account.ID,
		Email:         profile.Account.Email,
		Entitlement:   string(profile.Account.Entitlement),
		UsageCount:    profile.Account.UsageCount,
		RemainingFree: profile.RemainingFree,
		Transactions:  transactionsToDTO(profile.Transactions),
	}
	if profile.Account.SubscriptionEnd != nil {
		response.SubscriptionEnd = profile.Account.SubscriptionEnd.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, response)
}

// Stats handles the GET /admin/stats endpoint
func (h *AccountHandler) Stats(c *gin.Context) {
	stats, err := h.accountService.Stats(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		message := "Internal server error"
		if errors.Is(err, domainerr.ErrStorageUnavailable) {
			status = http.StatusServiceUnavailable
			message = "Service temporarily unavailable"
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalAccounts:      stats.TotalAccounts,
		ProAccounts:        stats.ProAccounts,
		CompletedRevenue:   stats.CompletedRevenue,
		StalePendingCount:  stats.StalePendingCount,
		RecentTransactions: transactionsToDTO(stats.RecentTransactions),
	})
}

// transactionsToDTO converts ledger entries to their API representation
func transactionsToDTO(transactions []entity.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		item := dto.TransactionResponse{
			CheckoutRequestID: t.Key,
			AccountID:         t.AccountID,
			PhoneNumber:       t.PhoneNumber,
			Amount:            t.Amount,
			Status:            string(t.Status),
			CreatedAt:         t.CreatedAt.Format(time.RFC3339),
		}
		if t.CompletedAt != nil {
			item.CompletedAt = t.CompletedAt.Format(time.RFC3339)
		}
		out = append(out, item)
	}
	return out
}
