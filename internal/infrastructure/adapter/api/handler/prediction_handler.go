package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerr "github.com/scorepulse/scorepulse/internal/domain/error"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
	predictionUseCase "github.com/scorepulse/scorepulse/internal/domain/usecase/prediction"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/api/dto"
)

// PredictionHandler handles prediction-related HTTP requests
type PredictionHandler struct {
	predictionService *predictionUseCase.Service
	logger            coreport.Logger
}

// NewPredictionHandler creates a new prediction handler instance
func NewPredictionHandler(predictionService *predictionUseCase.Service, logger coreport.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		logger:            logger,
	}
}

// Predict handles the POST /prediction endpoint
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid prediction request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.predictionService.Predict(c.Request.Context(), req.AccountID, req.HomeTeam, req.AwayTeam)
	if err != nil {
		status, message := predictionErrorStatus(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.PredictionResponse{
		HomeTeam:      result.HomeTeam,
		AwayTeam:      result.AwayTeam,
		HomeGoals:     result.HomeGoals,
		AwayGoals:     result.AwayGoals,
		Score:         strconv.Itoa(result.HomeGoals) + " - " + strconv.Itoa(result.AwayGoals),
		Outcome:       result.Outcome,
		Entitlement:   string(result.Entitlement),
		RemainingFree: result.Remaining,
	})
}

// History handles the GET /account/:accountId/predictions endpoint
func (h *PredictionHandler) History(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("accountId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountID),
			Message: "Invalid account ID format",
		})
		return
	}

	limit := 0
	if limitParam := c.Query("limit"); limitParam != "" {
		limit, _ = strconv.Atoi(limitParam)
	}

	predictions, err := h.predictionService.History(c.Request.Context(), accountID, limit)
	if err != nil {
		status, message := predictionErrorStatus(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	items := make([]dto.PredictionHistoryItem, 0, len(predictions))
	for i := range predictions {
		p := &predictions[i]
		items = append(items, dto.PredictionHistoryItem{
			HomeTeam:  p.HomeTeam,
			AwayTeam:  p.AwayTeam,
			Score:     p.Score(),
			Outcome:   p.Outcome,
			CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(http.StatusOK, dto.PredictionHistoryResponse{
		AccountID:   accountID,
		Predictions: items,
	})
}

// predictionErrorStatus maps prediction errors onto HTTP status codes.
// A quota denial answers 402 so clients can prompt the PRO upgrade.
func predictionErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domainerr.ErrQuotaExceeded):
		return http.StatusPaymentRequired, "Free prediction quota exceeded; upgrade to PRO"
	case errors.Is(err, domainerr.ErrAccountNotFound):
		return http.StatusNotFound, "Account not found"
	case errors.Is(err, domainerr.ErrInvalidTeamName):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domainerr.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
