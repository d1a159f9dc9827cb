package prediction

import (
	"context"
	"strings"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
	"github.com/scorepulse/scorepulse/internal/domain/port/persistence"
	"github.com/scorepulse/scorepulse/internal/domain/port/predict"
	"github.com/scorepulse/scorepulse/internal/domain/usecase/quota"
)

// Result is a scored prediction returned to the caller
type Result struct {
	HomeTeam    string
	AwayTeam    string
	HomeGoals   int
	AwayGoals   int
	Outcome     string
	Entitlement entity.Entitlement
	Remaining   uint
}

// Service runs score predictions behind the quota gate and keeps a
// per-account history of the results
type Service struct {
	gate         *quota.Gate
	predictor    predict.Predictor
	predictions  persistence.PredictionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a prediction service
func NewService(
	gate *quota.Gate,
	predictor predict.Predictor,
	predictions persistence.PredictionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		gate:         gate,
		predictor:    predictor,
		predictions:  predictions,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Predict checks the quota gate, runs the opaque prediction function for an
// allowed request, and records the result. A quota denial surfaces as a
// QuotaExceededError, distinct from storage or gateway failures, so callers
// can answer "upgrade required" rather than a generic error.
//
// Possible errors:
// - ErrInvalidTeamName: missing or identical team names
// - ErrAccountNotFound: the account does not exist
// - ErrQuotaExceeded: the free quota is used up
// - ErrStorageUnavailable: the store failed; the prediction does not run
func (s *Service) Predict(ctx context.Context, accountID uint64, homeTeam, awayTeam string) (*Result, error) {
	homeTeam = strings.TrimSpace(homeTeam)
	awayTeam = strings.TrimSpace(awayTeam)
	if homeTeam == "" || awayTeam == "" || strings.EqualFold(homeTeam, awayTeam) {
		return nil, errs.ErrInvalidTeamName
	}

	decision, err := s.gate.TryConsume(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, errs.NewQuotaExceededError(accountID, s.gate.Limit(), s.gate.Limit())
	}

	homeGoals, awayGoals := s.predictor.Predict(homeTeam, awayTeam)

	record := entity.NewPrediction(accountID, homeTeam, awayTeam, homeGoals, awayGoals, s.timeProvider)
	if err := s.predictions.Create(ctx, record); err != nil {
		// History is best effort; the quota was already charged and the
		// caller still gets their score.
		s.logger.Warn("Failed to record prediction history", map[string]any{
			"account_id": accountID,
			"home_team":  homeTeam,
			"away_team":  awayTeam,
			"error":      err.Error(),
		})
	}

	s.logger.Debug("Prediction served", map[string]any{
		"account_id": accountID,
		"home_team":  homeTeam,
		"away_team":  awayTeam,
		"score":      record.Score(),
	})

	return &Result{
		HomeTeam:    homeTeam,
		AwayTeam:    awayTeam,
		HomeGoals:   homeGoals,
		AwayGoals:   awayGoals,
		Outcome:     record.Outcome,
		Entitlement: decision.Entitlement,
		Remaining:   decision.Remaining,
	}, nil
}

// History returns the account's most recent predictions
func (s *Service) History(ctx context.Context, accountID uint64, limit int) ([]entity.Prediction, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.predictions.ListByAccount(ctx, accountID, limit)
}
