package persistence

import (
	"context"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
)

// PredictionRepository stores per-account prediction history
type PredictionRepository interface {
	// Create saves a prediction record and assigns its ID
	Create(ctx context.Context, prediction *entity.Prediction) error

	// ListByAccount returns the account's most recent predictions
	ListByAccount(ctx context.Context, accountID uint64, limit int) ([]entity.Prediction, error)
}
