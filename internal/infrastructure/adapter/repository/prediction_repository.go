package repository

import (
	"context"
	"fmt"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PredictionRepository implements persistence.PredictionRepository using GORM
type PredictionRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewPredictionRepository creates a new PredictionRepository instance
func NewPredictionRepository(db *gorm.DB, logger coreport.Logger) *PredictionRepository {
	return &PredictionRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

func (r *PredictionRepository) storageError(operation string, err error, fields map[string]any) error {
	fields["error"] = err.Error()
	if r.errorMapper.IsTransient(err) {
		r.logger.Warn(fmt.Sprintf("Transient database error when %s", operation), fields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return r.errorMapper.Storage(err)
}

// Create saves a prediction record and assigns its ID
func (r *PredictionRepository) Create(ctx context.Context, prediction *entity.Prediction) error {
	predictionModel := model.Prediction{
		AccountID: prediction.AccountID,
		HomeTeam:  prediction.HomeTeam,
		AwayTeam:  prediction.AwayTeam,
		HomeGoals: prediction.HomeGoals,
		AwayGoals: prediction.AwayGoals,
		CreatedAt: prediction.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&predictionModel)
	if result.Error != nil {
		return r.storageError("creating prediction", result.Error, map[string]any{
			"account_id": prediction.AccountID,
		})
	}

	prediction.ID = predictionModel.ID
	return nil
}

// ListByAccount returns the account's most recent predictions
func (r *PredictionRepository) ListByAccount(ctx context.Context, accountID uint64, limit int) ([]entity.Prediction, error) {
	var predictionModels []model.Prediction
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at desc").
		Limit(limit).
		Find(&predictionModels)

	if result.Error != nil {
		return nil, r.storageError("listing predictions", result.Error, map[string]any{
			"account_id": accountID,
		})
	}

	predictions := make([]entity.Prediction, 0, len(predictionModels))
	for i := range predictionModels {
		pm := &predictionModels[i]
		predictions = append(predictions, entity.Prediction{
			ID:        pm.ID,
			AccountID: pm.AccountID,
			HomeTeam:  pm.HomeTeam,
			AwayTeam:  pm.AwayTeam,
			HomeGoals: pm.HomeGoals,
			AwayGoals: pm.AwayGoals,
			Outcome:   entity.OutcomeLabel(pm.HomeTeam, pm.AwayTeam, pm.HomeGoals, pm.AwayGoals),
			CreatedAt: pm.CreatedAt,
		})
	}
	return predictions, nil
}
