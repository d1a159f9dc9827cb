package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

// modelToEntity converts an account model to an entity
func (r *AccountRepository) modelToEntity(accountModel *model.Account) *entity.Account {
	return &entity.Account{
		ID:              accountModel.ID,
		Email:           accountModel.Email,
		Entitlement:     entity.Entitlement(accountModel.Entitlement),
		UsageCount:      accountModel.UsageCount,
		SubscriptionEnd: accountModel.SubscriptionEnd,
		CreatedAt:       accountModel.CreatedAt,
		UpdatedAt:       accountModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, accountID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Account not found", map[string]any{
			"account_id": accountID,
		})
		return errs.ErrAccountNotFound
	}

	if r.errorMapper.IsDuplicateKey(err) {
		r.logger.Warn("Duplicate account operation", map[string]any{
			"account_id": accountID,
		})
		return errs.ErrDuplicateAccount
	}

	fields := map[string]any{
		"account_id": accountID,
		"error":      err.Error(),
	}
	if r.errorMapper.IsTransient(err) {
		r.logger.Warn(fmt.Sprintf("Transient database error when %s", operation), fields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return r.errorMapper.Storage(err)
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	r.logger.Debug("Getting account by ID", map[string]any{
		"account_id": id,
	})

	var accountModel model.Account
	result := r.db.WithContext(ctx).First(&accountModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, id)
	}

	return r.modelToEntity(&accountModel), nil
}

// Create creates a new account and assigns its ID
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.logger.Debug("Creating new account", map[string]any{
		"email": account.Email,
	})

	accountModel := model.Account{
		Email:           account.Email,
		Entitlement:     string(account.Entitlement),
		UsageCount:      account.UsageCount,
		SubscriptionEnd: account.SubscriptionEnd,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.ID)
	}

	account.ID = accountModel.ID

	r.logger.Info("Account created successfully", map[string]any{
		"account_id": account.ID,
		"email":      account.Email,
	})
	return nil
}

// ConsumeFreePrediction charges one free prediction with a single conditional
// UPDATE. The WHERE clause is the whole concurrency story: the row only
// changes when the account is still FREE and under the limit, so parallel
// requests can never push usage past the ceiling.
func (r *AccountRepository) ConsumeFreePrediction(ctx context.Context, id uint64, limit uint) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ? AND entitlement = ? AND usage_count < ?", id, string(entity.EntitlementFree), limit).
		Updates(map[string]interface{}{
			"usage_count": gorm.Expr("usage_count + 1"),
			"updated_at":  r.timeProvider.Now(),
		})

	if result.Error != nil {
		return false, r.handleDatabaseError("consuming free prediction", result.Error, id)
	}

	charged := result.RowsAffected > 0
	r.logger.Debug("Free prediction charge attempted", map[string]any{
		"account_id": id,
		"charged":    charged,
	})
	return charged, nil
}

// MarkPro flips the account to PRO with an advisory subscription end date.
// Re-marking an already PRO account just refreshes the end date, which keeps
// repeated confirmations harmless.
func (r *AccountRepository) MarkPro(ctx context.Context, id uint64, subscriptionEnd time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"entitlement":      string(entity.EntitlementPro),
			"subscription_end": subscriptionEnd,
			"updated_at":       r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("marking account pro", result.Error, id)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Account not found during pro upgrade", map[string]any{
			"account_id": id,
		})
		return errs.ErrAccountNotFound
	}

	r.logger.Info("Account upgraded to PRO", map[string]any{
		"account_id":       id,
		"subscription_end": subscriptionEnd,
	})
	return nil
}

// Count returns the total number of accounts
func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Account{}).Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting accounts", result.Error, 0)
	}
	return count, nil
}

// CountByEntitlement returns the number of accounts at the given tier
func (r *AccountRepository) CountByEntitlement(ctx context.Context, entitlement entity.Entitlement) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("entitlement = ?", string(entitlement)).
		Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting accounts by entitlement", result.Error, 0)
	}
	return count, nil
}
