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

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// storageError logs a database failure and wraps it as a storage error.
// Transient conditions are logged at warning level.
func (r *TransactionRepository) storageError(operation string, err error, fields map[string]any) error {
	fields["error"] = err.Error()
	if r.errorMapper.IsTransient(err) {
		r.logger.Warn(fmt.Sprintf("Transient database error when %s", operation), fields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return r.errorMapper.Storage(err)
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		Key:         txModel.Key,
		AccountID:   txModel.AccountID,
		PhoneNumber: txModel.PhoneNumber,
		Amount:      txModel.Amount,
		Status:      entity.TransactionStatus(txModel.Status),
		CreatedAt:   txModel.CreatedAt,
		CompletedAt: txModel.CompletedAt,
	}
}

// entityToModel converts a transaction entity to its model
func (r *TransactionRepository) entityToModel(tx *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		Key:         tx.Key,
		AccountID:   tx.AccountID,
		PhoneNumber: tx.PhoneNumber,
		Amount:      tx.Amount,
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt,
		CompletedAt: tx.CompletedAt,
	}
}

// Create saves a new PENDING transaction keyed by the gateway-issued key
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"transaction_key": transaction.Key,
		"account_id":      transaction.AccountID,
		"amount":          transaction.Amount,
	})

	result := r.db.WithContext(ctx).Create(r.entityToModel(transaction))
	if result.Error != nil {
		if r.errorMapper.IsDuplicateKey(result.Error) {
			r.logger.Warn("Duplicate transaction key", map[string]any{
				"transaction_key": transaction.Key,
				"account_id":      transaction.AccountID,
			})
			return errs.NewDuplicateTransactionError(transaction.Key, transaction.AccountID)
		}
		return r.storageError("creating transaction", result.Error, map[string]any{
			"transaction_key": transaction.Key,
		})
	}

	r.logger.Info("Transaction created", map[string]any{
		"transaction_key": transaction.Key,
		"account_id":      transaction.AccountID,
		"amount":          transaction.Amount,
	})
	return nil
}

// GetByKey retrieves a transaction by its gateway-issued key
func (r *TransactionRepository) GetByKey(ctx context.Context, key string) (*entity.Transaction, error) {
	var txModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("checkout_request_id = ?", key).
		First(&txModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, r.storageError("getting transaction", result.Error, map[string]any{
			"transaction_key": key,
		})
	}

	return r.modelToEntity(&txModel), nil
}

// MarkCompletedIfPending transitions PENDING -> COMPLETED. The status guard
// lives in the WHERE clause so a replayed confirmation, or one racing this
// one, matches zero rows instead of rewriting a terminal state.
func (r *TransactionRepository) MarkCompletedIfPending(ctx context.Context, key string, completedAt time.Time) (bool, error) {
	return r.markTerminalIfPending(ctx, key, entity.StatusCompleted, completedAt)
}

// MarkFailedIfPending transitions PENDING -> FAILED under the same guard
func (r *TransactionRepository) MarkFailedIfPending(ctx context.Context, key string, completedAt time.Time) (bool, error) {
	return r.markTerminalIfPending(ctx, key, entity.StatusFailed, completedAt)
}

func (r *TransactionRepository) markTerminalIfPending(
	ctx context.Context,
	key string,
	status entity.TransactionStatus,
	completedAt time.Time,
) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("checkout_request_id = ? AND status = ?", key, string(entity.StatusPending)).
		Updates(map[string]interface{}{
			"status":       string(status),
			"completed_at": completedAt,
		})

	if result.Error != nil {
		return false, r.storageError("updating transaction status", result.Error, map[string]any{
			"transaction_key": key,
			"target_status":   string(status),
		})
	}

	updated := result.RowsAffected > 0
	r.logger.Debug("Transaction status transition attempted", map[string]any{
		"transaction_key": key,
		"target_status":   string(status),
		"updated":         updated,
	})
	return updated, nil
}

// ListByAccount returns the account's most recent transactions
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uint64, limit int) ([]entity.Transaction, error) {
	var txModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at desc").
		Limit(limit).
		Find(&txModels)

	if result.Error != nil {
		return nil, r.storageError("listing transactions", result.Error, map[string]any{
			"account_id": accountID,
		})
	}

	return r.modelsToEntities(txModels), nil
}

// Recent returns the most recent transactions across all accounts
func (r *TransactionRepository) Recent(ctx context.Context, limit int) ([]entity.Transaction, error) {
	var txModels []model.Transaction
	result := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&txModels)

	if result.Error != nil {
		return nil, r.storageError("listing recent transactions", result.Error, map[string]any{
			"limit": limit,
		})
	}

	return r.modelsToEntities(txModels), nil
}

// SumCompletedAmount returns total revenue from COMPLETED transactions
func (r *TransactionRepository) SumCompletedAmount(ctx context.Context) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("status = ?", string(entity.StatusCompleted)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)

	if result.Error != nil {
		return 0, r.storageError("summing completed transactions", result.Error, map[string]any{})
	}
	return total, nil
}

// CountPendingOlderThan counts PENDING rows created before the cutoff
func (r *TransactionRepository) CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("status = ? AND created_at < ?", string(entity.StatusPending), cutoff).
		Count(&count)

	if result.Error != nil {
		return 0, r.storageError("counting stale pending transactions", result.Error, map[string]any{})
	}
	return count, nil
}

func (r *TransactionRepository) modelsToEntities(txModels []model.Transaction) []entity.Transaction {
	transactions := make([]entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, *r.modelToEntity(&txModels[i]))
	}
	return transactions
}
