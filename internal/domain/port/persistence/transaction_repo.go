package persistence

import (
	"context"
	"time"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with the
// payment transaction ledger. Rows are never deleted; the ledger is the
// audit trail.
type TransactionRepository interface {
	// Create saves a new PENDING transaction keyed by the gateway-issued key
	//
	// Possible errors:
	// - ErrDuplicateTransaction: if a transaction with the same key exists
	// - ErrAccountNotFound: if the referenced account does not exist
	// - ErrStorageUnavailable: if the store cannot be reached
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByKey retrieves a transaction by its gateway-issued key
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no transaction with the key exists
	// - ErrStorageUnavailable: if the store cannot be reached
	GetByKey(ctx context.Context, key string) (*entity.Transaction, error)

	// MarkCompletedIfPending transitions the transaction to COMPLETED,
	// guarded by status = PENDING in the store itself. Returns false with a
	// nil error when the row was absent or already terminal, which makes
	// replayed confirmations a no-op and forbids FAILED -> COMPLETED.
	MarkCompletedIfPending(ctx context.Context, key string, completedAt time.Time) (bool, error)

	// MarkFailedIfPending transitions the transaction to FAILED under the
	// same PENDING guard as MarkCompletedIfPending.
	MarkFailedIfPending(ctx context.Context, key string, completedAt time.Time) (bool, error)

	// ListByAccount returns the account's most recent transactions
	ListByAccount(ctx context.Context, accountID uint64, limit int) ([]entity.Transaction, error)

	// Recent returns the most recent transactions across all accounts
	Recent(ctx context.Context, limit int) ([]entity.Transaction, error)

	// SumCompletedAmount returns total revenue from COMPLETED transactions
	SumCompletedAmount(ctx context.Context) (int64, error)

	// CountPendingOlderThan counts PENDING rows created before the cutoff,
	// an operational signal for confirmations that never arrived
	CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
