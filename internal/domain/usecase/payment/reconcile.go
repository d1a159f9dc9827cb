package payment

import (
	"context"

	errs "github.com/scorepulse/scorepulse/internal/domain/error"
)

// ResultCodeSuccess is the gateway result code indicating a completed payment
const ResultCodeSuccess = 0

// Outcome describes what reconciling a confirmation callback did. The
// webhook caller always receives success regardless of the outcome; these
// values exist for logging and tests.
type Outcome string

// Reconcile outcomes
const (
	// OutcomeCompleted: transaction completed and the account is now PRO
	OutcomeCompleted Outcome = "completed"
	// OutcomeFailed: transaction marked FAILED, account untouched
	OutcomeFailed Outcome = "failed"
	// OutcomeDuplicate: the transaction was already terminal; no-op
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeUnknownKey: no transaction with this key exists; logged anomaly
	OutcomeUnknownKey Outcome = "unknown_key"
	// OutcomeDeferred: an internal failure left the transaction PENDING;
	// the gateway's own webhook retry will try again
	OutcomeDeferred Outcome = "deferred"
)

// Reconcile consumes one asynchronous confirmation from the gateway and
// converts it into durable local state. It never returns an error: the
// webhook must always answer success, or the gateway retry-storms on the
// error response. Internal failures are logged and leave the transaction
// PENDING for the gateway's next delivery attempt.
//
// The status transition and the entitlement flip commit in one storage
// transaction, so a crash between the two writes cannot produce a
// COMPLETED transaction on a still-FREE account.
func (s *Service) Reconcile(ctx context.Context, key string, resultCode int) Outcome {
	transaction, err := s.transactions.GetByKey(ctx, key)
	if err != nil {
		if errs.IsTransactionNotFoundError(err) {
			// An unknown key cannot be reconciled. Either the gateway sent
			// a key it never gave us, or the callback outran the initiate
			// path's ledger write; both are logged and discarded.
			s.logger.Warn("Confirmation for unknown transaction key", map[string]any{
				"transaction_key": key,
				"result_code":     resultCode,
			})
			return OutcomeUnknownKey
		}
		s.logger.Error("Confirmation lookup failed, leaving transaction pending", map[string]any{
			"transaction_key": key,
			"error":           err.Error(),
		})
		return OutcomeDeferred
	}

	if transaction.IsTerminal() {
		s.logger.Info("Duplicate confirmation ignored", map[string]any{
			"transaction_key": key,
			"status":          string(transaction.Status),
			"result_code":     resultCode,
		})
		return OutcomeDuplicate
	}

	now := s.timeProvider.Now()

	if resultCode != ResultCodeSuccess {
		updated, err := s.transactions.MarkFailedIfPending(ctx, key, now)
		if err != nil {
			s.logger.Error("Failed to record failed confirmation", map[string]any{
				"transaction_key": key,
				"result_code":     resultCode,
				"error":           err.Error(),
			})
			return OutcomeDeferred
		}
		if !updated {
			// A concurrent delivery got there first.
			s.logger.Info("Confirmation lost the race to another delivery", map[string]any{
				"transaction_key": key,
			})
			return OutcomeDuplicate
		}
		s.logger.Info("Payment failed at gateway", map[string]any{
			"transaction_key": key,
			"account_id":      transaction.AccountID,
			"result_code":     resultCode,
		})
		return OutcomeFailed
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Failed to begin reconcile transaction", map[string]any{
			"transaction_key": key,
			"error":           err.Error(),
		})
		return OutcomeDeferred
	}

	updated, err := s.uow.GetTransactionRepository(txCtx).MarkCompletedIfPending(txCtx, key, now)
	if err != nil {
		s.rollback(txCtx, key)
		s.logger.Error("Failed to complete transaction, leaving it pending", map[string]any{
			"transaction_key": key,
			"error":           err.Error(),
		})
		return OutcomeDeferred
	}
	if !updated {
		s.rollback(txCtx, key)
		s.logger.Info("Confirmation lost the race to another delivery", map[string]any{
			"transaction_key": key,
		})
		return OutcomeDuplicate
	}

	if err := s.uow.GetAccountRepository(txCtx).MarkPro(txCtx, transaction.AccountID, now.Add(s.proDuration)); err != nil {
		s.rollback(txCtx, key)
		s.logger.Error("Failed to upgrade account, leaving transaction pending", map[string]any{
			"transaction_key": key,
			"account_id":      transaction.AccountID,
			"error":           err.Error(),
		})
		return OutcomeDeferred
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit reconciliation, leaving transaction pending", map[string]any{
			"transaction_key": key,
			"account_id":      transaction.AccountID,
			"error":           err.Error(),
		})
		return OutcomeDeferred
	}

	s.logger.Info("Payment completed, account upgraded", map[string]any{
		"transaction_key": key,
		"account_id":      transaction.AccountID,
		"amount":          transaction.Amount,
	})
	return OutcomeCompleted
}

// rollback discards an in-flight reconcile transaction; rollback failures
// only get logged since the outcome is already deferred or duplicate
func (s *Service) rollback(txCtx context.Context, key string) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Warn("Rollback failed during reconciliation", map[string]any{
			"transaction_key": key,
			"error":           err.Error(),
		})
	}
}
