package entity

import (
	"time"

	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
)

// TransactionStatus defines possible status values for a payment transaction
type TransactionStatus string

// TransactionStatus constants. PENDING is the only valid initial state;
// COMPLETED and FAILED are terminal and never transition again.
const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

// Transaction represents a single payment attempt against the mobile-money
// gateway. The key is the gateway-issued CheckoutRequestID: it is the natural
// primary key and the anchor for deduplicating repeated confirmations, and it
// must be treated as partner-controlled input that may legitimately repeat.
type Transaction struct {
	Key         string            // Gateway-issued idempotency key
	AccountID   uint64            // Owning account, never changed
	PhoneNumber string            // Contact reference the push was sent to
	Amount      int64             // Whole currency units, immutable
	Status      TransactionStatus // Lifecycle status
	CreatedAt   time.Time         // When the transaction was created
	CompletedAt *time.Time        // When the transaction reached a terminal state
}

// NewTransaction creates a new PENDING transaction with basic validation
func NewTransaction(
	key string,
	accountID uint64,
	phoneNumber string,
	amount int64,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if key == "" {
		return nil, errs.ErrInvalidTransactionKey
	}
	if accountID == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if phoneNumber == "" {
		return nil, errs.ErrInvalidPhoneNumber
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Transaction{
		Key:         key,
		AccountID:   accountID,
		PhoneNumber: phoneNumber,
		Amount:      amount,
		Status:      StatusPending,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsTerminal returns true once the transaction has been reconciled.
// A repeated callback for a terminal transaction is a no-op, not an error.
func (t *Transaction) IsTerminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusFailed
}
