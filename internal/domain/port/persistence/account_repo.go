package persistence

import (
	"context"
	"time"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
)

// AccountRepository defines essential methods to interact with account data
type AccountRepository interface {
	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account with the given ID exists
	// - ErrStorageUnavailable: if the store cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// Create persists a new account and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateAccount: if an account with the same email already exists
	// - ErrStorageUnavailable: if the store cannot be reached
	Create(ctx context.Context, account *entity.Account) error

	// ConsumeFreePrediction charges one free prediction if and only if the
	// account is still FREE and below the limit. The read-compare-increment
	// is a single conditional UPDATE issued against the store, never a
	// read-modify-write across two round trips, so the free ceiling holds
	// under concurrent requests and across replicas.
	//
	// Returns false with a nil error when the guard did not match (quota
	// exhausted, account missing, or already PRO); callers disambiguate.
	//
	// Possible errors:
	// - ErrStorageUnavailable: if the store cannot be reached
	ConsumeFreePrediction(ctx context.Context, id uint64, limit uint) (bool, error)

	// MarkPro flips the account's entitlement to PRO and records the
	// advisory subscription end date. Idempotent: marking an already PRO
	// account succeeds without further effect.
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account with the given ID exists
	// - ErrStorageUnavailable: if the store cannot be reached
	MarkPro(ctx context.Context, id uint64, subscriptionEnd time.Time) error

	// Count returns the total number of accounts
	Count(ctx context.Context) (int64, error)

	// CountByEntitlement returns the number of accounts at the given tier
	CountByEntitlement(ctx context.Context, entitlement entity.Entitlement) (int64, error)
}
