package quota

import (
	"context"
	"fmt"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
	"github.com/scorepulse/scorepulse/internal/domain/port/persistence"
)

// DefaultFreeLimit is the number of predictions a FREE account may consume
const DefaultFreeLimit uint = 100

// Decision is the outcome of a quota check
type Decision struct {
	Allowed     bool
	Entitlement entity.Entitlement
	// Remaining free predictions after this call; zero for PRO accounts,
	// which are unlimited
	Remaining uint
}

// Gate enforces the free-tier usage ceiling. It holds no in-process state:
// the charge itself is one conditional update against the account store, so
// concurrent requests for the same account - including requests landing on
// different replicas - can never push usage past the limit.
type Gate struct {
	accounts persistence.AccountRepository
	logger   coreport.Logger
	limit    uint
}

// NewGate creates a quota gate with the given free-tier limit.
// A zero limit falls back to DefaultFreeLimit.
func NewGate(accounts persistence.AccountRepository, logger coreport.Logger, limit uint) *Gate {
	if limit == 0 {
		limit = DefaultFreeLimit
	}
	return &Gate{
		accounts: accounts,
		logger:   logger,
		limit:    limit,
	}
}

// Limit returns the configured free-tier ceiling
func (g *Gate) Limit() uint {
	return g.limit
}

// TryConsume decides whether the account may make a prediction and, for
// FREE accounts, atomically charges one unit of quota. PRO accounts are
// always allowed and never mutated. A Denied decision performs no mutation.
//
// Possible errors:
// - ErrAccountNotFound: the account does not exist
// - ErrStorageUnavailable: the store failed; the caller must fail closed
func (g *Gate) TryConsume(ctx context.Context, accountID uint64) (*Decision, error) {
	account, err := g.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errs.IsAccountNotFoundError(err) {
			return nil, err
		}
		g.logger.Error("Quota check could not read account", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: quota check failed: %s", errs.ErrStorageUnavailable, err.Error())
	}

	if account.IsPro() {
		g.logger.Debug("Quota gate bypassed for PRO account", map[string]any{
			"account_id": accountID,
		})
		return &Decision{
			Allowed:     true,
			Entitlement: entity.EntitlementPro,
		}, nil
	}

	charged, err := g.accounts.ConsumeFreePrediction(ctx, accountID, g.limit)
	if err != nil {
		g.logger.Error("Quota charge failed, denying request", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: quota charge failed: %s", errs.ErrStorageUnavailable, err.Error())
	}

	if !charged {
		g.logger.Info("Prediction denied, free quota exhausted", map[string]any{
			"account_id":  accountID,
			"usage_count": account.UsageCount,
			"limit":       g.limit,
		})
		return &Decision{
			Allowed:     false,
			Entitlement: entity.EntitlementFree,
		}, nil
	}

	// Best-effort remaining count from the pre-charge read; the hard
	// ceiling is enforced by the conditional update, not by this number.
	remaining := uint(0)
	if account.UsageCount+1 < g.limit {
		remaining = g.limit - account.UsageCount - 1
	}

	g.logger.Debug("Free prediction charged", map[string]any{
		"account_id": accountID,
		"remaining":  remaining,
		"limit":      g.limit,
	})

	return &Decision{
		Allowed:     true,
		Entitlement: entity.EntitlementFree,
		Remaining:   remaining,
	}, nil
}
