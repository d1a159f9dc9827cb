package entity

import (
	"strings"
	"time"

	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
)

// Entitlement represents an account's access tier
type Entitlement string

// Access tiers
const (
	EntitlementFree Entitlement = "FREE"
	EntitlementPro  Entitlement = "PRO"
)

// Account represents a registered user of the prediction service
type Account struct {
	ID              uint64      // Unique identifier, assigned at creation
	Email           string      // Identity for display; credential handling lives elsewhere
	Entitlement     Entitlement // FREE (quota limited) or PRO (unlimited)
	UsageCount      uint        // Free predictions consumed; frozen once PRO
	SubscriptionEnd *time.Time  // Advisory only, never enforced
	CreatedAt       time.Time   // When the account was created
	UpdatedAt       time.Time   // When the account was last updated
}

// NewAccount creates a new FREE account with a zero usage counter
func NewAccount(email string, timeProvider coreport.TimeProvider) (*Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidEmail
	}

	now := timeProvider.Now()
	return &Account{
		Email:       email,
		Entitlement: EntitlementFree,
		UsageCount:  0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsPro returns true if the account has unlimited access
func (a *Account) IsPro() bool {
	return a.Entitlement == EntitlementPro
}

// RemainingFree returns how many free predictions the account has left
// against the given limit. PRO accounts report zero; callers check IsPro first.
func (a *Account) RemainingFree(limit uint) uint {
	if a.IsPro() || a.UsageCount >= limit {
		return 0
	}
	return limit - a.UsageCount
}
