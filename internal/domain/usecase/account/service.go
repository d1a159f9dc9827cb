package account

import (
	"context"
	"fmt"
	"time"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
	"github.com/scorepulse/scorepulse/internal/domain/port/persistence"
)

// DefaultStalePendingAge is how old a PENDING transaction must be before it
// counts as a confirmation that likely never arrived
const DefaultStalePendingAge = 15 * time.Minute

// Profile is an account together with its recent payment activity
type Profile struct {
	Account       *entity.Account
	Transactions  []entity.Transaction
	RemainingFree uint
}

// Stats summarizes the system for the operator dashboard
type Stats struct {
	TotalAccounts      int64
	ProAccounts        int64
	CompletedRevenue   int64
	StalePendingCount  int64
	RecentTransactions []entity.Transaction
}

// Service provides account lookup and operator reporting
type Service struct {
	accounts        persistence.AccountRepository
	transactions    persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	freeLimit       uint
	stalePendingAge time.Duration
}

// NewService creates an account service
func NewService(
	accounts persistence.AccountRepository,
	transactions persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	freeLimit uint,
	stalePendingAge time.Duration,
) *Service {
	if stalePendingAge <= 0 {
		stalePendingAge = DefaultStalePendingAge
	}
	return &Service{
		accounts:        accounts,
		transactions:    transactions,
		timeProvider:    timeProvider,
		logger:          logger,
		freeLimit:       freeLimit,
		stalePendingAge: stalePendingAge,
	}
}

// FreeLimit returns the free prediction ceiling in effect
func (s *Service) FreeLimit() uint {
	return s.freeLimit
}

// Create registers a new FREE account
func (s *Service) Create(ctx context.Context, email string) (*entity.Account, error) {
	account, err := entity.NewAccount(email, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("Account created", map[string]any{
		"account_id": account.ID,
		"email":      account.Email,
	})
	return account, nil
}

// Get returns the account profile with its recent transactions
func (s *Service) Get(ctx context.Context, accountID uint64) (*Profile, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactions.ListByAccount(ctx, accountID, 10)
	if err != nil {
		return nil, fmt.Errorf("%w: listing transactions: %s", errs.ErrStorageUnavailable, err.Error())
	}

	return &Profile{
		Account:       account,
		Transactions:  transactions,
		RemainingFree: account.RemainingFree(s.freeLimit),
	}, nil
}

// Stats gathers the operator dashboard numbers
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: counting accounts: %s", errs.ErrStorageUnavailable, err.Error())
	}

	pro, err := s.accounts.CountByEntitlement(ctx, entity.EntitlementPro)
	if err != nil {
		return nil, fmt.Errorf("%w: counting pro accounts: %s", errs.ErrStorageUnavailable, err.Error())
	}

	revenue, err := s.transactions.SumCompletedAmount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: summing revenue: %s", errs.ErrStorageUnavailable, err.Error())
	}

	cutoff := s.timeProvider.Now().Add(-s.stalePendingAge)
	stale, err := s.transactions.CountPendingOlderThan(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: counting stale pending: %s", errs.ErrStorageUnavailable, err.Error())
	}

	recent, err := s.transactions.Recent(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("%w: listing recent transactions: %s", errs.ErrStorageUnavailable, err.Error())
	}

	if stale > 0 {
		s.logger.Warn("Stale pending transactions detected", map[string]any{
			"count":      stale,
			"older_than": s.stalePendingAge.String(),
		})
	}

	return &Stats{
		TotalAccounts:      total,
		ProAccounts:        pro,
		CompletedRevenue:   revenue,
		StalePendingCount:  stale,
		RecentTransactions: recent,
	}, nil
}
