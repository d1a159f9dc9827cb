package payment

import (
	"time"

	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
	"github.com/scorepulse/scorepulse/internal/domain/port/gateway"
	"github.com/scorepulse/scorepulse/internal/domain/port/persistence"
)

// DefaultProDuration is the advisory subscription length recorded on upgrade
const DefaultProDuration = 30 * 24 * time.Hour

// Service owns the upgrade flow: initiating push payments against the
// gateway and reconciling its asynchronous confirmations into the ledger
// and the account store.
type Service struct {
	uow          persistence.UnitOfWork
	accounts     persistence.AccountRepository
	transactions persistence.TransactionRepository
	gateway      gateway.PaymentGateway
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	proDuration  time.Duration
}

// NewService creates a payment service.
// A zero proDuration falls back to DefaultProDuration.
func NewService(
	uow persistence.UnitOfWork,
	accounts persistence.AccountRepository,
	transactions persistence.TransactionRepository,
	gw gateway.PaymentGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	proDuration time.Duration,
) *Service {
	if proDuration <= 0 {
		proDuration = DefaultProDuration
	}
	return &Service{
		uow:          uow,
		accounts:     accounts,
		transactions: transactions,
		gateway:      gw,
		timeProvider: timeProvider,
		logger:       logger,
		proDuration:  proDuration,
	}
}
