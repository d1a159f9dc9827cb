package payment

import (
	"context"
	"fmt"

	"github.com/scorepulse/scorepulse/internal/domain/entity"
	errs "github.com/scorepulse/scorepulse/internal/domain/error"
	"github.com/scorepulse/scorepulse/internal/domain/port/gateway"
)

// Initiate requests a push payment from the gateway for the given account
// and, once the gateway has acknowledged and returned its key, records a
// PENDING transaction under that key. No transaction row is ever created
// before the gateway acknowledgement: a speculative row would have no
// external operation behind it and nothing could ever reconcile it.
//
// Possible errors:
//   - ErrInvalidAmount, ErrInvalidPhoneNumber: precondition failures
//   - ErrAccountNotFound: the account does not exist
//   - ErrGatewayAuth, ErrGatewayRejected, ErrGatewayUnreachable: the push was
//     not accepted; no partial state was created and the caller may retry
//   - ErrStorageUnavailable: the push was accepted but the ledger write
//     failed; the anomaly is logged for the operator
func (s *Service) Initiate(ctx context.Context, accountID uint64, phoneNumber string, amount int64) (string, error) {
	if amount <= 0 {
		return "", errs.ErrInvalidAmount
	}
	if phoneNumber == "" {
		return "", errs.ErrInvalidPhoneNumber
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errs.IsAccountNotFoundError(err) {
			return "", err
		}
		return "", fmt.Errorf("%w: account lookup failed: %s", errs.ErrStorageUnavailable, err.Error())
	}

	s.logger.Info("Initiating upgrade payment", map[string]any{
		"account_id":  account.ID,
		"amount":      amount,
		"entitlement": string(account.Entitlement),
	})

	resp, err := s.gateway.RequestPush(ctx, gateway.PushRequest{
		AccountID:   accountID,
		PhoneNumber: phoneNumber,
		Amount:      amount,
	})
	if err != nil {
		s.logger.Warn("Gateway did not accept push request", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return "", err
	}

	transaction, err := entity.NewTransaction(resp.CheckoutRequestID, accountID, phoneNumber, amount, s.timeProvider)
	if err != nil {
		// The gateway returned a key the entity refuses; nothing was stored.
		s.logger.Error("Gateway acknowledgement was unusable", map[string]any{
			"account_id":      accountID,
			"transaction_key": resp.CheckoutRequestID,
			"error":           err.Error(),
		})
		return "", err
	}

	if err := s.transactions.Create(ctx, transaction); err != nil {
		if errs.IsDuplicateTransactionError(err) {
			// The gateway replayed a key it already issued; the existing
			// PENDING row is the record of this same external operation.
			s.logger.Warn("Gateway replayed an existing transaction key", map[string]any{
				"account_id":      accountID,
				"transaction_key": transaction.Key,
			})
			return transaction.Key, nil
		}
		s.logger.Error("Push accepted by gateway but ledger write failed", map[string]any{
			"account_id":      accountID,
			"transaction_key": transaction.Key,
			"error":           err.Error(),
		})
		return "", fmt.Errorf("%w: recording transaction %s: %s",
			errs.ErrStorageUnavailable, transaction.Key, err.Error())
	}

	s.logger.Info("Payment initiated", map[string]any{
		"account_id":      accountID,
		"transaction_key": transaction.Key,
		"amount":          amount,
	})

	return transaction.Key, nil
}
