package gateway

import (
	"context"
)

// PushRequest describes one push-payment attempt against the external
// mobile-money gateway
type PushRequest struct {
	AccountID   uint64
	PhoneNumber string
	Amount      int64 // whole currency units
}

// PushResponse is the gateway's acknowledgement of an accepted push request
type PushResponse struct {
	// CheckoutRequestID is the gateway-issued idempotency key; the caller
	// persists a PENDING transaction keyed by it
	CheckoutRequestID string
	// CustomerMessage is the gateway's display text for the end user
	CustomerMessage string
}

// PaymentGateway is an outbound port to the external payment provider.
// Implementations carry bounded timeouts: a call resolves to
// ErrGatewayUnreachable rather than hanging.
//
// Possible errors:
//   - ErrGatewayAuth: no access credential could be obtained
//   - ErrGatewayRejected: the gateway declined the request; the reason is
//     carried verbatim in a GatewayError
//   - ErrGatewayUnreachable: transport failure or timeout
type PaymentGateway interface {
	RequestPush(ctx context.Context, req PushRequest) (*PushResponse, error)
}
