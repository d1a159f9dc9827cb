package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInvalidAmount        = 4001
	CodeInvalidPhoneNumber   = 4002
	CodeInvalidAccountID     = 4003
	CodeDuplicateTransaction = 4004
	CodeInvalidEmail         = 4005
	CodeInvalidTeamName      = 4006
	CodeDuplicateAccount     = 4007
	CodeAccountNotFound      = 4040
	CodeTransactionNotFound  = 4041
	CodeQuotaExceeded        = 4290
	CodeGatewayRejected      = 4300

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeStorageUnavailable = 5030
	CodeGatewayAuth        = 5031
	CodeGatewayUnreachable = 5032
)

// Base error types
var (
	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidAccountID is returned when the account ID is not a positive integer
	ErrInvalidAccountID = errors.New("account ID must be positive")

	// ErrInvalidEmail is returned when an account email is empty or malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidAmount is returned when a payment amount is not positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidPhoneNumber is returned when the contact phone number is empty or malformed
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	// ErrInvalidTransactionKey is returned when the gateway-issued key is empty
	ErrInvalidTransactionKey = errors.New("transaction key cannot be empty")

	// ErrInvalidTeamName is returned when a prediction request names an unusable team
	ErrInvalidTeamName = errors.New("invalid team name")

	// ErrQuotaExceeded is returned when a FREE account has used up its prediction quota
	ErrQuotaExceeded = errors.New("free prediction quota exceeded")

	// ErrDuplicateTransaction is returned when a transaction with the same key already exists
	ErrDuplicateTransaction = errors.New("transaction with this key already exists")

	// ErrDuplicateAccount is returned when an account with the same email already exists
	ErrDuplicateAccount = errors.New("account with this email already exists")

	// ErrStorageUnavailable is returned when the durable store cannot be reached;
	// callers must fail closed
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrGatewayAuth is returned when no access credential could be obtained
	// from the payment gateway
	ErrGatewayAuth = errors.New("payment gateway authentication failed")

	// ErrGatewayRejected is returned when the gateway declined the push request
	ErrGatewayRejected = errors.New("payment gateway rejected the request")

	// ErrGatewayUnreachable is returned on transport failures or timeouts
	// talking to the payment gateway
	ErrGatewayUnreachable = errors.New("payment gateway unreachable")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidPhoneNumber):
		return CodeInvalidPhoneNumber
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidTeamName):
		return CodeInvalidTeamName
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrQuotaExceeded):
		return CodeQuotaExceeded
	case errors.Is(err, ErrGatewayRejected):
		return CodeGatewayRejected
	case errors.Is(err, ErrGatewayAuth):
		return CodeGatewayAuth
	case errors.Is(err, ErrGatewayUnreachable):
		return CodeGatewayUnreachable
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageUnavailable
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// QuotaExceededError carries the quota state at the moment of denial
type QuotaExceededError struct {
	AccountID  uint64
	UsageCount uint
	Limit      uint
}

// Error implements the error interface
func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("account %d has used %d of %d free predictions; upgrade required",
		e.AccountID, e.UsageCount, e.Limit)
}

// Is checks if the target error is an ErrQuotaExceeded
func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

// LogFields returns a map of fields for structured logging
func (e *QuotaExceededError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "quota_exceeded",
		"account_id":  e.AccountID,
		"usage_count": e.UsageCount,
		"limit":       e.Limit,
		"error_code":  CodeQuotaExceeded,
	}
}

// NewQuotaExceededError creates a new detailed quota denial error
func NewQuotaExceededError(accountID uint64, usageCount, limit uint) error {
	return &QuotaExceededError{
		AccountID:  accountID,
		UsageCount: usageCount,
		Limit:      limit,
	}
}

// GatewayError represents a failed interaction with the payment gateway.
// Reason carries the gateway's own message verbatim where one exists.
type GatewayError struct {
	Stage  string // "auth", "push"
	Reason string
	Err    error // one of ErrGatewayAuth, ErrGatewayRejected, ErrGatewayUnreachable
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("gateway %s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("gateway %s failed: %s: %v", e.Stage, e.Reason, e.Err)
}

// Unwrap returns the underlying sentinel error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "gateway_error",
		"stage":      e.Stage,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewGatewayError creates a detailed gateway error wrapping one of the
// gateway sentinel errors
func NewGatewayError(stage, reason string, sentinel error) error {
	return &GatewayError{
		Stage:  stage,
		Reason: reason,
		Err:    sentinel,
	}
}

// DuplicateTransactionError provides detail about a repeated gateway key
type DuplicateTransactionError struct {
	Key       string
	AccountID uint64
}

// Error implements the error interface
func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("duplicate transaction key %s for account %d", e.Key, e.AccountID)
}

// Is checks if the target error is an ErrDuplicateTransaction
func (e *DuplicateTransactionError) Is(target error) bool {
	return target == ErrDuplicateTransaction
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateTransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "duplicate_transaction",
		"transaction_key": e.Key,
		"account_id":      e.AccountID,
		"error_code":      CodeDuplicateTransaction,
	}
}

// NewDuplicateTransactionError creates a new detailed duplicate key error
func NewDuplicateTransactionError(key string, accountID uint64) error {
	return &DuplicateTransactionError{Key: key, AccountID: accountID}
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsTransactionNotFoundError checks if the error is a transaction not found error
func IsTransactionNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound)
}

// IsQuotaExceededError checks if the error is a quota denial
func IsQuotaExceededError(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}

// IsDuplicateTransactionError checks if the error is a duplicate key error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}

// IsStorageUnavailableError checks if the error indicates the store is down
func IsStorageUnavailableError(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// IsGatewayError checks if the error came from the payment gateway client
func IsGatewayError(err error) bool {
	return errors.Is(err, ErrGatewayAuth) ||
		errors.Is(err, ErrGatewayRejected) ||
		errors.Is(err, ErrGatewayUnreachable)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
