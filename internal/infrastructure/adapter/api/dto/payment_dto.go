package dto

// InitiateRequest represents the API request to start a PRO upgrade payment
type InitiateRequest struct {
	AccountID   uint64 `json:"accountId" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
}

// InitiateResponse acknowledges an accepted push request
type InitiateResponse struct {
	CheckoutRequestID string `json:"checkoutRequestId"`
	Status            string `json:"status"`
}

// CallbackEnvelope mirrors the gateway's confirmation callback payload
type CallbackEnvelope struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

// CallbackAck is the fixed acknowledgement the gateway expects. Anything but
// a success body makes the gateway retry, so it never varies.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// TransactionResponse represents one ledger entry in API responses
type TransactionResponse struct {
	CheckoutRequestID string `json:"checkoutRequestId"`
	AccountID         uint64 `json:"accountId"`
	PhoneNumber       string `json:"phoneNumber"`
	Amount            int64  `json:"amount"`
	Status            string `json:"status"`
	CreatedAt         string `json:"createdAt"`
	CompletedAt       string `json:"completedAt,omitempty"`
}
