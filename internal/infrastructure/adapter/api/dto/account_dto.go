package dto

// CreateAccountRequest represents the API request to register an account
type CreateAccountRequest struct {
	Email string `json:"email" binding:"required"`
}

// AccountResponse represents an account profile
type AccountResponse struct {
	AccountID       uint64                `json:"accountId"`
	Email           string                `json:"email"`
	Entitlement     string                `json:"entitlement"`
	UsageCount      uint                  `json:"usageCount"`
	RemainingFree   uint                  `json:"remainingFree"`
	SubscriptionEnd string                `json:"subscriptionEnd,omitempty"`
	Transactions    []TransactionResponse `json:"transactions,omitempty"`
}

// StatsResponse represents the operator dashboard numbers
type StatsResponse struct {
	TotalAccounts      int64                 `json:"totalAccounts"`
	ProAccounts        int64                 `json:"proAccounts"`
	CompletedRevenue   int64                 `json:"completedRevenue"`
	StalePendingCount  int64                 `json:"stalePendingCount"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}
