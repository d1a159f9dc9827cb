package dto

// PredictionRequest represents the API request for a score prediction
type PredictionRequest struct {
	AccountID uint64 `json:"accountId" binding:"required"`
	HomeTeam  string `json:"homeTeam" binding:"required"`
	AwayTeam  string `json:"awayTeam" binding:"required"`
}

// PredictionResponse represents a predicted score
type PredictionResponse struct {
	HomeTeam      string `json:"homeTeam"`
	AwayTeam      string `json:"awayTeam"`
	HomeGoals     int    `json:"homeGoals"`
	AwayGoals     int    `json:"awayGoals"`
	Score         string `json:"score"`
	Outcome       string `json:"outcome"`
	Entitlement   string `json:"entitlement"`
	RemainingFree uint   `json:"remainingFree"`
}

// PredictionHistoryItem represents one past prediction
type PredictionHistoryItem struct {
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	Score     string `json:"score"`
	Outcome   string `json:"outcome"`
	CreatedAt string `json:"createdAt"`
}

// PredictionHistoryResponse lists an account's recent predictions
type PredictionHistoryResponse struct {
	AccountID   uint64                  `json:"accountId"`
	Predictions []PredictionHistoryItem `json:"predictions"`
}
