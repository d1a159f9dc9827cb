package entity

import (
	"fmt"
	"time"

	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
)

// Prediction records one score prediction made for an account
type Prediction struct {
	ID        uint64
	AccountID uint64
	HomeTeam  string
	AwayTeam  string
	HomeGoals int
	AwayGoals int
	Outcome   string // "<team> Win" or "Draw"
	CreatedAt time.Time
}

// NewPrediction creates a prediction history record
func NewPrediction(
	accountID uint64,
	homeTeam, awayTeam string,
	homeGoals, awayGoals int,
	timeProvider coreport.TimeProvider,
) *Prediction {
	return &Prediction{
		AccountID: accountID,
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
		Outcome:   OutcomeLabel(homeTeam, awayTeam, homeGoals, awayGoals),
		CreatedAt: timeProvider.Now(),
	}
}

// OutcomeLabel renders the human readable result for a predicted score
func OutcomeLabel(homeTeam, awayTeam string, homeGoals, awayGoals int) string {
	switch {
	case homeGoals > awayGoals:
		return fmt.Sprintf("%s Win", homeTeam)
	case awayGoals > homeGoals:
		return fmt.Sprintf("%s Win", awayTeam)
	default:
		return "Draw"
	}
}

// Score formats the predicted score for display
func (p *Prediction) Score() string {
	return fmt.Sprintf("%d - %d", p.HomeGoals, p.AwayGoals)
}
