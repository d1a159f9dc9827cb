package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	mockcore "github.com/scorepulse/scorepulse/mocks/port/core"
)

func TestNewPrediction(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTimeProvider := new(mockcore.MockTimeProvider)
	mockTimeProvider.On("Now").Return(now)

	prediction := NewPrediction(42, "Arsenal", "Chelsea", 2, 1, mockTimeProvider)

	assert.Equal(t, uint64(42), prediction.AccountID)
	assert.Equal(t, "Arsenal", prediction.HomeTeam)
	assert.Equal(t, "Chelsea", prediction.AwayTeam)
	assert.Equal(t, 2, prediction.HomeGoals)
	assert.Equal(t, 1, prediction.AwayGoals)
	assert.Equal(t, "Arsenal Win", prediction.Outcome)
	assert.Equal(t, now, prediction.CreatedAt)
}

func TestOutcomeLabel(t *testing.T) {
	testCases := []struct {
		name      string
		homeGoals int
		awayGoals int
		expected  string
	}{
		{name: "home win", homeGoals: 3, awayGoals: 1, expected: "Arsenal Win"},
		{name: "away win", homeGoals: 0, awayGoals: 2, expected: "Chelsea Win"},
		{name: "draw", homeGoals: 1, awayGoals: 1, expected: "Draw"},
		{name: "goalless draw", homeGoals: 0, awayGoals: 0, expected: "Draw"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, OutcomeLabel("Arsenal", "Chelsea", tc.homeGoals, tc.awayGoals))
		})
	}
}

func TestPrediction_Score(t *testing.T) {
	prediction := &Prediction{HomeGoals: 2, AwayGoals: 1}
	assert.Equal(t, "2 - 1", prediction.Score())
}
