package predictor

import (
	"math/rand"
	"sync"
)

// Team tiers, 1 = strongest, 5 = weakest. Unknown teams land mid-table.
var teamTiers = map[string]int{
	"Man City": 1, "Liverpool": 1, "Arsenal": 1,
	"Tottenham": 2, "Aston Villa": 2, "Man United": 2, "Newcastle": 2,
	"Chelsea": 3, "Brighton": 3, "West Ham": 3,
	"Brentford": 4, "Crystal Palace": 4, "Wolves": 4, "Fulham": 4, "Bournemouth": 4,
	"Everton": 4, "Nott'm Forest": 4,
	"Burnley": 5, "Sheffield Utd": 5, "Luton": 5,
}

const (
	defaultTier = 3

	// maxGoals bounds every predicted score
	maxGoals = 5
)

// TieredPredictor produces score predictions from relative team strength.
// Expected goals follow the tier gap between the sides, with a small random
// variance so identical fixtures don't always repeat the same score.
type TieredPredictor struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewTieredPredictor creates a predictor seeded for reproducible output
func NewTieredPredictor(seed int64) *TieredPredictor {
	return &TieredPredictor{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Predict returns the predicted goals for each side
func (p *TieredPredictor) Predict(homeTeam, awayTeam string) (int, int) {
	homeTier := tierOf(homeTeam)
	awayTier := tierOf(awayTeam)

	// Tier gap shifts the expected goals. Home side gets a small edge.
	homeExpected := 1.4 + 0.45*float64(awayTier-homeTier) + 0.25
	awayExpected := 1.2 + 0.45*float64(homeTier-awayTier)

	p.mu.Lock()
	homeExpected += p.rng.Float64()*0.8 - 0.4
	awayExpected += p.rng.Float64()*0.8 - 0.4
	p.mu.Unlock()

	return clampGoals(homeExpected), clampGoals(awayExpected)
}

func tierOf(team string) int {
	if tier, ok := teamTiers[team]; ok {
		return tier
	}
	return defaultTier
}

func clampGoals(expected float64) int {
	goals := int(expected + 0.5)
	if goals < 0 {
		return 0
	}
	if goals > maxGoals {
		return maxGoals
	}
	return goals
}
