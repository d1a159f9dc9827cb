package predict

// Predictor is the opaque score-prediction function. It is pure, has no
// side effects, and always returns a score; implementations may fall back
// to a non-deterministic estimate when no model is available.
type Predictor interface {
	Predict(homeTeam, awayTeam string) (homeGoals, awayGoals int)
}
