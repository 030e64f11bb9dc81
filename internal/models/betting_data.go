package models

// BettingData is the unit the analytics engine operates on
type BettingData struct {
	Game        Game        `json:"game"`
	Odds        BettingOdds `json:"odds"`
	Predictions *Prediction `json:"predictions,omitempty" validate:"omitempty"`
}

// HasPrediction checks whether a prediction is attached
func (b BettingData) HasPrediction() bool {
	return b.Predictions != nil
}
