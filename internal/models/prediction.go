package models

// Prediction is an optional model pick attached to a betting record
type Prediction struct {
	Confidence      float64 `json:"confidence" validate:"gte=0,lte=1"`
	PredictedWinner string  `json:"predictedWinner" validate:"required"`
	Reasoning       string  `json:"reasoning"`
}
