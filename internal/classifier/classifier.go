// Package classifier derives display categories from numeric and enum fields of betting records.
package classifier

import (
	"math"
	"strconv"
	"strings"

	"github.com/yourusername/gridiron-lines/internal/models"
)

// ConfidenceTier is the badge bucket for a prediction confidence
type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "high"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceLow    ConfidenceTier = "low"
)

// StatusTier is the badge style for a game status
type StatusTier string

const (
	StatusPrimary StatusTier = "primary"
	StatusWarning StatusTier = "warning"
	StatusNeutral StatusTier = "neutral"
)

// Tier boundaries, both exclusive on the lower side
const (
	HighConfidenceThreshold   = 0.70
	MediumConfidenceThreshold = 0.60
)

// Value assessment labels
const (
	NoPredictionLabel  = "No prediction available"
	StrongValueLabel   = "Strong value"
	ModerateValueLabel = "Moderate value"
	LowValueLabel      = "Low value"
)

// ConfidenceTierOf buckets a confidence value. Out-of-range input is clamped to [0,1].
func ConfidenceTierOf(confidence float64) ConfidenceTier {
	c := clamp(confidence)
	switch {
	case c > HighConfidenceThreshold:
		return ConfidenceHigh
	case c > MediumConfidenceThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// StatusTierOf maps a game status to its badge style; unknown statuses are neutral
func StatusTierOf(status models.GameStatus) StatusTier {
	switch status {
	case models.StatusScheduled:
		return StatusPrimary
	case models.StatusInProgress:
		return StatusWarning
	default:
		return StatusNeutral
	}
}

// ValueAssessment returns a human readable label for an optional confidence
func ValueAssessment(confidence *float64) string {
	if confidence == nil {
		return NoPredictionLabel
	}

	switch ConfidenceTierOf(*confidence) {
	case ConfidenceHigh:
		return StrongValueLabel
	case ConfidenceMedium:
		return ModerateValueLabel
	default:
		return LowValueLabel
	}
}

// StatusLabel renders a status for a badge, e.g. "IN PROGRESS"
func StatusLabel(status models.GameStatus) string {
	return strings.ToUpper(strings.ReplaceAll(string(status), "_", " "))
}

// ConfidenceLabel renders a confidence as a whole percentage, e.g. "85% confidence"
func ConfidenceLabel(confidence float64) string {
	pct := int(math.Round(clamp(confidence) * 100))
	return strconv.Itoa(pct) + "% confidence"
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
