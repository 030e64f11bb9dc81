package oddsmath

import (
	"strconv"
)

// Side selects whose perspective a spread is displayed from
type Side string

const (
	Home Side = "home"
	Away Side = "away"
)

// DefaultPercentDecimals is the precision used by the dashboard for probabilities
const DefaultPercentDecimals = 1

// FormatMoneyline renders American odds with an explicit plus for underdogs
func FormatMoneyline(american int) string {
	if american > 0 {
		return "+" + strconv.Itoa(american)
	}
	return strconv.Itoa(american)
}

// SpreadDisplay renders the stored home spread for the requested side.
// Zero is treated as non-negative, so a pick'em shows "+0" for both sides.
func SpreadDisplay(spread float64, side Side) string {
	value := spread
	if side == Away {
		value = -spread
	}
	if value == 0 {
		// normalizes -0 from negating a pick'em
		value = 0
	}

	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if value >= 0 {
		return "+" + formatted
	}
	return formatted
}

// FormatPercentage renders a probability as a percentage with fixed decimals.
// Negative decimals fall back to DefaultPercentDecimals.
func FormatPercentage(probability float64, decimals int) string {
	if decimals < 0 {
		decimals = DefaultPercentDecimals
	}
	return strconv.FormatFloat(probability*100, 'f', decimals, 64) + "%"
}
