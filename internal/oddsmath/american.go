// Package oddsmath converts between American odds, probability and payout space.
// Every function is pure and safe for concurrent use.
package oddsmath

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ImpliedProbability converts American odds to the implied win probability
// +150 → 0.40
// -150 → 0.60
func ImpliedProbability(american int) (float64, error) {
	if american == 0 {
		return 0, zeroOddsError("implied probability")
	}

	if american > 0 {
		return 100.0 / (float64(american) + 100.0), nil
	}

	abs := math.Abs(float64(american))
	return abs / (abs + 100.0), nil
}

// Payout returns the profit of a winning wager, excluding the returned stake
// +100 on 50 → 50
// -200 on 50 → 25
func Payout(american int, wager float64) (float64, error) {
	if american == 0 {
		return 0, zeroOddsError("payout")
	}
	if wager < 0 || math.IsNaN(wager) || math.IsInf(wager, 0) {
		return 0, NewDomainError("payout", wager, "wager must be a non-negative amount")
	}

	stake := decimal.NewFromFloat(wager)
	odds := decimal.NewFromInt(int64(american))

	var profit decimal.Decimal
	if american > 0 {
		profit = odds.Div(hundred).Mul(stake)
	} else {
		profit = hundred.Div(odds.Abs()).Mul(stake)
	}

	result, _ := profit.Float64()
	return result, nil
}

// AmericanToDecimal converts American odds to decimal odds
// +150 → 2.50
// -150 → 1.67
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, zeroOddsError("american to decimal")
	}

	if american > 0 {
		return (float64(american) / 100.0) + 1.0, nil
	}

	return (100.0 / float64(-american)) + 1.0, nil
}

// Favorite reports whether the line is the favored side.
// Negative American prices are favorites.
func Favorite(american int) bool {
	return american < 0
}
