package models

import "time"

// BettingOdds is the consensus line for a game.
// Spread is stated from the home team's perspective; a negative value favors home.
type BettingOdds struct {
	GameID        string    `json:"gameId" validate:"required"`
	Spread        float64   `json:"spread"`
	OverUnder     float64   `json:"overUnder" validate:"gte=0"`
	HomeMoneyline int       `json:"homeMoneyline" validate:"ne=0"`
	AwayMoneyline int       `json:"awayMoneyline" validate:"ne=0"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// HomeSpread returns the home team's handicap
func (o BettingOdds) HomeSpread() float64 {
	return o.Spread
}

// AwaySpread returns the away team's handicap
func (o BettingOdds) AwaySpread() float64 {
	return -o.Spread
}

// HomeFavored checks if the home side is giving points
func (o BettingOdds) HomeFavored() bool {
	return o.Spread < 0
}
