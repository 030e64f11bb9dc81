package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/gridiron-lines/internal/classifier"
	"github.com/yourusername/gridiron-lines/internal/models"
	"github.com/yourusername/gridiron-lines/internal/oddsmath"
)

// SideView is one team's column on a game card
type SideView struct {
	Abbreviation       string  `json:"abbreviation"`
	FullName           string  `json:"fullName"`
	Spread             string  `json:"spread"`
	Moneyline          string  `json:"moneyline"`
	ImpliedProbability string  `json:"impliedProbability"`
	NoVigProbability   string  `json:"noVigProbability,omitempty"`
	Payout             float64 `json:"payout"`
}

// GameView is a fully rendered game card
type GameView struct {
	GameID          string                    `json:"gameId"`
	Week            int                       `json:"week"`
	Matchup         string                    `json:"matchup"`
	GameTime        time.Time                 `json:"gameTime"`
	Away            SideView                  `json:"away"`
	Home            SideView                  `json:"home"`
	Total           string                    `json:"total"`
	Status          models.GameStatus         `json:"status"`
	StatusLabel     string                    `json:"statusLabel"`
	StatusTier      classifier.StatusTier     `json:"statusTier"`
	Confidence      *float64                  `json:"confidence,omitempty"`
	ConfidenceLabel string                    `json:"confidenceLabel,omitempty"`
	ConfidenceTier  classifier.ConfidenceTier `json:"confidenceTier,omitempty"`
	PredictedWinner string                    `json:"predictedWinner,omitempty"`
	Reasoning       string                    `json:"reasoning,omitempty"`
	ValueAssessment string                    `json:"valueAssessment"`
	PreviewWager    float64                   `json:"previewWager"`
}

// renderOptions controls number formatting on rendered cards
type renderOptions struct {
	wager           float64
	percentDecimals int
}

func renderGame(record models.BettingData, opts renderOptions) (GameView, error) {
	game, odds := record.Game, record.Odds

	home, err := renderSide(game.HomeTeam, odds.Spread, oddsmath.Home, odds.HomeMoneyline, opts)
	if err != nil {
		return GameView{}, fmt.Errorf("game %s home side: %w", game.ID, err)
	}
	away, err := renderSide(game.AwayTeam, odds.Spread, oddsmath.Away, odds.AwayMoneyline, opts)
	if err != nil {
		return GameView{}, fmt.Errorf("game %s away side: %w", game.ID, err)
	}

	// an even-or-better market has no overround to remove
	if homeFair, awayFair, err := oddsmath.NoVigProbabilities(odds.HomeMoneyline, odds.AwayMoneyline); err == nil {
		home.NoVigProbability = oddsmath.FormatPercentage(homeFair, opts.percentDecimals)
		away.NoVigProbability = oddsmath.FormatPercentage(awayFair, opts.percentDecimals)
	}

	view := GameView{
		GameID:       game.ID,
		Week:         game.Week,
		Matchup:      game.AwayTeam.Abbreviation + " @ " + game.HomeTeam.Abbreviation,
		GameTime:     game.GameTime,
		Away:         away,
		Home:         home,
		Total:        fmt.Sprintf("O/U %g", odds.OverUnder),
		Status:       game.Status,
		StatusLabel:  classifier.StatusLabel(game.Status),
		StatusTier:   classifier.StatusTierOf(game.Status),
		PreviewWager: opts.wager,
	}

	if record.HasPrediction() {
		confidence := record.Predictions.Confidence
		view.Confidence = &confidence
		view.ConfidenceLabel = classifier.ConfidenceLabel(confidence)
		view.ConfidenceTier = classifier.ConfidenceTierOf(confidence)
		view.PredictedWinner = record.Predictions.PredictedWinner
		view.Reasoning = record.Predictions.Reasoning
	}
	view.ValueAssessment = classifier.ValueAssessment(view.Confidence)

	return view, nil
}

// renderSide formats one team's lines. spread is always the stored home line.
func renderSide(team models.Team, spread float64, side oddsmath.Side, moneyline int, opts renderOptions) (SideView, error) {
	implied, err := oddsmath.ImpliedProbability(moneyline)
	if err != nil {
		return SideView{}, err
	}
	payout, err := oddsmath.Payout(moneyline, opts.wager)
	if err != nil {
		return SideView{}, err
	}
	cents, _ := decimal.NewFromFloat(payout).Round(2).Float64()

	return SideView{
		Abbreviation:       team.Abbreviation,
		FullName:           team.FullName(),
		Spread:             oddsmath.SpreadDisplay(spread, side),
		Moneyline:          oddsmath.FormatMoneyline(moneyline),
		ImpliedProbability: oddsmath.FormatPercentage(implied, opts.percentDecimals),
		Payout:             cents,
	}, nil
}
