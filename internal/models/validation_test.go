package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() BettingData {
	return BettingData{
		Game: Game{
			ID:       "2025_01_BUF_KC",
			HomeTeam: Team{ID: "kc", Name: "Chiefs", City: "Kansas City", Abbreviation: "KC"},
			AwayTeam: Team{ID: "buf", Name: "Bills", City: "Buffalo", Abbreviation: "BUF"},
			GameTime: time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC),
			Week:     1,
			Season:   2025,
			Status:   StatusScheduled,
		},
		Odds: BettingOdds{
			GameID:        "2025_01_BUF_KC",
			Spread:        -3.5,
			OverUnder:     47.5,
			HomeMoneyline: -180,
			AwayMoneyline: 150,
			LastUpdated:   time.Date(2025, 9, 6, 12, 0, 0, 0, time.UTC),
		},
		Predictions: &Prediction{Confidence: 0.72, PredictedWinner: "KC", Reasoning: "Home field"},
	}
}

func TestBettingDataValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*BettingData)
		shouldHave string
	}{
		{name: "valid record", mutate: func(*BettingData) {}},
		{name: "valid without prediction", mutate: func(b *BettingData) { b.Predictions = nil }},
		{
			name:       "week below range",
			mutate:     func(b *BettingData) { b.Game.Week = 0 },
			shouldHave: "Week out of range",
		},
		{
			name:       "week above range",
			mutate:     func(b *BettingData) { b.Game.Week = 19 },
			shouldHave: "Week out of range",
		},
		{
			name:       "unknown status",
			mutate:     func(b *BettingData) { b.Game.Status = "postponed" },
			shouldHave: "Status must be one of",
		},
		{
			name:       "same teams",
			mutate:     func(b *BettingData) { b.Game.AwayTeam = b.Game.HomeTeam },
			shouldHave: ErrSameTeams.Error(),
		},
		{
			name:       "odds for another game",
			mutate:     func(b *BettingData) { b.Odds.GameID = "2025_01_DAL_NYG" },
			shouldHave: ErrGameIDMismatch.Error(),
		},
		{
			name:       "zero moneyline",
			mutate:     func(b *BettingData) { b.Odds.HomeMoneyline = 0 },
			shouldHave: "HomeMoneyline must not be 0",
		},
		{
			name:       "confidence above one",
			mutate:     func(b *BettingData) { b.Predictions.Confidence = 1.2 },
			shouldHave: "Confidence out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(&record)

			err := record.Validate()
			if tt.shouldHave == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, record.Game.ID, validationErr.RecordID)
			assert.Contains(t, err.Error(), tt.shouldHave)
		})
	}
}

func TestTeamPerformanceValidate(t *testing.T) {
	perf := TeamPerformance{
		ATSRecord:       ATSRecord{Wins: 8, Losses: 4},
		OverUnderRecord: OverUnderRecord{Overs: 6, Unders: 6},
		Last5Games: []GameOutcome{
			{Week: 1, Opponent: "BUF", Result: ResultWin, ATSResult: ResultWin, Spread: -3.5, ActualMargin: 7},
		},
	}
	assert.NoError(t, perf.Validate())

	perf.ATSRecord.Losses = -1
	assert.Error(t, perf.Validate())
}

func TestParseGameStatus(t *testing.T) {
	status, err := ParseGameStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)

	_, err = ParseGameStatus("halftime")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOddsPerspective(t *testing.T) {
	odds := BettingOdds{Spread: -7}
	assert.Equal(t, -7.0, odds.HomeSpread())
	assert.Equal(t, 7.0, odds.AwaySpread())
	assert.True(t, odds.HomeFavored())
}

func TestGameInvolves(t *testing.T) {
	game := validRecord().Game
	assert.True(t, game.Involves("KC"))
	assert.True(t, game.Involves("BUF"))
	assert.False(t, game.Involves("DAL"))
	assert.Equal(t, "Kansas City Chiefs", game.HomeTeam.FullName())
}

func TestHasPrediction(t *testing.T) {
	record := validRecord()
	assert.True(t, record.HasPrediction())

	record.Predictions = nil
	assert.False(t, record.HasPrediction())
	assert.NoError(t, record.Validate())
}
