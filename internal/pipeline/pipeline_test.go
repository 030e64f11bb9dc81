package pipeline

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridiron-lines/internal/models"
)

var kickoff = time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC)

func team(abbr string) models.Team {
	return models.Team{ID: abbr, Name: abbr, Abbreviation: abbr}
}

func record(home, away string, offset time.Duration, spread, total float64, confidence *float64, status models.GameStatus) models.BettingData {
	id := fmt.Sprintf("2025_01_%s_%s", away, home)
	data := models.BettingData{
		Game: models.Game{
			ID:       id,
			HomeTeam: team(home),
			AwayTeam: team(away),
			GameTime: kickoff.Add(offset),
			Week:     1,
			Season:   2025,
			Status:   status,
		},
		Odds: models.BettingOdds{
			GameID:        id,
			Spread:        spread,
			OverUnder:     total,
			HomeMoneyline: -150,
			AwayMoneyline: 130,
		},
	}
	if confidence != nil {
		data.Predictions = &models.Prediction{Confidence: *confidence, PredictedWinner: home}
	}
	return data
}

func conf(v float64) *float64 { return &v }

func weekOneFixture() []models.BettingData {
	return []models.BettingData{
		record("KC", "BUF", 3*time.Hour, -3.5, 47.5, conf(0.72), models.StatusScheduled),
		record("DAL", "NYG", 0, -7.0, 44.0, nil, models.StatusCompleted),
		record("SF", "ARI", 6*time.Hour, -14.5, 41.0, conf(0.81), models.StatusScheduled),
	}
}

func spreads(records []models.BettingData) []float64 {
	out := make([]float64, 0, len(records))
	for _, r := range records {
		out = append(out, r.Odds.Spread)
	}
	return out
}

func ids(records []models.BettingData) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Game.ID)
	}
	return out
}

func TestApplySortBySpreadAscending(t *testing.T) {
	got, err := Apply(weekOneFixture(), Criteria{SortBy: SortBySpread, SortOrder: Ascending})
	require.NoError(t, err)
	assert.Equal(t, []float64{-14.5, -7.0, -3.5}, spreads(got))
}

func TestApplySortBySpreadDescending(t *testing.T) {
	got, err := Apply(weekOneFixture(), Criteria{SortBy: SortBySpread, SortOrder: Descending})
	require.NoError(t, err)
	assert.Equal(t, []float64{-3.5, -7.0, -14.5}, spreads(got))
}

func TestApplySortByGameTime(t *testing.T) {
	got, err := Apply(weekOneFixture(), DefaultCriteria())
	require.NoError(t, err)
	assert.Equal(t, []string{"2025_01_NYG_DAL", "2025_01_BUF_KC", "2025_01_ARI_SF"}, ids(got))
}

func TestApplySortByTotal(t *testing.T) {
	got, err := Apply(weekOneFixture(), Criteria{SortBy: SortByTotal, SortOrder: Descending})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025_01_BUF_KC", "2025_01_NYG_DAL", "2025_01_ARI_SF"}, ids(got))
}

func TestApplySortByConfidenceMissingPrediction(t *testing.T) {
	desc, err := Apply(weekOneFixture(), Criteria{SortBy: SortByConfidence, SortOrder: Descending})
	require.NoError(t, err)
	assert.Equal(t, "2025_01_NYG_DAL", desc[len(desc)-1].Game.ID, "no prediction sorts last in descending order")
	assert.Equal(t, "2025_01_ARI_SF", desc[0].Game.ID)

	asc, err := Apply(weekOneFixture(), Criteria{SortBy: SortByConfidence, SortOrder: Ascending})
	require.NoError(t, err)
	assert.Equal(t, "2025_01_NYG_DAL", asc[0].Game.ID, "no prediction sorts first in ascending order")
}

func TestApplyDescendingKeepsTieOrder(t *testing.T) {
	records := []models.BettingData{
		record("KC", "BUF", 0, -3, 47, nil, models.StatusScheduled),
		record("DAL", "NYG", time.Hour, -3, 44, nil, models.StatusScheduled),
		record("SF", "ARI", 2*time.Hour, -6, 41, nil, models.StatusScheduled),
		record("GB", "MIN", 3*time.Hour, -3, 45, nil, models.StatusScheduled),
	}

	got, err := Apply(records, Criteria{SortBy: SortBySpread, SortOrder: Descending})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025_01_BUF_KC", "2025_01_NYG_DAL", "2025_01_MIN_GB", "2025_01_ARI_SF"}, ids(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := weekOneFixture()
	before := ids(input)

	got, err := Apply(input, Criteria{SortBy: SortBySpread, SortOrder: Ascending})
	require.NoError(t, err)
	require.NotEmpty(t, got)

	assert.Equal(t, before, ids(input))
	got[0].Odds.Spread = 99
	assert.NotEqual(t, 99.0, input[2].Odds.Spread)
}

func TestApplyIsIdempotent(t *testing.T) {
	criteria := Criteria{SortBy: SortByConfidence, SortOrder: Descending, StatusFilter: "scheduled"}

	once, err := Apply(weekOneFixture(), criteria)
	require.NoError(t, err)
	twice, err := Apply(once, criteria)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestApplyTeamFilter(t *testing.T) {
	got, err := Apply(weekOneFixture(), Criteria{SortBy: SortByGameTime, SortOrder: Ascending, TeamFilter: "KC"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025_01_BUF_KC", got[0].Game.ID)

	away, err := Apply(weekOneFixture(), Criteria{SortBy: SortByGameTime, SortOrder: Ascending, TeamFilter: "BUF"})
	require.NoError(t, err)
	assert.Len(t, away, 1)
}

func TestApplyFilterIsSubset(t *testing.T) {
	input := weekOneFixture()
	criteria := Criteria{SortBy: SortBySpread, SortOrder: Ascending, StatusFilter: "scheduled"}

	got, err := Apply(input, criteria)
	require.NoError(t, err)

	for _, r := range got {
		assert.True(t, Matches(r, criteria))
	}

	expected := 0
	for _, r := range input {
		if Matches(r, criteria) {
			expected++
			count := 0
			for _, o := range got {
				if o.Game.ID == r.Game.ID {
					count++
				}
			}
			assert.Equal(t, 1, count, "record %s must appear exactly once", r.Game.ID)
		}
	}
	assert.Len(t, got, expected)
}

func TestApplyEmptyInput(t *testing.T) {
	got, err := Apply(nil, DefaultCriteria())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApplyConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		field    string
	}{
		{"unknown sort field", Criteria{SortBy: "moneyline", SortOrder: Ascending}, "sortBy"},
		{"empty sort field", Criteria{SortOrder: Ascending}, "sortBy"},
		{"unknown order", Criteria{SortBy: SortBySpread, SortOrder: "sideways"}, "sortOrder"},
		{"unknown status", Criteria{SortBy: SortBySpread, SortOrder: Ascending, StatusFilter: "halftime"}, "statusFilter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(weekOneFixture(), tt.criteria)
			assert.Nil(t, got)

			var configErr *ConfigError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestClearFilters(t *testing.T) {
	criteria := Criteria{SortBy: SortBySpread, SortOrder: Descending, TeamFilter: "KC", StatusFilter: "scheduled"}
	assert.True(t, criteria.HasFilters())

	cleared := criteria.ClearFilters()
	assert.False(t, cleared.HasFilters())
	assert.Equal(t, SortBySpread, cleared.SortBy)
	assert.Equal(t, "KC", criteria.TeamFilter)
}

func TestFacets(t *testing.T) {
	fixture := weekOneFixture()
	assert.Equal(t, []models.GameStatus{models.StatusCompleted, models.StatusScheduled}, AvailableStatuses(fixture))
	assert.Equal(t, []string{"ARI", "BUF", "DAL", "KC", "NYG", "SF"}, AvailableTeams(fixture))
	assert.Empty(t, AvailableTeams(nil))
}
