package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/gridiron-lines/internal/aggregator"
	"github.com/yourusername/gridiron-lines/internal/config"
	"github.com/yourusername/gridiron-lines/internal/pipeline"
	"github.com/yourusername/gridiron-lines/internal/service"
)

func TestBuildCriteriaOverridesDefaults(t *testing.T) {
	cfg = &config.Config{Dashboard: config.DashboardConfig{DefaultSortBy: "confidence", DefaultSortOrder: "desc"}}
	t.Cleanup(func() {
		cfg = nil
		sortBy, sortOrder, teamFilter, statusFilter = "", "", "", ""
	})

	criteria := buildCriteria()
	assert.Equal(t, pipeline.SortByConfidence, criteria.SortBy)
	assert.Equal(t, pipeline.Descending, criteria.SortOrder)

	sortBy, sortOrder, teamFilter = "spread", "asc", "KC"
	criteria = buildCriteria()
	assert.Equal(t, pipeline.SortBySpread, criteria.SortBy)
	assert.Equal(t, pipeline.Ascending, criteria.SortOrder)
	assert.Equal(t, "KC", criteria.TeamFilter)
}

func TestPrintGames(t *testing.T) {
	var buf bytes.Buffer
	printGames(&buf, nil, pipeline.DefaultCriteria(), -1)
	assert.Equal(t, "No games available.\n", buf.String())

	buf.Reset()
	confidence := 0.75
	printGames(&buf, []service.GameView{{
		Week:            1,
		Matchup:         "BAL @ KC",
		GameTime:        time.Date(2024, 9, 6, 0, 20, 0, 0, time.UTC),
		Away:            service.SideView{Spread: "+3", Moneyline: "+130", ImpliedProbability: "43.5%"},
		Home:            service.SideView{Spread: "-3", Moneyline: "-150", ImpliedProbability: "60.0%"},
		Total:           "O/U 46.5",
		StatusLabel:     "SCHEDULED",
		Confidence:      &confidence,
		ConfidenceLabel: "75% confidence",
		PredictedWinner: "KC",
		ValueAssessment: "Strong value",
	}}, pipeline.DefaultCriteria(), -1)

	out := buf.String()
	assert.Contains(t, out, "BAL @ KC")
	assert.Contains(t, out, "+3 / -3")
	assert.Contains(t, out, "75% confidence (KC)")
	assert.Contains(t, out, "Strong value")
}

func TestPrintGamesNoMatchesWithFilters(t *testing.T) {
	criteria := pipeline.DefaultCriteria()
	criteria.TeamFilter = "DAL"

	var buf bytes.Buffer
	printGames(&buf, nil, criteria, 3)
	out := buf.String()
	assert.Contains(t, out, `No games match the current filters (team="DAL" status="")`)
	assert.Contains(t, out, "3 games available with filters cleared.")

	buf.Reset()
	printGames(&buf, nil, criteria, 0)
	assert.NotContains(t, buf.String(), "filters cleared")
}

func TestPrintTeamSummary(t *testing.T) {
	var buf bytes.Buffer
	printTeamSummary(&buf, "KC", &aggregator.TeamSummary{
		ATSRecord:        "8-4",
		ATSWinPercentage: 67,
		OverUnderRecord:  "6O-6U",
		OverPercentage:   50,
		Last5ATSRecord:   "1-0",
		Last5:            []aggregator.Last5Entry{{Game: "W1", Spread: -3, ActualMargin: 7, Covered: true}},
	})

	out := buf.String()
	assert.Contains(t, out, "KC Performance")
	assert.Contains(t, out, "8-4 (67%)")
	assert.Contains(t, out, "6O-6U (50% overs)")
	assert.Contains(t, out, "Last 5 ATS:  1-0")
	assert.Contains(t, out, "W1")
}
