// Package feed loads betting data snapshots for the dashboard engine.
package feed

import (
	"context"

	"github.com/yourusername/gridiron-lines/internal/models"
)

// AllWeeks requests every week of the season from a Source.
const AllWeeks = 0

// Source defines the interface for fetching betting snapshots from a provider
type Source interface {
	// FetchBettingData retrieves the betting records for a week, or every week for AllWeeks
	FetchBettingData(ctx context.Context, week int) ([]models.BettingData, error)

	// FetchTeamPerformance retrieves the season summary for a team abbreviation
	FetchTeamPerformance(ctx context.Context, abbreviation string) (*models.TeamPerformance, error)

	// FetchTrends retrieves the league-wide weekly trend rates
	FetchTrends(ctx context.Context) ([]models.WeeklyTrend, error)

	// Name returns the name of the source
	Name() string
}

// Snapshot is the document shape served by fixture files.
type Snapshot struct {
	BettingData     []models.BettingData              `json:"bettingData"`
	TeamPerformance map[string]models.TeamPerformance `json:"teamPerformance"`
	Trends          []models.WeeklyTrend              `json:"trends"`
}
