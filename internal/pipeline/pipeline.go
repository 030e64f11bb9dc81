// Package pipeline filters and orders betting records for display without
// touching the caller's collection.
package pipeline

import (
	"cmp"
	"math"
	"sort"

	"github.com/yourusername/gridiron-lines/internal/models"
)

// Apply returns a new slice holding the records that pass the criteria filters,
// stably ordered by the criteria sort field. The input slice is never reordered.
func Apply(records []models.BettingData, criteria Criteria) ([]models.BettingData, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	compare, err := comparator(criteria.SortBy)
	if err != nil {
		return nil, err
	}

	filtered := Filter(records, criteria)

	less := func(i, j int) bool {
		return compare(filtered[i], filtered[j]) < 0
	}
	if criteria.SortOrder == Descending {
		less = func(i, j int) bool {
			return compare(filtered[i], filtered[j]) > 0
		}
	}
	sort.SliceStable(filtered, less)

	return filtered, nil
}

// Filter returns a copy of the records that match the team and status filters
func Filter(records []models.BettingData, criteria Criteria) []models.BettingData {
	filtered := make([]models.BettingData, 0, len(records))
	for _, record := range records {
		if Matches(record, criteria) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Matches reports whether a single record passes the criteria filters
func Matches(record models.BettingData, criteria Criteria) bool {
	if criteria.TeamFilter != "" && !record.Game.Involves(criteria.TeamFilter) {
		return false
	}
	if criteria.StatusFilter != "" && string(record.Game.Status) != criteria.StatusFilter {
		return false
	}
	return true
}

// comparator resolves the three-way comparison for a sort field
func comparator(field SortField) (func(a, b models.BettingData) int, error) {
	switch field {
	case SortByGameTime:
		return func(a, b models.BettingData) int {
			return a.Game.GameTime.Compare(b.Game.GameTime)
		}, nil
	case SortBySpread:
		return func(a, b models.BettingData) int {
			return cmp.Compare(a.Odds.Spread, b.Odds.Spread)
		}, nil
	case SortByTotal:
		return func(a, b models.BettingData) int {
			return cmp.Compare(a.Odds.OverUnder, b.Odds.OverUnder)
		}, nil
	case SortByConfidence:
		return func(a, b models.BettingData) int {
			return cmp.Compare(confidenceKey(a), confidenceKey(b))
		}, nil
	default:
		return nil, NewConfigError("sortBy", string(field))
	}
}

// confidenceKey ranks records without a prediction below any real confidence
func confidenceKey(b models.BettingData) float64 {
	if !b.HasPrediction() {
		return math.Inf(-1)
	}
	return b.Predictions.Confidence
}
