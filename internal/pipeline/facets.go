package pipeline

import (
	"sort"

	"github.com/yourusername/gridiron-lines/internal/models"
)

// AvailableStatuses returns the distinct game statuses present, sorted
func AvailableStatuses(records []models.BettingData) []models.GameStatus {
	seen := make(map[models.GameStatus]struct{})
	statuses := make([]models.GameStatus, 0)
	for _, record := range records {
		if _, ok := seen[record.Game.Status]; ok {
			continue
		}
		seen[record.Game.Status] = struct{}{}
		statuses = append(statuses, record.Game.Status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	return statuses
}

// AvailableTeams returns the distinct team abbreviations playing in the records, sorted
func AvailableTeams(records []models.BettingData) []string {
	seen := make(map[string]struct{})
	teams := make([]string, 0)
	for _, record := range records {
		for _, abbr := range []string{record.Game.HomeTeam.Abbreviation, record.Game.AwayTeam.Abbreviation} {
			if _, ok := seen[abbr]; ok || abbr == "" {
				continue
			}
			seen[abbr] = struct{}{}
			teams = append(teams, abbr)
		}
	}
	sort.Strings(teams)
	return teams
}
