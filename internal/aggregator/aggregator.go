// Package aggregator reduces a team's graded game history into summary statistics.
package aggregator

import (
	"math"
	"strconv"

	"github.com/yourusername/gridiron-lines/internal/models"
)

// Last5Entry is one point of the last-five-games chart
type Last5Entry struct {
	Game         string  `json:"game"`
	Spread       float64 `json:"spread"`
	ActualMargin float64 `json:"actualMargin"`
	Covered      bool    `json:"covered"`
}

// TeamSummary is the derived team performance panel
type TeamSummary struct {
	ATSRecord        string       `json:"atsRecord"`
	ATSWinPercentage int          `json:"atsWinPercentage"`
	OverUnderRecord  string       `json:"overUnderRecord"`
	OverPercentage   int          `json:"overPercentage"`
	Last5ATSRecord   string       `json:"last5AtsRecord"`
	Last5            []Last5Entry `json:"last5"`
}

// ATSWinPercentage returns the whole-number cover rate over decided games.
// Pushes are excluded and a record with no decided games yields 0.
func ATSWinPercentage(record models.ATSRecord) int {
	return ratioPercent(record.Wins, record.Losses)
}

// OverPercentage returns the whole-number over rate, with the same no-data policy
func OverPercentage(record models.OverUnderRecord) int {
	return ratioPercent(record.Overs, record.Unders)
}

// Last5Summary maps graded games to chart entries, preserving order
func Last5Summary(games []models.GameOutcome) []Last5Entry {
	entries := make([]Last5Entry, 0, len(games))
	for _, game := range games {
		entries = append(entries, Last5Entry{
			Game:         WeekLabel(game.Week),
			Spread:       game.Spread,
			ActualMargin: game.ActualMargin,
			Covered:      game.ATSResult == models.ResultWin,
		})
	}
	return entries
}

// Summarize builds the full team summary panel
func Summarize(perf models.TeamPerformance) TeamSummary {
	return TeamSummary{
		ATSRecord:        FormatATSRecord(perf.ATSRecord),
		ATSWinPercentage: ATSWinPercentage(perf.ATSRecord),
		OverUnderRecord:  FormatOverUnderRecord(perf.OverUnderRecord),
		OverPercentage:   OverPercentage(perf.OverUnderRecord),
		Last5ATSRecord:   FormatATSRecord(RecordFromOutcomes(perf.Last5Games)),
		Last5:            Last5Summary(perf.Last5Games),
	}
}

// FormatATSRecord renders "wins-losses", appending pushes only when present
func FormatATSRecord(record models.ATSRecord) string {
	s := strconv.Itoa(record.Wins) + "-" + strconv.Itoa(record.Losses)
	if record.Pushes > 0 {
		s += "-" + strconv.Itoa(record.Pushes)
	}
	return s
}

// FormatOverUnderRecord renders "6O-6U"
func FormatOverUnderRecord(record models.OverUnderRecord) string {
	return strconv.Itoa(record.Overs) + "O-" + strconv.Itoa(record.Unders) + "U"
}

// WeekLabel renders a chart axis label, e.g. "W3"
func WeekLabel(week int) string {
	return "W" + strconv.Itoa(week)
}

func ratioPercent(hits, misses int) int {
	total := hits + misses
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(hits) / float64(total) * 100))
}
