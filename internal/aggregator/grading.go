package aggregator

import "github.com/yourusername/gridiron-lines/internal/models"

// Cover is the graded outcome of a spread or total bet
type Cover string

const (
	CoverWin  Cover = models.ResultWin
	CoverLoss Cover = models.ResultLoss
	CoverPush Cover = models.ResultPush
)

// CoveredSpread grades a side against the closing home spread.
// pointDiff is home score minus away score for home, and the reverse for away.
func CoveredSpread(pointDiff, homeSpread float64, home bool) Cover {
	line := homeSpread
	if !home {
		line = -homeSpread
	}

	adjusted := pointDiff + line
	switch {
	case adjusted > 0:
		return CoverWin
	case adjusted < 0:
		return CoverLoss
	default:
		return CoverPush
	}
}

// GradeOutcome regrades a game from the team's own line and margin
func GradeOutcome(game models.GameOutcome) Cover {
	return CoveredSpread(game.ActualMargin, game.Spread, true)
}

// MismatchedGrades returns the weeks whose reported ATS result disagrees with GradeOutcome
func MismatchedGrades(games []models.GameOutcome) []int {
	var weeks []int
	for _, game := range games {
		if string(GradeOutcome(game)) != game.ATSResult {
			weeks = append(weeks, game.Week)
		}
	}
	return weeks
}

// RecordFromOutcomes tallies the ATS results of graded games
func RecordFromOutcomes(games []models.GameOutcome) models.ATSRecord {
	var record models.ATSRecord
	for _, game := range games {
		switch game.ATSResult {
		case models.ResultWin:
			record.Wins++
		case models.ResultLoss:
			record.Losses++
		case models.ResultPush:
			record.Pushes++
		}
	}
	return record
}
