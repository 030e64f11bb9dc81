// Package logger provides dashboard rendering logs.
package logger

import (
	"github.com/sirupsen/logrus"
)

// DashboardLogger logs view rendering for the dashboard service.
type DashboardLogger struct {
	*logrus.Entry
}

// NewDashboardLogger creates a new dashboard logger.
func NewDashboardLogger(baseLogger *logrus.Logger) *DashboardLogger {
	return &DashboardLogger{
		Entry: baseLogger.WithField("component", "dashboard"),
	}
}

// LogGamesRendered logs a rendered game list.
func (dl *DashboardLogger) LogGamesRendered(renderID, sortBy, sortOrder, teamFilter, statusFilter string, input, output int, durationMs float64) {
	dl.WithFields(logrus.Fields{
		"render_id":     renderID,
		"sort_by":       sortBy,
		"sort_order":    sortOrder,
		"team_filter":   teamFilter,
		"status_filter": statusFilter,
		"records_in":    input,
		"records_out":   output,
		"duration_ms":   durationMs,
	}).Info("Game list rendered")
}

// LogCriteriaRejected logs a rejected sort or filter request.
func (dl *DashboardLogger) LogCriteriaRejected(renderID string, err error) {
	dl.WithFields(logrus.Fields{
		"render_id": renderID,
	}).WithError(err).Warn("Criteria rejected")
}

// LogTeamPanel logs a rendered team analytics panel.
func (dl *DashboardLogger) LogTeamPanel(renderID, team string, last5Games int, atsWinPct, overPct float64) {
	dl.WithFields(logrus.Fields{
		"render_id":   renderID,
		"team":        team,
		"last5_games": last5Games,
		"ats_win_pct": atsWinPct,
		"over_pct":    overPct,
	}).Info("Team panel rendered")
}

// LogGradeMismatch logs recent games whose reported ATS result disagrees with the line and margin.
func (dl *DashboardLogger) LogGradeMismatch(team string, weeks []int) {
	dl.WithFields(logrus.Fields{
		"team":  team,
		"weeks": weeks,
	}).Warn("Reported ATS results disagree with graded spread")
}
