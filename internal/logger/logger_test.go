package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	log := newLogger(buf, "debug", "development")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	log = newLogger(buf, "bogus", "production")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
	assert.Contains(t, buf.String(), "Invalid log level")
}

func TestFeedLoggerFetch(t *testing.T) {
	log, buf := setupTestLogger()
	feedLogger := NewFeedLogger(log)

	feedLogger.LogFetch("http", 3, 14, 250*time.Millisecond)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "feed", logEntry["component"])
	assert.Equal(t, "http", logEntry["source"])
	assert.Equal(t, float64(3), logEntry["week"])
	assert.Equal(t, float64(14), logEntry["records"])
	assert.Equal(t, float64(250), logEntry["duration_ms"])
}

func TestFeedLoggerFetchError(t *testing.T) {
	log, buf := setupTestLogger()
	feedLogger := NewFeedLogger(log)

	feedLogger.LogFetchError("http", "RATE_LIMIT", 0, errors.New("429 too many requests"))

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "error", logEntry["level"])
	assert.Equal(t, "RATE_LIMIT", logEntry["code"])
	assert.Equal(t, "429 too many requests", logEntry["error"])
}

func TestFeedLoggerRecordSkipped(t *testing.T) {
	log, buf := setupTestLogger()
	feedLogger := NewFeedLogger(log)

	feedLogger.LogRecordSkipped("game-7", []string{"week out of range"})

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "warning", logEntry["level"])
	assert.Equal(t, "game-7", logEntry["record_id"])
}

func TestFeedLoggerCacheLookupIsDebug(t *testing.T) {
	log, buf := setupTestLogger()
	log.SetLevel(logrus.InfoLevel)
	feedLogger := NewFeedLogger(log)

	feedLogger.LogCacheLookup("week:1", true)

	assert.Empty(t, buf.String())
}

func TestDashboardLoggerGamesRendered(t *testing.T) {
	log, buf := setupTestLogger()
	dashboardLogger := NewDashboardLogger(log)

	dashboardLogger.LogGamesRendered("render-1", "confidence", "desc", "KC", "", 16, 2, 1.5)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "dashboard", logEntry["component"])
	assert.Equal(t, "confidence", logEntry["sort_by"])
	assert.Equal(t, "KC", logEntry["team_filter"])
	assert.Equal(t, float64(2), logEntry["records_out"])
}

func TestDashboardLoggerCriteriaRejected(t *testing.T) {
	log, buf := setupTestLogger()
	dashboardLogger := NewDashboardLogger(log)

	dashboardLogger.LogCriteriaRejected("render-2", errors.New("unknown sortBy"))

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "warning", logEntry["level"])
	assert.Equal(t, "render-2", logEntry["render_id"])
}

func TestDashboardLoggerTeamPanel(t *testing.T) {
	log, buf := setupTestLogger()
	dashboardLogger := NewDashboardLogger(log)

	dashboardLogger.LogTeamPanel("render-3", "BUF", 5, 66.7, 40)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "BUF", logEntry["team"])
	assert.Equal(t, 66.7, logEntry["ats_win_pct"])
}

func TestDashboardLoggerGradeMismatch(t *testing.T) {
	log, buf := setupTestLogger()
	dashboardLogger := NewDashboardLogger(log)

	dashboardLogger.LogGradeMismatch("KC", []int{2, 4})

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "warning", logEntry["level"])
	assert.Equal(t, "KC", logEntry["team"])
	assert.Equal(t, []interface{}{2.0, 4.0}, logEntry["weeks"])
}
