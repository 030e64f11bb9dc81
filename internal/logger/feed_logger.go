// Package logger provides feed-specific logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// FeedLogger provides dedicated logging for snapshot fetches and cache refreshes.
type FeedLogger struct {
	*logrus.Entry
}

// NewFeedLogger creates a new feed logger.
func NewFeedLogger(baseLogger *logrus.Logger) *FeedLogger {
	return &FeedLogger{
		Entry: baseLogger.WithField("component", "feed"),
	}
}

// LogFetch logs a completed snapshot fetch.
func (fl *FeedLogger) LogFetch(source string, week, records int, duration time.Duration) {
	fl.WithFields(logrus.Fields{
		"source":      source,
		"week":        week,
		"records":     records,
		"duration_ms": duration.Milliseconds(),
	}).Info("Betting data fetched")
}

// LogFetchError logs a failed snapshot fetch.
func (fl *FeedLogger) LogFetchError(source, code string, week int, err error) {
	fl.WithFields(logrus.Fields{
		"source": source,
		"code":   code,
		"week":   week,
	}).WithError(err).Error("Betting data fetch failed")
}

// LogCacheLookup logs a snapshot cache lookup at debug level.
func (fl *FeedLogger) LogCacheLookup(key string, hit bool) {
	fl.WithFields(logrus.Fields{
		"cache_key": key,
		"hit":       hit,
	}).Debug("Snapshot cache lookup")
}

// LogRevalidation logs a scheduled snapshot revalidation.
func (fl *FeedLogger) LogRevalidation(week, records int, duration time.Duration) {
	fl.WithFields(logrus.Fields{
		"event_type":  "revalidation",
		"week":        week,
		"records":     records,
		"duration_ms": duration.Milliseconds(),
	}).Info("Snapshot revalidated")
}

// LogRecordSkipped logs a record dropped for failing validation.
func (fl *FeedLogger) LogRecordSkipped(recordID string, problems []string) {
	fl.WithFields(logrus.Fields{
		"record_id": recordID,
		"problems":  problems,
	}).Warn("Skipping invalid betting record")
}
