// Package scheduler revalidates cached betting snapshots on a fixed interval.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-lines/internal/logger"
	"github.com/yourusername/gridiron-lines/internal/metrics"
)

// MinIntervalSeconds is the shortest revalidation interval accepted
const MinIntervalSeconds = 5

// Refresher replaces a cached week snapshot with a fresh fetch
type Refresher interface {
	Refresh(ctx context.Context, week int) (int, error)
}

// Scheduler manages scheduled snapshot revalidation jobs
type Scheduler struct {
	cron            *cron.Cron
	refresher       Refresher
	logger          *logger.FeedLogger
	mu              sync.RWMutex
	isRunning       bool
	jobIDs          []cron.EntryID
	gracefulTimeout time.Duration
}

// NewScheduler creates a new scheduler
func NewScheduler(refresher Refresher, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:            cron.New(cron.WithLocation(time.UTC)),
		refresher:       refresher,
		logger:          logger.NewFeedLogger(log),
		jobIDs:          make([]cron.EntryID, 0),
		gracefulTimeout: 10 * time.Second,
	}
}

// ScheduleRevalidation schedules a refresh of the given week every intervalSeconds
func (s *Scheduler) ScheduleRevalidation(intervalSeconds, week int) (cron.EntryID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return 0, fmt.Errorf("cannot schedule job while scheduler is running")
	}

	if intervalSeconds < MinIntervalSeconds {
		intervalSeconds = MinIntervalSeconds
	}
	timeout := time.Duration(intervalSeconds-1) * time.Second

	entryID, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", intervalSeconds), func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		s.revalidate(ctx, week)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithFields(logrus.Fields{
		"interval_seconds": intervalSeconds,
		"week":             week,
	}).Info("Scheduled snapshot revalidation")

	return entryID, nil
}

// RunNow performs one revalidation synchronously, e.g. to warm the cache at startup
func (s *Scheduler) RunNow(ctx context.Context, week int) error {
	return s.revalidate(ctx, week)
}

func (s *Scheduler) revalidate(ctx context.Context, week int) error {
	start := time.Now()
	records, err := s.refresher.Refresh(ctx, week)
	metrics.RecordRevalidation(err == nil)
	if err != nil {
		s.logger.WithError(err).WithField("week", week).Error("Snapshot revalidation failed")
		return err
	}

	s.logger.LogRevalidation(week, records, time.Since(start))
	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Infof("Scheduler started with %d jobs", len(s.jobIDs))

	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs up to the graceful timeout
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.gracefulTimeout)
	defer cancel()

	s.isRunning = false
	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for running jobs: %w", ctx.Err())
	}
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRun returns the time of the next scheduled job run
func (s *Scheduler) GetNextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || len(s.jobIDs) == 0 {
		return time.Time{}
	}

	nextRun := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			if nextRun.IsZero() || entry.Next.Before(nextRun) {
				nextRun = entry.Next
			}
		}
	}

	return nextRun
}

// Entries returns information about scheduled entries
func (s *Scheduler) Entries() []cron.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]cron.Entry, 0, len(s.jobIDs))
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			entries = append(entries, entry)
		}
	}

	return entries
}

// RemoveJob removes a scheduled job
func (s *Scheduler) RemoveJob(jobID cron.EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot remove job while scheduler is running")
	}

	s.cron.Remove(jobID)
	for i, id := range s.jobIDs {
		if id == jobID {
			s.jobIDs = append(s.jobIDs[:i], s.jobIDs[i+1:]...)
			break
		}
	}
	s.logger.WithField("job_id", jobID).Info("Removed job")

	return nil
}
