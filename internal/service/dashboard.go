// Package service ties the feed to the analytics engine and renders dashboard views.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-lines/internal/aggregator"
	"github.com/yourusername/gridiron-lines/internal/feed"
	"github.com/yourusername/gridiron-lines/internal/logger"
	"github.com/yourusername/gridiron-lines/internal/metrics"
	"github.com/yourusername/gridiron-lines/internal/models"
	"github.com/yourusername/gridiron-lines/internal/oddsmath"
	"github.com/yourusername/gridiron-lines/internal/pipeline"
)

// DefaultPreviewWager is the stake used for payout previews when none is configured
const DefaultPreviewWager = 100.0

// DashboardOptions configures rendering
type DashboardOptions struct {
	PreviewWager float64
	// nil selects oddsmath.DefaultPercentDecimals; 0 renders whole percentages
	PercentDecimals *int
}

// FilterOptions lists the values the filter controls can offer
type FilterOptions struct {
	Teams    []string            `json:"teams"`
	Statuses []models.GameStatus `json:"statuses"`
}

// Dashboard renders betting views from a feed source
type Dashboard struct {
	source    feed.Source
	validator *RecordValidator
	opts      renderOptions
	logger    *logger.DashboardLogger
}

// NewDashboard creates a new dashboard service
func NewDashboard(source feed.Source, opts DashboardOptions, log *logrus.Logger) *Dashboard {
	if opts.PreviewWager <= 0 {
		opts.PreviewWager = DefaultPreviewWager
	}
	decimals := oddsmath.DefaultPercentDecimals
	if opts.PercentDecimals != nil && *opts.PercentDecimals >= 0 {
		decimals = *opts.PercentDecimals
	}

	return &Dashboard{
		source:    source,
		validator: NewRecordValidator(logger.NewFeedLogger(log)),
		opts: renderOptions{
			wager:           opts.PreviewWager,
			percentDecimals: decimals,
		},
		logger: logger.NewDashboardLogger(log),
	}
}

// Games fetches the week, drops invalid records, applies criteria and renders the cards
func (d *Dashboard) Games(ctx context.Context, week int, criteria pipeline.Criteria) ([]GameView, error) {
	renderID := uuid.New().String()

	if err := criteria.Validate(); err != nil {
		d.rejectCriteria(renderID, err)
		return nil, err
	}

	records, err := d.records(ctx, week)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	selected, err := pipeline.Apply(records, criteria)
	if err != nil {
		d.rejectCriteria(renderID, err)
		return nil, err
	}
	elapsed := time.Since(start)

	views := make([]GameView, 0, len(selected))
	for _, record := range selected {
		view, err := renderGame(record, d.opts)
		if err != nil {
			return nil, fmt.Errorf("failed to render game: %w", err)
		}
		views = append(views, view)
	}

	metrics.RecordPipelineApplication(string(criteria.SortBy), string(criteria.SortOrder), elapsed.Seconds(), len(views))
	d.logger.LogGamesRendered(renderID, string(criteria.SortBy), string(criteria.SortOrder),
		criteria.TeamFilter, criteria.StatusFilter, len(records), len(views), float64(elapsed.Microseconds())/1000)

	return views, nil
}

// TeamPanel fetches and summarizes a team's season
func (d *Dashboard) TeamPanel(ctx context.Context, abbreviation string) (*aggregator.TeamSummary, error) {
	abbreviation = strings.ToUpper(strings.TrimSpace(abbreviation))
	if abbreviation == "" {
		return nil, fmt.Errorf("team abbreviation is required")
	}

	perf, err := d.source.FetchTeamPerformance(ctx, abbreviation)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch performance for %s: %w", abbreviation, err)
	}
	if err := perf.Validate(); err != nil {
		return nil, err
	}

	if weeks := aggregator.MismatchedGrades(perf.Last5Games); len(weeks) > 0 {
		d.logger.LogGradeMismatch(abbreviation, weeks)
	}

	summary := aggregator.Summarize(*perf)
	metrics.RecordTeamPanel()
	d.logger.LogTeamPanel(uuid.New().String(), abbreviation, len(summary.Last5),
		float64(summary.ATSWinPercentage), float64(summary.OverPercentage))

	return &summary, nil
}

// Filters returns the teams and statuses present in the week's valid records
func (d *Dashboard) Filters(ctx context.Context, week int) (*FilterOptions, error) {
	records, err := d.records(ctx, week)
	if err != nil {
		return nil, err
	}

	return &FilterOptions{
		Teams:    pipeline.AvailableTeams(records),
		Statuses: pipeline.AvailableStatuses(records),
	}, nil
}

// Trends returns the league trend series as chart points
func (d *Dashboard) Trends(ctx context.Context) ([]aggregator.TrendPoint, error) {
	trends, err := d.source.FetchTrends(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trends: %w", err)
	}
	return aggregator.TrendSeries(trends), nil
}

func (d *Dashboard) records(ctx context.Context, week int) ([]models.BettingData, error) {
	raw, err := d.source.FetchBettingData(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch betting data: %w", err)
	}

	valid, skipped := d.validator.ValidateRecords(raw)
	if skipped > 0 {
		metrics.RecordSkippedRecords(skipped)
	}
	return valid, nil
}

func (d *Dashboard) rejectCriteria(renderID string, err error) {
	var cfgErr *pipeline.ConfigError
	if errors.As(err, &cfgErr) {
		metrics.RecordCriteriaError(cfgErr.Field)
	}
	d.logger.LogCriteriaRejected(renderID, err)
}
