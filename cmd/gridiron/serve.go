package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/gridiron-lines/internal/health"
	"github.com/yourusername/gridiron-lines/internal/metrics"
	"github.com/yourusername/gridiron-lines/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Keep the snapshot cache fresh and expose health and metrics endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(parent context.Context) error {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"feed":        cfg.Feed.Type,
		"version":     Version,
	}).Info("Gridiron Lines starting")

	healthServer := health.NewServer(health.Config{
		ServiceName:    cfg.App.Name,
		Version:        Version,
		Port:           cfg.Health.Port,
		MetricsPath:    cfg.Health.MetricsPath,
		MetricsHandler: metrics.Handler(),
		Logger:         appLog,
		Feed:           snapshots,
	})
	if err := healthServer.Start(ctx); err != nil {
		return err
	}

	refresher := scheduler.NewScheduler(snapshots, appLog)

	warmCtx, warmCancel := context.WithTimeout(ctx, 15*time.Second)
	if err := refresher.RunNow(warmCtx, cfg.Refresh.Week); err != nil {
		appLog.WithError(err).Warn("Initial snapshot fetch failed; serving will retry on schedule")
	}
	warmCancel()

	if cfg.Refresh.Enabled {
		if _, err := refresher.ScheduleRevalidation(cfg.Refresh.IntervalSeconds, cfg.Refresh.Week); err != nil {
			return err
		}
		if err := refresher.Start(); err != nil {
			return err
		}
		defer refresher.Stop()
	}

	healthServer.SetReady(true)
	appLog.Info("Gridiron Lines is running")

	<-ctx.Done()
	appLog.Info("Shutdown signal received")
	healthServer.SetReady(false)

	return healthServer.Shutdown()
}
