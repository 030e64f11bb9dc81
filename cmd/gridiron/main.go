// Package main provides the gridiron command line for NFL betting analytics.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/gridiron-lines/internal/config"
	"github.com/yourusername/gridiron-lines/internal/feed"
	"github.com/yourusername/gridiron-lines/internal/logger"
	"github.com/yourusername/gridiron-lines/internal/metrics"
	"github.com/yourusername/gridiron-lines/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	jsonOutput bool
	appLog     *logrus.Logger
	cfg        *config.Config
	snapshots  *feed.SnapshotCache
	dashboard  *service.Dashboard
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigPath, "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(gamesCmd, teamCmd, filtersCmd, trendsCmd, serveCmd)
}

var rootCmd = &cobra.Command{
	Use:     "gridiron",
	Short:   "NFL betting lines, predictions and team trends",
	Long:    `Renders NFL betting lines with implied probabilities, prediction confidence and team against-the-spread analytics.`,
	Version: Version + " (" + GitCommit + ")",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies() error {
	appLog = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	metrics.InitRegistry()

	source, err := feed.NewSource(cfg.Feed, appLog)
	if err != nil {
		return err
	}

	snapshots = feed.NewSnapshotCache(source, cfg.CacheTTL(), cfg.Cache.MaxItems, appLog)
	dashboard = service.NewDashboard(snapshots, service.DashboardOptions{
		PreviewWager:    cfg.Dashboard.PreviewWager,
		PercentDecimals: &cfg.Dashboard.PercentDecimals,
	}, appLog)

	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func stdout() io.Writer {
	return os.Stdout
}
