// Package config provides configuration management for the Gridiron Lines dashboard engine.
package config

import (
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Feed      FeedConfig      `mapstructure:"feed" validate:"required"`
	Cache     CacheConfig     `mapstructure:"cache" validate:"required"`
	Refresh   RefreshConfig   `mapstructure:"refresh"`
	Dashboard DashboardConfig `mapstructure:"dashboard" validate:"required"`
	Health    HealthConfig    `mapstructure:"health" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// FeedConfig represents where betting data snapshots come from
type FeedConfig struct {
	Type                string  `mapstructure:"type" validate:"required,oneof=http file"`
	BaseURL             string  `mapstructure:"base_url" validate:"omitempty,url"`
	FilePath            string  `mapstructure:"file_path"`
	TimeoutSeconds      int     `mapstructure:"timeout_seconds" validate:"gte=0"`
	MaxRetries          int     `mapstructure:"max_retries" validate:"gte=0"`
	RateLimit           float64 `mapstructure:"rate_limit" validate:"gte=0"`
	CircuitBreakMax     int     `mapstructure:"circuit_break_max" validate:"gte=0"`
	CircuitResetSeconds int     `mapstructure:"circuit_reset_seconds" validate:"gte=0"`
}

// CacheConfig represents the snapshot cache settings
type CacheConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds" validate:"required,gt=0"`
	MaxItems   int `mapstructure:"max_items" validate:"required,gt=0"`
}

// RefreshConfig represents periodic snapshot revalidation
type RefreshConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	IntervalSeconds int  `mapstructure:"interval_seconds" validate:"gte=0"`
	Week            int  `mapstructure:"week" validate:"gte=0,lte=18"`
}

// DashboardConfig represents defaults for the rendered views
type DashboardConfig struct {
	DefaultSortBy    string  `mapstructure:"default_sort_by" validate:"required,sortfield"`
	DefaultSortOrder string  `mapstructure:"default_sort_order" validate:"required,sortorder"`
	PreviewWager     float64 `mapstructure:"preview_wager" validate:"gte=0"`
	PercentDecimals  int     `mapstructure:"percent_decimals" validate:"gte=0,lte=4"`
}

// HealthConfig represents the ops endpoint configuration
type HealthConfig struct {
	Port        int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	MetricsPath string `mapstructure:"metrics_path" validate:"required,startswith=/"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// CacheTTL returns the snapshot cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// FeedTimeout returns the HTTP feed timeout as a duration
func (c *Config) FeedTimeout() time.Duration {
	return time.Duration(c.Feed.TimeoutSeconds) * time.Second
}
