// Package config provides configuration management for the Gridiron Lines dashboard engine.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. GRIDIRON_FEED_BASE_URL
const EnvPrefix = "GRIDIRON"

// DefaultConfigPath is used when no path is supplied
const DefaultConfigPath = "config/config.yaml"

// Load reads and parses the configuration from file and environment variables
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v := newViper()
	setDefaults(v)

	if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return unmarshal(v)
}

// LoadWithDefaults loads configuration, tolerating a missing file.
// Defaults and environment variables fill whatever the file leaves out.
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	v := newViper()
	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// setDefaults registers every key so AutomaticEnv can override it without a file entry
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "gridiron-lines")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("feed.type", "http")
	v.SetDefault("feed.base_url", "http://localhost:8000")
	v.SetDefault("feed.file_path", "")
	v.SetDefault("feed.timeout_seconds", 10)
	v.SetDefault("feed.max_retries", 3)
	v.SetDefault("feed.rate_limit", 5.0)
	v.SetDefault("feed.circuit_break_max", 5)
	v.SetDefault("feed.circuit_reset_seconds", 30)

	v.SetDefault("cache.ttl_seconds", 30)
	v.SetDefault("cache.max_items", 64)

	v.SetDefault("refresh.enabled", true)
	v.SetDefault("refresh.interval_seconds", 30)
	v.SetDefault("refresh.week", 0)

	v.SetDefault("dashboard.default_sort_by", "gameTime")
	v.SetDefault("dashboard.default_sort_order", "asc")
	v.SetDefault("dashboard.preview_wager", 100.0)
	v.SetDefault("dashboard.percent_decimals", 1)

	v.SetDefault("health.port", 8080)
	v.SetDefault("health.metrics_path", "/metrics")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}
