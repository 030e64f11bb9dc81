package feed

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-lines/internal/config"
)

// SourceType represents the type of feed
type SourceType string

const (
	// HTTPSourceType reads from the betting analytics API
	HTTPSourceType SourceType = "http"
	// FileSourceType reads a JSON fixture
	FileSourceType SourceType = "file"
)

// NewSource creates a Source based on the feed configuration
func NewSource(cfg config.FeedConfig, logger *logrus.Logger) (Source, error) {
	switch SourceType(cfg.Type) {
	case HTTPSourceType:
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("feed base URL is required")
		}
		return NewHTTPSource(NewRateLimitedHTTPClient(httpClientConfig(cfg), logger), cfg.BaseURL, logger), nil

	case FileSourceType:
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("feed file path is required")
		}
		return NewFileSource(cfg.FilePath), nil

	default:
		return nil, fmt.Errorf("unknown feed type: %s", cfg.Type)
	}
}

func httpClientConfig(cfg config.FeedConfig) HTTPClientConfig {
	clientCfg := DefaultHTTPClientConfig()
	if cfg.TimeoutSeconds > 0 {
		clientCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	clientCfg.MaxRetries = cfg.MaxRetries
	if cfg.RateLimit > 0 {
		clientCfg.RateLimit = cfg.RateLimit
	}
	if cfg.CircuitBreakMax > 0 {
		clientCfg.CircuitBreakerMax = cfg.CircuitBreakMax
	}
	if cfg.CircuitResetSeconds > 0 {
		clientCfg.CircuitResetAfter = time.Duration(cfg.CircuitResetSeconds) * time.Second
	}
	return clientCfg
}
