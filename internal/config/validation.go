// Package config provides configuration management for the Gridiron Lines dashboard engine.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/gridiron-lines/internal/pipeline"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("environment", validateEnvironment)
	v.RegisterValidation("loglevel", validateLogLevel)
	v.RegisterValidation("sortfield", validateSortField)
	v.RegisterValidation("sortorder", validateSortOrder)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// DefaultCriteria builds the pipeline criteria configured for the dashboard
func (c *Config) DefaultCriteria() pipeline.Criteria {
	return pipeline.Criteria{
		SortBy:    pipeline.SortField(c.Dashboard.DefaultSortBy),
		SortOrder: pipeline.SortOrder(c.Dashboard.DefaultSortOrder),
	}
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func validateSortField(fl validator.FieldLevel) bool {
	switch pipeline.SortField(fl.Field().String()) {
	case pipeline.SortByGameTime, pipeline.SortBySpread, pipeline.SortByTotal, pipeline.SortByConfidence:
		return true
	default:
		return false
	}
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch pipeline.SortOrder(fl.Field().String()) {
	case pipeline.Ascending, pipeline.Descending:
		return true
	default:
		return false
	}
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	switch cfg.Feed.Type {
	case "http":
		if cfg.Feed.BaseURL == "" {
			return fmt.Errorf("feed base_url is required for the http feed")
		}
	case "file":
		if cfg.Feed.FilePath == "" {
			return fmt.Errorf("feed file_path is required for the file feed")
		}
	}

	if cfg.Refresh.Enabled && cfg.Refresh.IntervalSeconds < 5 {
		return fmt.Errorf("refresh interval_seconds must be at least 5 when refresh is enabled")
	}

	// a refresh slower than the cache TTL would leave the cache cold between runs
	if cfg.Refresh.Enabled && cfg.Refresh.IntervalSeconds > cfg.Cache.TTLSeconds {
		return fmt.Errorf("refresh interval_seconds (%d) cannot exceed cache ttl_seconds (%d)",
			cfg.Refresh.IntervalSeconds, cfg.Cache.TTLSeconds)
	}

	if cfg.IsProduction() {
		if cfg.Feed.Type == "file" {
			return fmt.Errorf("production environment requires the http feed")
		}
		if strings.HasPrefix(cfg.Feed.BaseURL, "http://localhost") {
			return fmt.Errorf("production environment cannot use a localhost feed")
		}
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "url":
			errMsg += fmt.Sprintf("- Field '%s' must be a valid URL, got '%v'\n", field, value)
		case "min", "max":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "sortfield":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: gameTime, spread, total, confidence\n", field)
		case "sortorder":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: asc, desc\n", field)
		case "oneof":
			errMsg += fmt.Sprintf("- Field '%s' has invalid value '%v'\n", field, value)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
