package pipeline

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// SortField names the record field the pipeline orders by
type SortField string

const (
	SortByGameTime   SortField = "gameTime"
	SortBySpread     SortField = "spread"
	SortByTotal      SortField = "total"
	SortByConfidence SortField = "confidence"
)

// SortOrder is the direction of the sort
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Criteria is the declarative filter and sort request.
// Empty filters match every record.
type Criteria struct {
	SortBy       SortField `json:"sortBy" mapstructure:"sort_by" validate:"oneof=gameTime spread total confidence"`
	SortOrder    SortOrder `json:"sortOrder" mapstructure:"sort_order" validate:"oneof=asc desc"`
	TeamFilter   string    `json:"teamFilter" mapstructure:"team_filter"`
	StatusFilter string    `json:"statusFilter" mapstructure:"status_filter" validate:"omitempty,oneof=scheduled in_progress completed"`
}

// ConfigError reports an unrecognized criteria value
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unrecognized %s %q", e.Field, e.Value)
}

// NewConfigError creates a new criteria configuration error
func NewConfigError(field, value string) *ConfigError {
	return &ConfigError{
		Field: field,
		Value: value,
	}
}

var (
	criteriaValidator *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		criteriaValidator = validator.New()
	})
	return criteriaValidator
}

// DefaultCriteria is the dashboard's initial state: earliest kickoff first, no filters
func DefaultCriteria() Criteria {
	return Criteria{
		SortBy:    SortByGameTime,
		SortOrder: Ascending,
	}
}

// Validate checks every enum field, reporting the first offending one as a ConfigError
func (c Criteria) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return fmt.Errorf("criteria validation failed: %w", err)
	}

	fe := validationErrors[0]
	return NewConfigError(fieldName(fe.StructField()), fmt.Sprint(fe.Value()))
}

// ClearFilters returns a copy with the team and status filters reset
func (c Criteria) ClearFilters() Criteria {
	c.TeamFilter = ""
	c.StatusFilter = ""
	return c
}

// HasFilters reports whether any filter is active
func (c Criteria) HasFilters() bool {
	return c.TeamFilter != "" || c.StatusFilter != ""
}

func fieldName(structField string) string {
	switch structField {
	case "SortBy":
		return "sortBy"
	case "SortOrder":
		return "sortOrder"
	case "StatusFilter":
		return "statusFilter"
	default:
		return structField
	}
}
