package models

import (
	"errors"
	"fmt"
	"strings"
)

// Custom errors
var (
	ErrNotFound       = errors.New("record not found")
	ErrGameIDMismatch = errors.New("odds game id does not match game id")
	ErrSameTeams      = errors.New("home and away team must differ")
	ErrInvalidStatus  = errors.New("invalid game status")
)

// ValidationError lists every field of a record that failed validation.
type ValidationError struct {
	RecordID string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid betting data %q: %s", e.RecordID, strings.Join(e.Problems, "; "))
}

// NewValidationError creates a new validation error
func NewValidationError(recordID string, problems []string) *ValidationError {
	return &ValidationError{
		RecordID: recordID,
		Problems: problems,
	}
}
