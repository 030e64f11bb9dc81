package feed

import (
	"errors"
	"fmt"
)

// SourceError represents errors from feed operations
type SourceError struct {
	Source  string // Source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s (%v)", e.Source, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Source, e.Code, e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrCodeNotFound          = "not_found"
	ErrCodeInvalidData       = "invalid_data"
	ErrCodeNetworkError      = "network_error"
	ErrCodeServerError       = "server_error"
	ErrCodeCircuitOpen       = "circuit_open"
	ErrCodeUnknown           = "unknown"
)

var (
	ErrCircuitOpen = errors.New("circuit breaker open")
	ErrNotFound    = errors.New("data not found")
)

// NewSourceError creates a new source error
func NewSourceError(source, code, message string, err error) *SourceError {
	return &SourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrorCode extracts the code from a SourceError, or ErrCodeUnknown
func ErrorCode(err error) string {
	var se *SourceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeUnknown
}

// codeForStatus maps an HTTP status to an error code
func codeForStatus(status int) string {
	switch {
	case status == 404:
		return ErrCodeNotFound
	case status == 429:
		return ErrCodeRateLimitExceeded
	case status >= 500:
		return ErrCodeServerError
	default:
		return ErrCodeUnknown
	}
}
