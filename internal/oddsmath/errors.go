package oddsmath

import "fmt"

// DomainError reports numeric input outside the American odds convention
type DomainError struct {
	Op     string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: invalid input %v: %s", e.Op, e.Value, e.Reason)
}

// NewDomainError creates a new domain error
func NewDomainError(op string, value float64, reason string) *DomainError {
	return &DomainError{
		Op:     op,
		Value:  value,
		Reason: reason,
	}
}

func zeroOddsError(op string) *DomainError {
	return NewDomainError(op, 0, "American odds cannot be 0")
}
