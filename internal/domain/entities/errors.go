package entities

import (
	"errors"
	"strings"
)

var ErrInvalidCardNumber = errors.New("invalid card number")

// ValidationError accumulates every violated rule of a caller input so the
// caller sees all problems at once instead of fixing them one by one.

type ValidationError struct {
	Violations []string
}

func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "invalid input"
	}
	return "invalid input: " + strings.Join(e.Violations, "; ")
}

// Contains reports whether any accumulated violation mentions substr.
// Useful for tests and callers that branch on a specific rule.
func (e *ValidationError) Contains(substr string) bool {
	for _, v := range e.Violations {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}
