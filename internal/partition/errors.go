package partition

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only error category in this module.
// Match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports an operation that received an argument it cannot
// work with: a negative total, or a nil or empty partition handed to a
// predicate that needs at least one element.
type ArgumentError struct {
	// Op names the rejecting operation (e.g. "ContainsGreaterThan").
	Op string

	// Reason is a human-readable description.
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrInvalidArgument, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidArgument) succeed.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewArgumentError creates an ArgumentError for op.
func NewArgumentError(op, reason string) *ArgumentError {
	return &ArgumentError{Op: op, Reason: reason}
}

// IsInvalidArgument returns true if err is, or wraps, an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// RequireNonEmpty rejects a nil or empty partition on behalf of op.
func RequireNonEmpty(op string, p Partition) error {
	if p == nil {
		return NewArgumentError(op, "the partition cannot be nil")
	}
	if len(p) == 0 {
		return NewArgumentError(op, "the partition cannot be empty")
	}
	return nil
}
