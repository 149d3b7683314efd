package config

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue/token"
)

// Error codes for configuration loading.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeReadFailed  = "E002" // File could not be read
	ErrCodeFormat      = "E003" // Unsupported file extension
	ErrCodeParseFailed = "E004" // YAML or CUE syntax error
	ErrCodeSchema      = "E005" // CUE schema violation
	ErrCodeInvalidCage = "E006" // Cage fails domain validation
	ErrCodeNoCages     = "E007" // File defines no cages
)

// LoadError represents an error that occurred while loading a cage file.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrorCode extracts the LoadError code from err, or ErrCodeGeneric.
func ErrorCode(err error) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	return ErrCodeGeneric
}
