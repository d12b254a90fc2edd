// Package errors defines the error taxonomy for the fuzzy matching system.
package errors

import "fmt"

// ErrorType classifies errors for callers that branch on category.
type ErrorType string

const (
	// Scoring errors
	ErrorTypeCutoff ErrorType = "cutoff"

	// Candidate loading errors
	ErrorTypeDictionary ErrorType = "dictionary"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// CutoffError reports a score cutoff supplied outside [0, 100]. The cutoff
// is never clamped silently; the caller decides how to recover.
type CutoffError struct {
	Type  ErrorType
	Value float64
}

// NewCutoffError creates a cutoff range error.
func NewCutoffError(value float64) *CutoffError {
	return &CutoffError{Type: ErrorTypeCutoff, Value: value}
}

// Error implements the error interface
func (e *CutoffError) Error() string {
	return fmt.Sprintf("score cutoff %g outside the valid range [0, 100]", e.Value)
}

// ValidateCutoff returns a CutoffError when cutoff falls outside [0, 100].
func ValidateCutoff(cutoff float64) error {
	if cutoff < 0 || cutoff > 100 {
		return NewCutoffError(cutoff)
	}
	return nil
}

// DictionaryError represents a failure loading or reloading a candidate
// dictionary from disk.
type DictionaryError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
}

// NewDictionaryError creates a new dictionary error with context.
func NewDictionaryError(op, path string, err error) *DictionaryError {
	return &DictionaryError{
		Type:       ErrorTypeDictionary,
		Path:       path,
		Operation:  op,
		Underlying: err,
	}
}

// Error implements the error interface
func (e *DictionaryError) Error() string {
	return fmt.Sprintf("dictionary %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *DictionaryError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
type ConfigError struct {
	Type       ErrorType
	Field      string
	Value      string
	Underlying error
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Type:       ErrorTypeConfig,
		Field:      field,
		Value:      value,
		Underlying: err,
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}
