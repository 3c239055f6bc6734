// Package error defines domain-specific errors for the Gift Tracker application.
package error

import "errors"

// Suggestion domain errors.
var (
	// ErrInvalidScenario is returned when a brainstorming scenario is unknown.
	ErrInvalidScenario = errors.New("invalid brainstorming scenario")

	// ErrInvalidIdeaCount is returned when the requested idea count is out of range.
	ErrInvalidIdeaCount = errors.New("idea count out of range")

	// ErrSuggestionUnavailable is returned when the suggestion service is not configured.
	ErrSuggestionUnavailable = errors.New("suggestion service unavailable")
)

// SuggestionErrorCode defines error codes for suggestion errors.
// Format: SUG-XXYYYY where XX is category and YYYY is specific error.
type SuggestionErrorCode string

const (
	ErrCodeInvalidScenario       SuggestionErrorCode = "SUG-010001"
	ErrCodeInvalidIdeaCount      SuggestionErrorCode = "SUG-010002"
	ErrCodeSuggestionUnavailable SuggestionErrorCode = "SUG-010003"
)

// SuggestionError represents a suggestion error with code and message.
type SuggestionError struct {
	Code    SuggestionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SuggestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// NewSuggestionError creates a new SuggestionError with the given code and message.
func NewSuggestionError(code SuggestionErrorCode, message string, err error) *SuggestionError {
	return &SuggestionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
