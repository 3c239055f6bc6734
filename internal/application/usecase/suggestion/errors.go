// Package suggestion contains AI gift brainstorming use cases.
package suggestion

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Error code constants for brainstorming failures.
const (
	ErrCodeAIServiceUnavailable = "AI_SERVICE_UNAVAILABLE"
	ErrCodeAIRateLimited        = "AI_RATE_LIMITED"
	ErrCodeAIAuthError          = "AI_AUTH_ERROR"
	ErrCodeAITimeout            = "AI_TIMEOUT"
	ErrCodeAIParseError         = "AI_PARSE_ERROR"
	ErrCodeAIUnknownError       = "AI_UNKNOWN_ERROR"
)

// errorMessages contains user-facing messages for each error code.
var errorMessages = map[string]string{
	ErrCodeAIServiceUnavailable: "The suggestion service is temporarily unavailable. Please try again later.",
	ErrCodeAIRateLimited:        "Request limit reached. Wait a few minutes and try again.",
	ErrCodeAIAuthError:          "The suggestion service is misconfigured. Please contact support.",
	ErrCodeAITimeout:            "Brainstorming took longer than expected. Try again with fewer ideas.",
	ErrCodeAIParseError:         "Could not read the suggestion response. Please try again.",
	ErrCodeAIUnknownError:       "An unexpected error occurred while brainstorming. Please try again.",
}

// BrainstormError describes a failed brainstorming attempt in a form the
// entrypoint can surface directly.
type BrainstormError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

// classifyError converts a Go error to a BrainstormError with appropriate
// error code, message, and retryable flag.
func classifyError(err error) *BrainstormError {
	now := time.Now()
	errStr := strings.ToLower(err.Error())

	// Check for timeout/cancellation (context errors)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &BrainstormError{
			Code:      ErrCodeAITimeout,
			Message:   errorMessages[ErrCodeAITimeout],
			Retryable: true,
			Timestamp: now,
		}
	}

	// Check for rate limiting
	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted") {
		return &BrainstormError{
			Code:      ErrCodeAIRateLimited,
			Message:   errorMessages[ErrCodeAIRateLimited],
			Retryable: true,
			Timestamp: now,
		}
	}

	// Check for authentication errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "invalid api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "authentication") {
		return &BrainstormError{
			Code:      ErrCodeAIAuthError,
			Message:   errorMessages[ErrCodeAIAuthError],
			Retryable: false,
			Timestamp: now,
		}
	}

	// Check for network/connection errors
	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "dial") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "unavailable") || strings.Contains(errStr, "503") {
		return &BrainstormError{
			Code:      ErrCodeAIServiceUnavailable,
			Message:   errorMessages[ErrCodeAIServiceUnavailable],
			Retryable: true,
			Timestamp: now,
		}
	}

	// Check for parse errors
	if strings.Contains(errStr, "parse") || strings.Contains(errStr, "json") ||
		strings.Contains(errStr, "unmarshal") || strings.Contains(errStr, "decode") {
		return &BrainstormError{
			Code:      ErrCodeAIParseError,
			Message:   errorMessages[ErrCodeAIParseError],
			Retryable: true,
			Timestamp: now,
		}
	}

	// Default to unknown error
	return &BrainstormError{
		Code:      ErrCodeAIUnknownError,
		Message:   errorMessages[ErrCodeAIUnknownError],
		Retryable: true,
		Timestamp: now,
	}
}
