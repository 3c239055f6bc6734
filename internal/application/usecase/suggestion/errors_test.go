// Package suggestion contains AI gift brainstorming use cases.
package suggestion

import (
	"context"
	"errors"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectRetry  bool
	}{
		// Timeout/cancellation errors
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
		{
			name:         "context canceled",
			err:          context.Canceled,
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
		// Rate limiting errors
		{
			name:         "rate limit error",
			err:          errors.New("rate limit exceeded"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "quota error",
			err:          errors.New("quota exceeded"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "429 status code error",
			err:          errors.New("HTTP 429: too many requests"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "resource exhausted error",
			err:          errors.New("resource exhausted"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		// Authentication errors
		{
			name:         "401 unauthorized",
			err:          errors.New("401 unauthorized"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "403 forbidden",
			err:          errors.New("403 forbidden"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "invalid api key",
			err:          errors.New("invalid api key"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		// Network/availability errors
		{
			name:         "connection refused",
			err:          errors.New("dial tcp: connection refused"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "503 service unavailable",
			err:          errors.New("HTTP 503: service unavailable"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		// Parse errors
		{
			name:         "json unmarshal failure",
			err:          errors.New("failed to unmarshal json response"),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		{
			name:         "parse failure",
			err:          errors.New("failed to parse response"),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		// Unknown fallback
		{
			name:         "unrecognized error",
			err:          errors.New("something odd happened"),
			expectedCode: ErrCodeAIUnknownError,
			expectRetry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyError(tt.err)

			if result.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, result.Code)
			}
			if result.Retryable != tt.expectRetry {
				t.Errorf("expected retryable %v, got %v", tt.expectRetry, result.Retryable)
			}
			if result.Message != errorMessages[tt.expectedCode] {
				t.Errorf("expected message %q, got %q", errorMessages[tt.expectedCode], result.Message)
			}
			if result.Timestamp.IsZero() {
				t.Error("expected timestamp to be set")
			}
		})
	}
}
