// Package error defines domain-specific errors for the Gift Tracker application.
package error

import "errors"

// Gift idea domain errors.
var (
	// ErrGiftNotFound is returned when a gift idea is not found in the system.
	ErrGiftNotFound = errors.New("gift idea not found")

	// ErrGiftTitleRequired is returned when a gift title is empty.
	ErrGiftTitleRequired = errors.New("gift title is required")

	// ErrNegativePrice is returned when a price is negative.
	ErrNegativePrice = errors.New("price must not be negative")

	// ErrInvalidGiftStatus is returned when a status is not one of the four workflow stages.
	ErrInvalidGiftStatus = errors.New("invalid gift status")

	// ErrInvalidGiftRank is returned when a rank is below one.
	ErrInvalidGiftRank = errors.New("rank must be at least 1")

	// ErrUnauthorizedGiftAccess is returned when a user accesses a gift they do not own.
	ErrUnauthorizedGiftAccess = errors.New("unauthorized access to gift idea")
)

// GiftErrorCode defines error codes for gift idea errors.
// Format: GFT-XXYYYY where XX is category and YYYY is specific error.
type GiftErrorCode string

const (
	ErrCodeGiftNotFound           GiftErrorCode = "GFT-010001"
	ErrCodeGiftTitleRequired      GiftErrorCode = "GFT-010002"
	ErrCodeNegativePrice          GiftErrorCode = "GFT-010003"
	ErrCodeInvalidGiftStatus      GiftErrorCode = "GFT-010004"
	ErrCodeInvalidGiftRank        GiftErrorCode = "GFT-010005"
	ErrCodeUnauthorizedGiftAccess GiftErrorCode = "GFT-010006"
)

// GiftError represents a gift idea error with code and message.
type GiftError struct {
	Code    GiftErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GiftError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GiftError) Unwrap() error {
	return e.Err
}

// NewGiftError creates a new GiftError with the given code and message.
func NewGiftError(code GiftErrorCode, message string, err error) *GiftError {
	return &GiftError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
