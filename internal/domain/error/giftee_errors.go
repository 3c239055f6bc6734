// Package error defines domain-specific errors for the Gift Tracker application.
package error

import "errors"

// Giftee domain errors.
var (
	// ErrGifteeNotFound is returned when a giftee is not found in the system.
	ErrGifteeNotFound = errors.New("giftee not found")

	// ErrGifteeNameRequired is returned when a giftee name is empty.
	ErrGifteeNameRequired = errors.New("giftee name is required")

	// ErrNegativeBudget is returned when a budget is negative.
	ErrNegativeBudget = errors.New("budget must not be negative")

	// ErrGifteeOwnerNotFound is returned when the owning user does not exist.
	ErrGifteeOwnerNotFound = errors.New("owning user not found")

	// ErrUnauthorizedGifteeAccess is returned when a user accesses a giftee they do not own.
	ErrUnauthorizedGifteeAccess = errors.New("unauthorized access to giftee")
)

// GifteeErrorCode defines error codes for giftee errors.
// Format: GTE-XXYYYY where XX is category and YYYY is specific error.
type GifteeErrorCode string

const (
	ErrCodeGifteeNotFound           GifteeErrorCode = "GTE-010001"
	ErrCodeGifteeNameRequired       GifteeErrorCode = "GTE-010002"
	ErrCodeNegativeBudget           GifteeErrorCode = "GTE-010003"
	ErrCodeGifteeOwnerNotFound      GifteeErrorCode = "GTE-010004"
	ErrCodeUnauthorizedGifteeAccess GifteeErrorCode = "GTE-010005"
)

// GifteeError represents a giftee error with code and message.
type GifteeError struct {
	Code    GifteeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GifteeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GifteeError) Unwrap() error {
	return e.Err
}

// NewGifteeError creates a new GifteeError with the given code and message.
func NewGifteeError(code GifteeErrorCode, message string, err error) *GifteeError {
	return &GifteeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
