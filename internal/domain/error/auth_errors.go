// Package error defines domain-specific errors for the Gift Tracker application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering with an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidCredentials is returned when email/password verification fails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no token is provided.
	ErrMissingToken = errors.New("missing token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeUserNotFound       AuthErrorCode = "AUT-010001"
	ErrCodeEmailExists        AuthErrorCode = "AUT-010002"
	ErrCodeInvalidEmail       AuthErrorCode = "AUT-010003"
	ErrCodeWeakPassword       AuthErrorCode = "AUT-010004"
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-010005"
	ErrCodeInvalidToken       AuthErrorCode = "AUT-010006"
	ErrCodeMissingToken       AuthErrorCode = "AUT-010007"
	ErrCodeRateLimited        AuthErrorCode = "AUT-010008"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
