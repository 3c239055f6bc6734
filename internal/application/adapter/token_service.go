// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair holds an access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims holds the validated claims of a token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair and
	// persists the refresh token for later revocation.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token, checking it has not
	// been revoked, and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// RevokeRefreshToken invalidates a refresh token.
	RevokeRefreshToken(ctx context.Context, token string) error
}

// ResetTokenService defines the interface for password reset tokens.
type ResetTokenService interface {
	// GenerateResetToken creates a single-use password reset token for the user.
	GenerateResetToken(ctx context.Context, userID uuid.UUID) (string, time.Time, error)

	// ConsumeResetToken validates a reset token, marks it used, and returns
	// the user it belongs to.
	ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error)
}
