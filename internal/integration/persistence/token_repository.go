// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerror "github.com/gift-tracker/backend/internal/domain/error"
	"github.com/gift-tracker/backend/internal/integration/persistence/model"
)

// TokenRepository persists refresh and password reset tokens.
type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
	RevokeRefreshToken(ctx context.Context, token string) error

	SaveResetToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error
	ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error)
}

// tokenRepository implements TokenRepository using GORM.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// SaveRefreshToken stores a refresh token for later validation.
func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	tokenModel := model.RefreshTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&tokenModel).Error
}

// IsRefreshTokenValid reports whether the token is stored, unexpired, and
// not revoked.
func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ? AND revoked_at IS NULL AND expires_at > ?", token, time.Now().UTC()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// RevokeRefreshToken marks a refresh token as revoked. Revoking an unknown
// token is not an error.
func (r *tokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ? AND revoked_at IS NULL", token).
		Update("revoked_at", now).Error
}

// SaveResetToken stores a single-use password reset token.
func (r *tokenRepository) SaveResetToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	tokenModel := model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&tokenModel).Error
}

// ConsumeResetToken validates a reset token, marks it used, and returns its
// user. Expired, used, or unknown tokens are invalid.
func (r *tokenRepository) ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	var tokenModel model.PasswordResetTokenModel
	result := r.db.WithContext(ctx).
		Where("token = ? AND used_at IS NULL AND expires_at > ?", token, time.Now().UTC()).
		First(&tokenModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return uuid.Nil, domainerror.ErrInvalidToken
		}
		return uuid.Nil, result.Error
	}

	now := time.Now().UTC()
	if err := r.db.WithContext(ctx).
		Model(&tokenModel).
		Update("used_at", now).Error; err != nil {
		return uuid.Nil, err
	}
	return tokenModel.UserID, nil
}
