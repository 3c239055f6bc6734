// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/gift-tracker/backend/internal/application/adapter"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for completing a password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordUseCase handles password reset completion.
type ResetPasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	resetTokens     adapter.ResetTokenService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	resetTokens adapter.ResetTokenService,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		resetTokens:     resetTokens,
	}
}

// Execute consumes the reset token and stores a new password hash.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) error {
	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	userID, err := uc.resetTokens.ConsumeResetToken(ctx, input.Token)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired reset token",
			domainerror.ErrInvalidToken,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
