// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gift-tracker/backend/internal/application/adapter"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// ForgotPasswordInput represents the input for requesting a password reset.
type ForgotPasswordInput struct {
	Email      string
	AppBaseURL string
}

// ForgotPasswordUseCase queues a password reset email for a user.
type ForgotPasswordUseCase struct {
	userRepo     adapter.UserRepository
	resetTokens  adapter.ResetTokenService
	emailService adapter.EmailService
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokens adapter.ResetTokenService,
	emailService adapter.EmailService,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:     userRepo,
		resetTokens:  resetTokens,
		emailService: emailService,
	}
}

// Execute queues the reset email. Unknown emails succeed silently to
// prevent account enumeration.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) error {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			slog.Info("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token, expiresAt, err := uc.resetTokens.GenerateResetToken(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", input.AppBaseURL, token)
	return uc.emailService.QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{
		UserEmail: user.Email,
		UserName:  user.Name,
		ResetURL:  resetURL,
		ExpiresIn: fmt.Sprintf("%.0f minutes", time.Until(expiresAt).Minutes()),
	})
}
