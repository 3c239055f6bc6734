// Package email provides email queueing and delivery functionality.
package email

import (
	"context"
	"fmt"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - Gift Tracker"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueProgressDigestEmail queues a gift progress digest email.
func (s *Service) QueueProgressDigestEmail(ctx context.Context, input adapter.QueueProgressDigestInput) error {
	subject := fmt.Sprintf("Your gift progress for %d giftees - Gift Tracker", len(input.Giftees))

	giftees := make([]map[string]interface{}, 0, len(input.Giftees))
	for _, giftee := range input.Giftees {
		giftees = append(giftees, map[string]interface{}{
			"name":       giftee.Name,
			"total":      giftee.Total,
			"acquired":   giftee.Acquired,
			"wrapped":    giftee.Wrapped,
			"given":      giftee.Given,
			"percentage": giftee.Percentage,
		})
	}

	templateData := map[string]interface{}{
		"user_name": input.UserName,
		"giftees":   giftees,
	}

	job := entity.NewEmailJob(
		entity.TemplateProgressDigest,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue progress digest email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
