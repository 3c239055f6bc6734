// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for the outbound email queue.
type EmailQueueRepository interface {
	// Create enqueues an email job.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs returns up to limit pending jobs, oldest first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// MarkSent marks a job as delivered.
	MarkSent(ctx context.Context, id uuid.UUID) error

	// MarkFailed records a failed attempt; the job goes back to pending
	// until the attempt limit is reached.
	MarkFailed(ctx context.Context, id uuid.UUID, attemptErr string) error
}

// EmailSender delivers a rendered email through an external provider.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}

// QueuePasswordResetInput holds the data for a password reset email.
type QueuePasswordResetInput struct {
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// QueueProgressDigestInput holds the data for a gift progress digest email.
type QueueProgressDigestInput struct {
	UserEmail string
	UserName  string
	Giftees   []ProgressDigestGiftee
}

// ProgressDigestGiftee is one giftee's line in a progress digest email.
type ProgressDigestGiftee struct {
	Name       string
	Total      int
	Acquired   int
	Wrapped    int
	Given      int
	Percentage float64
}

// EmailService queues domain emails for the worker to deliver.
type EmailService interface {
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error
	QueueProgressDigestEmail(ctx context.Context, input QueueProgressDigestInput) error
}
