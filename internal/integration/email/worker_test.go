// Package email provides email queueing and delivery functionality.
package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/domain/entity"
	"github.com/gift-tracker/backend/internal/integration/email/templates"
)

// memEmailQueue is an in-memory queue used to drive the worker in tests.
type memEmailQueue struct {
	jobs []*entity.EmailJob
}

func newMemEmailQueue() *memEmailQueue {
	return &memEmailQueue{jobs: make([]*entity.EmailJob, 0)}
}

func (q *memEmailQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *memEmailQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	pending := make([]*entity.EmailJob, 0)
	for _, job := range q.jobs {
		if job.Status != entity.EmailJobStatusPending {
			continue
		}
		pending = append(pending, job)
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *memEmailQueue) MarkSent(_ context.Context, id uuid.UUID) error {
	for _, job := range q.jobs {
		if job.ID == id {
			job.Status = entity.EmailJobStatusSent
			return nil
		}
	}
	return errors.New("job not found")
}

func (q *memEmailQueue) MarkFailed(_ context.Context, id uuid.UUID, attemptErr string) error {
	for _, job := range q.jobs {
		if job.ID == id {
			job.Attempts++
			job.LastError = attemptErr
			if job.Attempts >= entity.MaxEmailAttempts {
				job.Status = entity.EmailJobStatusFailed
			}
			return nil
		}
	}
	return errors.New("job not found")
}

func newTestWorker(t *testing.T, queue *memEmailQueue, sender *MockEmailSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("sends rendered password reset email", func(t *testing.T) {
		queue := newMemEmailQueue()
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(entity.TemplatePasswordReset, "jamie@example.com", "Jamie", "Reset your password", map[string]interface{}{
			"user_name":  "Jamie",
			"reset_url":  "https://app.example.com/reset-password?token=abc123",
			"expires_in": "1 hour",
		})
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.Sent) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sender.Sent))
		}
		sent := sender.Sent[0]
		if sent.To != "jamie@example.com" {
			t.Errorf("expected recipient jamie@example.com, got %s", sent.To)
		}
		if sent.Subject != "Reset your password" {
			t.Errorf("expected subject to pass through, got %s", sent.Subject)
		}
		if !strings.Contains(sent.HTMLBody, "https://app.example.com/reset-password?token=abc123") {
			t.Error("expected HTML body to contain the reset URL")
		}
		if !strings.Contains(sent.TextBody, "1 hour") {
			t.Error("expected text body to contain the expiry window")
		}
		if job.Status != entity.EmailJobStatusSent {
			t.Errorf("expected job status sent, got %s", job.Status)
		}

		pending, err := queue.GetPendingJobs(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pending) != 0 {
			t.Errorf("expected empty pending queue, got %d jobs", len(pending))
		}
	})

	t.Run("sends progress digest with giftee rows", func(t *testing.T) {
		queue := newMemEmailQueue()
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		// Numbers as float64, matching a JSON round trip through the queue.
		job := entity.NewEmailJob(entity.TemplateProgressDigest, "jamie@example.com", "Jamie", "Your gift progress", map[string]interface{}{
			"user_name": "Jamie",
			"giftees": []interface{}{
				map[string]interface{}{
					"name":       "Mom",
					"total":      float64(4),
					"acquired":   float64(3),
					"wrapped":    float64(2),
					"given":      float64(1),
					"percentage": float64(75),
				},
			},
		})
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.Sent) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sender.Sent))
		}
		if !strings.Contains(sender.Sent[0].HTMLBody, "Mom") {
			t.Error("expected HTML body to contain the giftee name")
		}
		if !strings.Contains(sender.Sent[0].HTMLBody, "75%") {
			t.Error("expected HTML body to contain the progress percentage")
		}
	})

	t.Run("failed send goes back to pending with recorded error", func(t *testing.T) {
		queue := newMemEmailQueue()
		sender := NewMockEmailSender()
		sender.ShouldFail = true
		sender.FailError = errors.New("provider timeout")
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(entity.TemplatePasswordReset, "jamie@example.com", "Jamie", "Reset your password", map[string]interface{}{
			"user_name": "Jamie",
		})
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.Sent) != 0 {
			t.Fatalf("expected no sent emails, got %d", len(sender.Sent))
		}
		if job.Status != entity.EmailJobStatusPending {
			t.Errorf("expected job to stay pending, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 recorded attempt, got %d", job.Attempts)
		}
		if !strings.Contains(job.LastError, "provider timeout") {
			t.Errorf("expected last error to record the send failure, got %q", job.LastError)
		}
	})

	t.Run("job fails permanently after max attempts", func(t *testing.T) {
		queue := newMemEmailQueue()
		sender := NewMockEmailSender()
		sender.ShouldFail = true
		sender.FailError = errors.New("provider timeout")
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(entity.TemplatePasswordReset, "jamie@example.com", "Jamie", "Reset your password", map[string]interface{}{
			"user_name": "Jamie",
		})
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i := 0; i < entity.MaxEmailAttempts; i++ {
			worker.ProcessNow(ctx)
		}

		if job.Status != entity.EmailJobStatusFailed {
			t.Errorf("expected job status failed, got %s", job.Status)
		}
		if job.Attempts != entity.MaxEmailAttempts {
			t.Errorf("expected %d attempts, got %d", entity.MaxEmailAttempts, job.Attempts)
		}
	})

	t.Run("unknown template is marked as a failed attempt", func(t *testing.T) {
		queue := newMemEmailQueue()
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(entity.EmailTemplate("welcome"), "jamie@example.com", "Jamie", "Welcome", nil)
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.Sent) != 0 {
			t.Fatalf("expected no sent emails, got %d", len(sender.Sent))
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 recorded attempt, got %d", job.Attempts)
		}
	})
}
