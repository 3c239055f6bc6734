// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/gift-tracker/backend/internal/domain/entity"
)

func newTestJob(subject string) *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplatePasswordReset,
		"to@example.com",
		"Recipient",
		subject,
		map[string]interface{}{"user_name": "Recipient"},
	)
}

func TestEmailQueueRepository_PendingLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailQueueRepository(db)

	t.Run("pending jobs come back oldest first", func(t *testing.T) {
		base := time.Now().UTC()
		for i, subject := range []string{"first", "second", "third"} {
			job := newTestJob(subject)
			job.CreatedAt = base.Add(time.Duration(i) * time.Second)
			job.UpdatedAt = job.CreatedAt
			if err := repo.Create(context.Background(), job); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		jobs, err := repo.GetPendingJobs(context.Background(), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 2 {
			t.Fatalf("expected 2 jobs, got %d", len(jobs))
		}
		if jobs[0].Subject != "first" || jobs[1].Subject != "second" {
			t.Errorf("unexpected order: %s, %s", jobs[0].Subject, jobs[1].Subject)
		}
		if jobs[0].TemplateData["user_name"] != "Recipient" {
			t.Errorf("expected template data to round trip, got %+v", jobs[0].TemplateData)
		}
	})

	t.Run("sent jobs leave the queue", func(t *testing.T) {
		jobs, err := repo.GetPendingJobs(context.Background(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := len(jobs)

		if err := repo.MarkSent(context.Background(), jobs[0].ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		jobs, err = repo.GetPendingJobs(context.Background(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != before-1 {
			t.Errorf("expected %d pending jobs, got %d", before-1, len(jobs))
		}
	})
}

func TestEmailQueueRepository_MarkFailed(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailQueueRepository(db)

	job := newTestJob("flaky")
	if err := repo.Create(context.Background(), job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Attempts below the limit send the job back to pending.
	for attempt := 1; attempt < entity.MaxEmailAttempts; attempt++ {
		if err := repo.MarkFailed(context.Background(), job.ID, "smtp timeout"); err != nil {
			t.Fatalf("attempt %d: unexpected error: %v", attempt, err)
		}

		jobs, err := repo.GetPendingJobs(context.Background(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 1 {
			t.Fatalf("attempt %d: expected job to stay pending, got %d jobs", attempt, len(jobs))
		}
		if jobs[0].Attempts != attempt {
			t.Errorf("attempt %d: expected %d recorded attempts, got %d", attempt, attempt, jobs[0].Attempts)
		}
		if jobs[0].LastError != "smtp timeout" {
			t.Errorf("expected last error to be recorded, got %q", jobs[0].LastError)
		}
	}

	// The final attempt moves the job to failed.
	if err := repo.MarkFailed(context.Background(), job.ID, "smtp timeout"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	jobs, err := repo.GetPendingJobs(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("expected job to leave the pending queue after %d attempts", entity.MaxEmailAttempts)
	}
}
