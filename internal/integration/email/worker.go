// Package email provides email queueing and delivery functionality.
package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
	"github.com/gift-tracker/backend/internal/integration/email/templates"
)

// Worker processes the email queue and sends emails.
type Worker struct {
	queue        adapter.EmailQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending emails.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob renders and sends a single email job.
func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.Template,
		"recipient", job.RecipientEmail,
	)

	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		w.handleFailure(ctx, job, err)
		return
	}

	if err := w.sender.Send(ctx, job.RecipientEmail, job.Subject, html, text); err != nil {
		logger.Error("Failed to send email", "error", err)
		w.handleFailure(ctx, job, err)
		return
	}

	if err := w.queue.MarkSent(ctx, job.ID); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Email sent successfully")
}

// renderTemplate renders the appropriate template for the job.
func (w *Worker) renderTemplate(job *entity.EmailJob) (html string, text string, err error) {
	templateName := string(job.Template)

	var data interface{}
	switch job.Template {
	case entity.TemplatePasswordReset:
		data = templates.PasswordResetData{
			UserName:  getString(job.TemplateData, "user_name"),
			ResetURL:  getString(job.TemplateData, "reset_url"),
			ExpiresIn: getString(job.TemplateData, "expires_in"),
		}
	case entity.TemplateProgressDigest:
		data = templates.ProgressDigestData{
			UserName: getString(job.TemplateData, "user_name"),
			Giftees:  getGifteeLines(job.TemplateData),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeEmailSendFailed,
			"unknown template type",
			domainerror.ErrEmailSendFailed,
		)
	}

	return w.renderer.Render(templateName, data)
}

// handleFailure records a failed attempt. The repository moves the job back
// to pending until the attempt limit is reached.
func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error) {
	if updateErr := w.queue.MarkFailed(ctx, job.ID, err.Error()); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getGifteeLines extracts the per-giftee digest lines. Values round-trip
// through JSON so numbers arrive as float64.
func getGifteeLines(data map[string]interface{}) []templates.ProgressDigestGiftee {
	raw, ok := data["giftees"].([]interface{})
	if !ok {
		return nil
	}

	lines := make([]templates.ProgressDigestGiftee, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		lines = append(lines, templates.ProgressDigestGiftee{
			Name:       getString(entry, "name"),
			Total:      getInt(entry, "total"),
			Acquired:   getInt(entry, "acquired"),
			Wrapped:    getInt(entry, "wrapped"),
			Given:      getInt(entry, "given"),
			Percentage: getFloat(entry, "percentage"),
		})
	}
	return lines
}

func getInt(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func getFloat(data map[string]interface{}, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// ProcessNow processes all pending emails immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
