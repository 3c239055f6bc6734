// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailTemplate identifies an email template to render.
type EmailTemplate string

const (
	TemplatePasswordReset  EmailTemplate = "password_reset"
	TemplateProgressDigest EmailTemplate = "progress_digest"
)

// EmailJobStatus represents the state of a queued email.
type EmailJobStatus string

const (
	EmailJobStatusPending EmailJobStatus = "pending"
	EmailJobStatusSent    EmailJobStatus = "sent"
	EmailJobStatusFailed  EmailJobStatus = "failed"
)

// MaxEmailAttempts is the number of delivery attempts before a job is
// marked failed.
const MaxEmailAttempts = 3

// EmailJob represents a queued outbound email.
type EmailJob struct {
	ID             uuid.UUID
	Template       EmailTemplate
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailJobStatus
	Attempts       int
	LastError      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewEmailJob creates a pending email job.
func NewEmailJob(template EmailTemplate, recipientEmail, recipientName, subject string, data map[string]interface{}) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		Template:       template,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailJobStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
