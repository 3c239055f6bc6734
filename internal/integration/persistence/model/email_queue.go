// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/domain/entity"
)

// EmailQueueModel represents the email_queue table in the database.
type EmailQueueModel struct {
	ID             uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Template       string                 `gorm:"type:varchar(50);not null"`
	RecipientEmail string                 `gorm:"type:varchar(255);not null"`
	RecipientName  string                 `gorm:"type:varchar(255)"`
	Subject        string                 `gorm:"type:varchar(255);not null"`
	TemplateData   map[string]interface{} `gorm:"serializer:json"`
	Status         string                 `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts       int                    `gorm:"not null;default:0"`
	LastError      *string                `gorm:"type:text"`
	CreatedAt      time.Time              `gorm:"not null"`
	UpdatedAt      time.Time              `gorm:"not null"`
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts an EmailQueueModel to a domain EmailJob entity.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	job := &entity.EmailJob{
		ID:             m.ID,
		Template:       entity.EmailTemplate(m.Template),
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		TemplateData:   m.TemplateData,
		Status:         entity.EmailJobStatus(m.Status),
		Attempts:       m.Attempts,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.LastError != nil {
		job.LastError = *m.LastError
	}
	return job
}

// EmailJobFromEntity creates an EmailQueueModel from a domain EmailJob entity.
func EmailJobFromEntity(job *entity.EmailJob) *EmailQueueModel {
	m := &EmailQueueModel{
		ID:             job.ID,
		Template:       string(job.Template),
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		TemplateData:   job.TemplateData,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
	if job.LastError != "" {
		m.LastError = &job.LastError
	}
	return m
}
