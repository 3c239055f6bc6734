// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	"github.com/gift-tracker/backend/internal/integration/persistence/model"
)

// emailQueueRepository implements the adapter.EmailQueueRepository interface.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

// Create enqueues an email job.
func (r *emailQueueRepository) Create(ctx context.Context, job *entity.EmailJob) error {
	jobModel := model.EmailJobFromEntity(job)
	return r.db.WithContext(ctx).Create(jobModel).Error
}

// GetPendingJobs returns up to limit pending jobs, oldest first.
func (r *emailQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var jobModels []model.EmailQueueModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.EmailJobStatusPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.EmailJob, len(jobModels))
	for i, jm := range jobModels {
		jobs[i] = jm.ToEntity()
	}
	return jobs, nil
}

// MarkSent marks a job as delivered.
func (r *emailQueueRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(entity.EmailJobStatusSent),
			"updated_at": time.Now().UTC(),
		}).Error
}

// MarkFailed records a failed attempt. Jobs stay pending until the attempt
// limit is reached, then move to failed.
func (r *emailQueueRepository) MarkFailed(ctx context.Context, id uuid.UUID, attemptErr string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var jobModel model.EmailQueueModel
		if err := tx.Where("id = ?", id).First(&jobModel).Error; err != nil {
			return err
		}

		jobModel.Attempts++
		status := string(entity.EmailJobStatusPending)
		if jobModel.Attempts >= entity.MaxEmailAttempts {
			status = string(entity.EmailJobStatusFailed)
		}

		return tx.Model(&jobModel).Updates(map[string]interface{}{
			"attempts":   jobModel.Attempts,
			"status":     status,
			"last_error": attemptErr,
			"updated_at": time.Now().UTC(),
		}).Error
	})
}
