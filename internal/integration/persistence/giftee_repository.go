// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
	"github.com/gift-tracker/backend/internal/integration/persistence/model"
)

// gifteeRepository implements the adapter.GifteeRepository interface.
type gifteeRepository struct {
	db *gorm.DB
}

// NewGifteeRepository creates a new giftee repository instance.
func NewGifteeRepository(db *gorm.DB) adapter.GifteeRepository {
	return &gifteeRepository{
		db: db,
	}
}

// Create creates a new giftee in the database.
func (r *gifteeRepository) Create(ctx context.Context, giftee *entity.Giftee) error {
	gifteeModel := model.GifteeFromEntity(giftee)
	result := r.db.WithContext(ctx).Create(gifteeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return domainerror.ErrGifteeOwnerNotFound
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a giftee by its ID.
func (r *gifteeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Giftee, error) {
	var gifteeModel model.GifteeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&gifteeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGifteeNotFound
		}
		return nil, result.Error
	}
	return gifteeModel.ToEntity(), nil
}

// FindByUserID retrieves all giftees for a given user in insertion order.
func (r *gifteeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Giftee, error) {
	var gifteeModels []model.GifteeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&gifteeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	giftees := make([]*entity.Giftee, len(gifteeModels))
	for i, gm := range gifteeModels {
		giftees[i] = gm.ToEntity()
	}
	return giftees, nil
}

// Update updates an existing giftee in the database. Save writes all
// columns, so nullable fields already absent on the entity stay absent.
func (r *gifteeRepository) Update(ctx context.Context, giftee *entity.Giftee) error {
	gifteeModel := model.GifteeFromEntity(giftee)
	result := r.db.WithContext(ctx).Save(gifteeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a giftee from the database. Its gift ideas are removed by
// the ON DELETE CASCADE constraint.
func (r *gifteeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.GifteeModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// TotalBudget sums the budgets of all giftees owned by the user. NULL
// budgets contribute nothing and an empty set sums to zero.
func (r *gifteeRepository) TotalBudget(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.GifteeModel{}).
		Select("COALESCE(SUM(budget), 0)").
		Where("user_id = ?", userID).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return total, nil
}
