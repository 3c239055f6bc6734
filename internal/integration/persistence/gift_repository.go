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

// giftRepository implements the adapter.GiftRepository interface.
type giftRepository struct {
	db *gorm.DB
}

// NewGiftRepository creates a new gift idea repository instance.
func NewGiftRepository(db *gorm.DB) adapter.GiftRepository {
	return &giftRepository{
		db: db,
	}
}

// Create creates a new gift idea in the database.
func (r *giftRepository) Create(ctx context.Context, gift *entity.GiftIdea) error {
	giftModel := model.GiftIdeaFromEntity(gift)
	result := r.db.WithContext(ctx).Create(giftModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return domainerror.ErrGifteeNotFound
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a gift idea by its ID.
func (r *giftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GiftIdea, error) {
	var giftModel model.GiftIdeaModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&giftModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGiftNotFound
		}
		return nil, result.Error
	}
	return giftModel.ToEntity(), nil
}

// FindByGifteeID retrieves all gift ideas for a giftee ordered by ascending
// rank, ties broken by insertion order.
func (r *giftRepository) FindByGifteeID(ctx context.Context, gifteeID uuid.UUID) ([]*entity.GiftIdea, error) {
	var giftModels []model.GiftIdeaModel
	result := r.db.WithContext(ctx).
		Where("giftee_id = ?", gifteeID).
		Order("rank ASC, created_at ASC").
		Find(&giftModels)
	if result.Error != nil {
		return nil, result.Error
	}

	gifts := make([]*entity.GiftIdea, len(giftModels))
	for i, gm := range giftModels {
		gifts[i] = gm.ToEntity()
	}
	return gifts, nil
}

// Update updates an existing gift idea in the database.
func (r *giftRepository) Update(ctx context.Context, gift *entity.GiftIdea) error {
	giftModel := model.GiftIdeaFromEntity(gift)
	result := r.db.WithContext(ctx).Save(giftModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a gift idea from the database. The owning giftee is never
// affected.
func (r *giftRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.GiftIdeaModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// TotalCost sums the prices of the giftee's gifts with status acquired,
// wrapped, or given. Considering gifts are not committed spend. NULL prices
// contribute nothing and an empty set sums to zero.
func (r *giftRepository) TotalCost(ctx context.Context, gifteeID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.GiftIdeaModel{}).
		Select("COALESCE(SUM(price), 0)").
		Where("giftee_id = ?", gifteeID).
		Where("status IN ?", []string{
			string(entity.GiftStatusAcquired),
			string(entity.GiftStatusWrapped),
			string(entity.GiftStatusGiven),
		}).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	return total, nil
}
