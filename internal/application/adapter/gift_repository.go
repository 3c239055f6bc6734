// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/domain/entity"
)

// GiftRepository defines the interface for gift idea persistence operations.
type GiftRepository interface {
	// Create creates a new gift idea in the database. It fails when the
	// owning giftee does not exist.
	Create(ctx context.Context, gift *entity.GiftIdea) error

	// FindByID retrieves a gift idea by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GiftIdea, error)

	// FindByGifteeID retrieves all gift ideas for a giftee ordered by
	// ascending rank, ties broken by insertion order.
	FindByGifteeID(ctx context.Context, gifteeID uuid.UUID) ([]*entity.GiftIdea, error)

	// Update updates an existing gift idea in the database.
	Update(ctx context.Context, gift *entity.GiftIdea) error

	// Delete removes a gift idea. It reports whether a gift was actually
	// removed. Deleting a gift never affects its giftee.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// TotalCost sums the prices of the giftee's gifts whose status counts
	// toward spend (acquired, wrapped, given). Absent prices contribute
	// zero; the sum is zero when no gifts qualify.
	TotalCost(ctx context.Context, gifteeID uuid.UUID) (decimal.Decimal, error)
}
