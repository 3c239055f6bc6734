// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/domain/entity"
)

// GifteeRepository defines the interface for giftee persistence operations.
type GifteeRepository interface {
	// Create creates a new giftee in the database. It fails when the owning
	// user does not exist.
	Create(ctx context.Context, giftee *entity.Giftee) error

	// FindByID retrieves a giftee by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Giftee, error)

	// FindByUserID retrieves all giftees for a given user in insertion order.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Giftee, error)

	// Update updates an existing giftee in the database.
	Update(ctx context.Context, giftee *entity.Giftee) error

	// Delete removes a giftee and, by cascade, its gift ideas. It reports
	// whether a giftee was actually removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// TotalBudget sums the budgets of all giftees owned by the user. Absent
	// budgets contribute zero; the sum is zero for a user with no giftees.
	TotalBudget(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
