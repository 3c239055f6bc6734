// Package giftee contains giftee-related use cases.
package giftee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// UpdateGifteeInput represents the input for giftee update.
// Nil optional fields are left unchanged.
type UpdateGifteeInput struct {
	GifteeID     uuid.UUID
	UserID       uuid.UUID
	Name         *string          // Optional
	Relationship *string          // Optional
	Budget       *decimal.Decimal // Optional
	Notes        *string          // Optional
}

// UpdateGifteeOutput represents the output of giftee update.
type UpdateGifteeOutput struct {
	Giftee *entity.Giftee
}

// UpdateGifteeUseCase handles giftee update logic.
type UpdateGifteeUseCase struct {
	gifteeRepo adapter.GifteeRepository
}

// NewUpdateGifteeUseCase creates a new UpdateGifteeUseCase instance.
func NewUpdateGifteeUseCase(gifteeRepo adapter.GifteeRepository) *UpdateGifteeUseCase {
	return &UpdateGifteeUseCase{
		gifteeRepo: gifteeRepo,
	}
}

// Execute performs the giftee update.
func (uc *UpdateGifteeUseCase) Execute(ctx context.Context, input UpdateGifteeInput) (*UpdateGifteeOutput, error) {
	// Find the existing giftee
	giftee, err := uc.gifteeRepo.FindByID(ctx, input.GifteeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGifteeNotFound) {
			return nil, domainerror.NewGifteeError(
				domainerror.ErrCodeGifteeNotFound,
				"giftee not found",
				domainerror.ErrGifteeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find giftee: %w", err)
	}

	// Check if user is authorized to modify this giftee
	if giftee.UserID != input.UserID {
		return nil, domainerror.NewGifteeError(
			domainerror.ErrCodeUnauthorizedGifteeAccess,
			"not authorized to modify this giftee",
			domainerror.ErrUnauthorizedGifteeAccess,
		)
	}

	// Update name if provided
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerror.NewGifteeError(
				domainerror.ErrCodeGifteeNameRequired,
				"giftee name must not be empty",
				domainerror.ErrGifteeNameRequired,
			)
		}
		giftee.Name = *input.Name
	}

	// Update relationship if provided
	if input.Relationship != nil {
		giftee.Relationship = *input.Relationship
	}

	// Update budget if provided
	if input.Budget != nil {
		if input.Budget.IsNegative() {
			return nil, domainerror.NewGifteeError(
				domainerror.ErrCodeNegativeBudget,
				"budget must not be negative",
				domainerror.ErrNegativeBudget,
			)
		}
		budget := *input.Budget
		giftee.Budget = &budget
	}

	// Update notes if provided
	if input.Notes != nil {
		giftee.Notes = *input.Notes
	}

	// Update timestamp
	giftee.UpdatedAt = time.Now().UTC()

	// Save updated giftee
	if err := uc.gifteeRepo.Update(ctx, giftee); err != nil {
		return nil, fmt.Errorf("failed to update giftee: %w", err)
	}

	return &UpdateGifteeOutput{
		Giftee: giftee,
	}, nil
}
