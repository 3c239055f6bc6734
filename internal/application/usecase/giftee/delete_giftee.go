// Package giftee contains giftee-related use cases.
package giftee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/application/adapter"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// DeleteGifteeInput represents the input for giftee deletion.
type DeleteGifteeInput struct {
	GifteeID uuid.UUID
	UserID   uuid.UUID
}

// DeleteGifteeOutput represents the output of giftee deletion.
type DeleteGifteeOutput struct {
	Deleted bool
}

// DeleteGifteeUseCase handles giftee deletion logic. Deleting a giftee
// cascades to their gift ideas through the database schema.
type DeleteGifteeUseCase struct {
	gifteeRepo adapter.GifteeRepository
}

// NewDeleteGifteeUseCase creates a new DeleteGifteeUseCase instance.
func NewDeleteGifteeUseCase(gifteeRepo adapter.GifteeRepository) *DeleteGifteeUseCase {
	return &DeleteGifteeUseCase{
		gifteeRepo: gifteeRepo,
	}
}

// Execute performs the giftee deletion.
func (uc *DeleteGifteeUseCase) Execute(ctx context.Context, input DeleteGifteeInput) (*DeleteGifteeOutput, error) {
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

	// Check if user is authorized to delete this giftee
	if giftee.UserID != input.UserID {
		return nil, domainerror.NewGifteeError(
			domainerror.ErrCodeUnauthorizedGifteeAccess,
			"not authorized to delete this giftee",
			domainerror.ErrUnauthorizedGifteeAccess,
		)
	}

	// Delete the giftee
	deleted, err := uc.gifteeRepo.Delete(ctx, input.GifteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete giftee: %w", err)
	}

	return &DeleteGifteeOutput{
		Deleted: deleted,
	}, nil
}
