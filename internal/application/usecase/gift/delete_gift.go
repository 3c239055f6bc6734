// Package gift contains gift-idea-related use cases.
package gift

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/application/adapter"
)

// DeleteGiftInput represents the input for gift idea deletion.
type DeleteGiftInput struct {
	GiftID uuid.UUID
	UserID uuid.UUID
}

// DeleteGiftOutput represents the output of gift idea deletion.
type DeleteGiftOutput struct {
	Deleted bool
}

// DeleteGiftUseCase handles gift idea deletion logic. Deleting a gift never
// affects its giftee.
type DeleteGiftUseCase struct {
	giftRepo   adapter.GiftRepository
	gifteeRepo adapter.GifteeRepository
}

// NewDeleteGiftUseCase creates a new DeleteGiftUseCase instance.
func NewDeleteGiftUseCase(giftRepo adapter.GiftRepository, gifteeRepo adapter.GifteeRepository) *DeleteGiftUseCase {
	return &DeleteGiftUseCase{
		giftRepo:   giftRepo,
		gifteeRepo: gifteeRepo,
	}
}

// Execute performs the gift idea deletion.
func (uc *DeleteGiftUseCase) Execute(ctx context.Context, input DeleteGiftInput) (*DeleteGiftOutput, error) {
	gift, err := findOwnedGift(ctx, uc.giftRepo, uc.gifteeRepo, input.GiftID, input.UserID)
	if err != nil {
		return nil, err
	}

	deleted, err := uc.giftRepo.Delete(ctx, gift.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete gift idea: %w", err)
	}

	return &DeleteGiftOutput{
		Deleted: deleted,
	}, nil
}
