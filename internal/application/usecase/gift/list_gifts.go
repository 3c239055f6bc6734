// Package gift contains gift-idea-related use cases.
package gift

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// ListGiftsInput represents the input for listing a giftee's gift ideas.
type ListGiftsInput struct {
	GifteeID uuid.UUID
	UserID   uuid.UUID
}

// ListGiftsOutput represents the output of listing a giftee's gift ideas.
// Gifts are ordered by ascending rank, ties broken by insertion order.
type ListGiftsOutput struct {
	Gifts     []*entity.GiftIdea
	Progress  entity.GiftProgress
	TotalCost decimal.Decimal
}

// ListGiftsUseCase handles gift idea listing logic.
type ListGiftsUseCase struct {
	giftRepo   adapter.GiftRepository
	gifteeRepo adapter.GifteeRepository
}

// NewListGiftsUseCase creates a new ListGiftsUseCase instance.
func NewListGiftsUseCase(giftRepo adapter.GiftRepository, gifteeRepo adapter.GifteeRepository) *ListGiftsUseCase {
	return &ListGiftsUseCase{
		giftRepo:   giftRepo,
		gifteeRepo: gifteeRepo,
	}
}

// Execute lists the giftee's gift ideas with progress and committed spend.
func (uc *ListGiftsUseCase) Execute(ctx context.Context, input ListGiftsInput) (*ListGiftsOutput, error) {
	// Verify the giftee exists and belongs to the user
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
	if giftee.UserID != input.UserID {
		return nil, domainerror.NewGifteeError(
			domainerror.ErrCodeUnauthorizedGifteeAccess,
			"not authorized to access this giftee",
			domainerror.ErrUnauthorizedGifteeAccess,
		)
	}

	gifts, err := uc.giftRepo.FindByGifteeID(ctx, input.GifteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gift ideas: %w", err)
	}

	totalCost, err := uc.giftRepo.TotalCost(ctx, input.GifteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum gift costs: %w", err)
	}

	statuses := make([]entity.GiftStatus, len(gifts))
	for i, gift := range gifts {
		statuses[i] = gift.Status
	}

	return &ListGiftsOutput{
		Gifts:     gifts,
		Progress:  entity.CalculateProgress(statuses),
		TotalCost: totalCost,
	}, nil
}
