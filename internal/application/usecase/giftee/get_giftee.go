// Package giftee contains giftee-related use cases.
package giftee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// GetGifteeInput represents the input for fetching a single giftee.
type GetGifteeInput struct {
	GifteeID uuid.UUID
	UserID   uuid.UUID
}

// GetGifteeOutput represents the output of fetching a single giftee,
// including their gift ideas, progress, and committed spend.
type GetGifteeOutput struct {
	Giftee *entity.GifteeWithGifts
}

// GetGifteeUseCase handles giftee retrieval logic.
type GetGifteeUseCase struct {
	gifteeRepo adapter.GifteeRepository
	giftRepo   adapter.GiftRepository
}

// NewGetGifteeUseCase creates a new GetGifteeUseCase instance.
func NewGetGifteeUseCase(gifteeRepo adapter.GifteeRepository, giftRepo adapter.GiftRepository) *GetGifteeUseCase {
	return &GetGifteeUseCase{
		gifteeRepo: gifteeRepo,
		giftRepo:   giftRepo,
	}
}

// Execute fetches the giftee with their rank-ordered gifts.
func (uc *GetGifteeUseCase) Execute(ctx context.Context, input GetGifteeInput) (*GetGifteeOutput, error) {
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

	gifts, err := uc.giftRepo.FindByGifteeID(ctx, giftee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gifts: %w", err)
	}

	totalCost, err := uc.giftRepo.TotalCost(ctx, giftee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum gift costs: %w", err)
	}

	statuses := make([]entity.GiftStatus, len(gifts))
	for i, gift := range gifts {
		statuses[i] = gift.Status
	}

	return &GetGifteeOutput{
		Giftee: &entity.GifteeWithGifts{
			Giftee:    giftee,
			Gifts:     gifts,
			Progress:  entity.CalculateProgress(statuses),
			TotalCost: totalCost,
		},
	}, nil
}
