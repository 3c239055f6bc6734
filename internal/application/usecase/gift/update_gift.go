// Package gift contains gift-idea-related use cases.
package gift

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

// UpdateGiftInput represents the input for gift idea update.
// Nil optional fields are left unchanged.
type UpdateGiftInput struct {
	GiftID      uuid.UUID
	UserID      uuid.UUID
	Title       *string            // Optional
	Description *string            // Optional
	URL         *string            // Optional
	Price       *decimal.Decimal   // Optional
	Rank        *int               // Optional
	Status      *entity.GiftStatus // Optional
}

// UpdateGiftOutput represents the output of gift idea update.
type UpdateGiftOutput struct {
	Gift *entity.GiftIdea
}

// UpdateGiftUseCase handles gift idea update logic.
type UpdateGiftUseCase struct {
	giftRepo   adapter.GiftRepository
	gifteeRepo adapter.GifteeRepository
}

// NewUpdateGiftUseCase creates a new UpdateGiftUseCase instance.
func NewUpdateGiftUseCase(giftRepo adapter.GiftRepository, gifteeRepo adapter.GifteeRepository) *UpdateGiftUseCase {
	return &UpdateGiftUseCase{
		giftRepo:   giftRepo,
		gifteeRepo: gifteeRepo,
	}
}

// Execute performs the gift idea update.
func (uc *UpdateGiftUseCase) Execute(ctx context.Context, input UpdateGiftInput) (*UpdateGiftOutput, error) {
	gift, err := findOwnedGift(ctx, uc.giftRepo, uc.gifteeRepo, input.GiftID, input.UserID)
	if err != nil {
		return nil, err
	}

	// Update title if provided
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, domainerror.NewGiftError(
				domainerror.ErrCodeGiftTitleRequired,
				"gift title must not be empty",
				domainerror.ErrGiftTitleRequired,
			)
		}
		gift.Title = *input.Title
	}

	// Update description if provided
	if input.Description != nil {
		gift.Description = *input.Description
	}

	// Update URL if provided
	if input.URL != nil {
		gift.URL = *input.URL
	}

	// Update price if provided
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domainerror.NewGiftError(
				domainerror.ErrCodeNegativePrice,
				"price must not be negative",
				domainerror.ErrNegativePrice,
			)
		}
		price := *input.Price
		gift.Price = &price
	}

	// Update rank if provided
	if input.Rank != nil {
		if *input.Rank < 1 {
			return nil, domainerror.NewGiftError(
				domainerror.ErrCodeInvalidGiftRank,
				"rank must be at least 1",
				domainerror.ErrInvalidGiftRank,
			)
		}
		gift.Rank = *input.Rank
	}

	// Update status if provided
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerror.NewGiftError(
				domainerror.ErrCodeInvalidGiftStatus,
				"status must be 'considering', 'acquired', 'wrapped', or 'given'",
				domainerror.ErrInvalidGiftStatus,
			)
		}
		gift.Status = *input.Status
	}

	// Update timestamp
	gift.UpdatedAt = time.Now().UTC()

	// Save updated gift
	if err := uc.giftRepo.Update(ctx, gift); err != nil {
		return nil, fmt.Errorf("failed to update gift idea: %w", err)
	}

	return &UpdateGiftOutput{
		Gift: gift,
	}, nil
}

// findOwnedGift loads a gift idea and verifies that its giftee belongs to the
// user. Gifts are owned through their giftee, so the check takes two hops.
func findOwnedGift(ctx context.Context, giftRepo adapter.GiftRepository, gifteeRepo adapter.GifteeRepository, giftID, userID uuid.UUID) (*entity.GiftIdea, error) {
	gift, err := giftRepo.FindByID(ctx, giftID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGiftNotFound) {
			return nil, domainerror.NewGiftError(
				domainerror.ErrCodeGiftNotFound,
				"gift idea not found",
				domainerror.ErrGiftNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find gift idea: %w", err)
	}

	giftee, err := gifteeRepo.FindByID(ctx, gift.GifteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find owning giftee: %w", err)
	}
	if giftee.UserID != userID {
		return nil, domainerror.NewGiftError(
			domainerror.ErrCodeUnauthorizedGiftAccess,
			"not authorized to modify this gift idea",
			domainerror.ErrUnauthorizedGiftAccess,
		)
	}

	return gift, nil
}
