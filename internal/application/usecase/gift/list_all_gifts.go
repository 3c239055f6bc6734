// Package gift contains gift-idea-related use cases.
package gift

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
)

// ListAllGiftsInput represents the input for listing every gift idea a user
// has recorded across all their giftees.
type ListAllGiftsInput struct {
	UserID uuid.UUID
}

// GifteeGifts pairs a giftee with their rank-ordered gift ideas.
type GifteeGifts struct {
	Giftee *entity.Giftee
	Gifts  []*entity.GiftIdea
}

// ListAllGiftsOutput represents the output of listing every gift idea.
// Groups follow giftee creation order; within each group gifts keep their
// rank ordering.
type ListAllGiftsOutput struct {
	Groups     []GifteeGifts
	TotalGifts int
}

// ListAllGiftsUseCase handles cross-giftee gift listing logic.
type ListAllGiftsUseCase struct {
	giftRepo   adapter.GiftRepository
	gifteeRepo adapter.GifteeRepository
}

// NewListAllGiftsUseCase creates a new ListAllGiftsUseCase instance.
func NewListAllGiftsUseCase(giftRepo adapter.GiftRepository, gifteeRepo adapter.GifteeRepository) *ListAllGiftsUseCase {
	return &ListAllGiftsUseCase{
		giftRepo:   giftRepo,
		gifteeRepo: gifteeRepo,
	}
}

// Execute lists every gift idea of the user grouped by giftee.
func (uc *ListAllGiftsUseCase) Execute(ctx context.Context, input ListAllGiftsInput) (*ListAllGiftsOutput, error) {
	giftees, err := uc.gifteeRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list giftees: %w", err)
	}

	output := &ListAllGiftsOutput{
		Groups: make([]GifteeGifts, 0, len(giftees)),
	}
	for _, giftee := range giftees {
		gifts, err := uc.giftRepo.FindByGifteeID(ctx, giftee.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list gifts for giftee %s: %w", giftee.ID, err)
		}
		output.Groups = append(output.Groups, GifteeGifts{
			Giftee: giftee,
			Gifts:  gifts,
		})
		output.TotalGifts += len(gifts)
	}

	return output, nil
}
