// Package giftee contains giftee-related use cases.
package giftee

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
)

// ListGifteesInput represents the input for listing giftees.
type ListGifteesInput struct {
	UserID uuid.UUID
}

// ListGifteesOutput represents the output of listing giftees.
type ListGifteesOutput struct {
	Giftees     []*entity.Giftee
	TotalBudget decimal.Decimal
}

// ListGifteesUseCase handles giftee listing logic.
type ListGifteesUseCase struct {
	gifteeRepo adapter.GifteeRepository
}

// NewListGifteesUseCase creates a new ListGifteesUseCase instance.
func NewListGifteesUseCase(gifteeRepo adapter.GifteeRepository) *ListGifteesUseCase {
	return &ListGifteesUseCase{
		gifteeRepo: gifteeRepo,
	}
}

// Execute lists the user's giftees in insertion order along with the total
// budget across them.
func (uc *ListGifteesUseCase) Execute(ctx context.Context, input ListGifteesInput) (*ListGifteesOutput, error) {
	giftees, err := uc.gifteeRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list giftees: %w", err)
	}

	totalBudget, err := uc.gifteeRepo.TotalBudget(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum budgets: %w", err)
	}

	return &ListGifteesOutput{
		Giftees:     giftees,
		TotalBudget: totalBudget,
	}, nil
}
