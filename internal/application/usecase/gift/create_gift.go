// Package gift contains gift-idea-related use cases.
package gift

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// CreateGiftInput represents the input for gift idea creation.
type CreateGiftInput struct {
	GifteeID    uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string             // Optional
	URL         string             // Optional
	Price       *decimal.Decimal   // Optional
	Rank        *int               // Optional, defaults to 1
	Status      *entity.GiftStatus // Optional, defaults to considering
}

// CreateGiftOutput represents the output of gift idea creation.
type CreateGiftOutput struct {
	Gift *entity.GiftIdea
}

// CreateGiftUseCase handles gift idea creation logic.
type CreateGiftUseCase struct {
	giftRepo   adapter.GiftRepository
	gifteeRepo adapter.GifteeRepository
}

// NewCreateGiftUseCase creates a new CreateGiftUseCase instance.
func NewCreateGiftUseCase(giftRepo adapter.GiftRepository, gifteeRepo adapter.GifteeRepository) *CreateGiftUseCase {
	return &CreateGiftUseCase{
		giftRepo:   giftRepo,
		gifteeRepo: gifteeRepo,
	}
}

// Execute performs the gift idea creation.
func (uc *CreateGiftUseCase) Execute(ctx context.Context, input CreateGiftInput) (*CreateGiftOutput, error) {
	// Validate title
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewGiftError(
			domainerror.ErrCodeGiftTitleRequired,
			"gift title must not be empty",
			domainerror.ErrGiftTitleRequired,
		)
	}

	// Validate price if provided
	if input.Price != nil && input.Price.IsNegative() {
		return nil, domainerror.NewGiftError(
			domainerror.ErrCodeNegativePrice,
			"price must not be negative",
			domainerror.ErrNegativePrice,
		)
	}

	// Apply rank default and validate
	rank := entity.DefaultGiftRank
	if input.Rank != nil {
		if *input.Rank < 1 {
			return nil, domainerror.NewGiftError(
				domainerror.ErrCodeInvalidGiftRank,
				"rank must be at least 1",
				domainerror.ErrInvalidGiftRank,
			)
		}
		rank = *input.Rank
	}

	// Apply status default and validate
	status := entity.GiftStatusConsidering
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerror.NewGiftError(
				domainerror.ErrCodeInvalidGiftStatus,
				"status must be 'considering', 'acquired', 'wrapped', or 'given'",
				domainerror.ErrInvalidGiftStatus,
			)
		}
		status = *input.Status
	}

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

	gift := entity.NewGiftIdea(input.GifteeID, input.Title, input.Description, input.URL, input.Price, rank, status)

	if err := uc.giftRepo.Create(ctx, gift); err != nil {
		if errors.Is(err, domainerror.ErrGifteeNotFound) {
			return nil, domainerror.NewGifteeError(
				domainerror.ErrCodeGifteeNotFound,
				"giftee not found",
				domainerror.ErrGifteeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to create gift idea: %w", err)
	}

	return &CreateGiftOutput{
		Gift: gift,
	}, nil
}
