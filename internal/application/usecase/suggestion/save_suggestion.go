// Package suggestion contains AI gift brainstorming use cases.
package suggestion

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

// SaveSuggestionInput represents the input for turning an AI suggestion into
// a tracked gift idea.
type SaveSuggestionInput struct {
	UserID      uuid.UUID
	GifteeID    uuid.UUID
	Title       string
	Description string           // Optional
	Price       *decimal.Decimal // Optional
}

// SaveSuggestionOutput represents the output of saving a suggestion.
type SaveSuggestionOutput struct {
	Gift *entity.GiftIdea
}

// SaveSuggestionUseCase converts an accepted AI suggestion into a gift idea
// in considering status at the default rank.
type SaveSuggestionUseCase struct {
	giftRepo   adapter.GiftRepository
	gifteeRepo adapter.GifteeRepository
}

// NewSaveSuggestionUseCase creates a new SaveSuggestionUseCase instance.
func NewSaveSuggestionUseCase(giftRepo adapter.GiftRepository, gifteeRepo adapter.GifteeRepository) *SaveSuggestionUseCase {
	return &SaveSuggestionUseCase{
		giftRepo:   giftRepo,
		gifteeRepo: gifteeRepo,
	}
}

// Execute saves the suggestion as a gift idea.
func (uc *SaveSuggestionUseCase) Execute(ctx context.Context, input SaveSuggestionInput) (*SaveSuggestionOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewGiftError(
			domainerror.ErrCodeGiftTitleRequired,
			"gift title must not be empty",
			domainerror.ErrGiftTitleRequired,
		)
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, domainerror.NewGiftError(
			domainerror.ErrCodeNegativePrice,
			"price must not be negative",
			domainerror.ErrNegativePrice,
		)
	}

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

	gift := entity.NewGiftIdea(
		input.GifteeID,
		input.Title,
		input.Description,
		"",
		input.Price,
		entity.DefaultGiftRank,
		entity.GiftStatusConsidering,
	)

	if err := uc.giftRepo.Create(ctx, gift); err != nil {
		return nil, fmt.Errorf("failed to save suggestion: %w", err)
	}

	return &SaveSuggestionOutput{
		Gift: gift,
	}, nil
}
