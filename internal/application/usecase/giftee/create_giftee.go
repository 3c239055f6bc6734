// Package giftee contains giftee-related use cases.
package giftee

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

// CreateGifteeInput represents the input for giftee creation.
type CreateGifteeInput struct {
	UserID       uuid.UUID
	Name         string
	Relationship string           // Optional
	Budget       *decimal.Decimal // Optional, nil means unset
	Notes        string           // Optional
}

// CreateGifteeOutput represents the output of giftee creation.
type CreateGifteeOutput struct {
	Giftee *entity.Giftee
}

// CreateGifteeUseCase handles giftee creation logic.
type CreateGifteeUseCase struct {
	gifteeRepo adapter.GifteeRepository
}

// NewCreateGifteeUseCase creates a new CreateGifteeUseCase instance.
func NewCreateGifteeUseCase(gifteeRepo adapter.GifteeRepository) *CreateGifteeUseCase {
	return &CreateGifteeUseCase{
		gifteeRepo: gifteeRepo,
	}
}

// Execute performs the giftee creation.
func (uc *CreateGifteeUseCase) Execute(ctx context.Context, input CreateGifteeInput) (*CreateGifteeOutput, error) {
	// Validate name
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewGifteeError(
			domainerror.ErrCodeGifteeNameRequired,
			"giftee name is required",
			domainerror.ErrGifteeNameRequired,
		)
	}

	// Validate budget when set
	if input.Budget != nil && input.Budget.IsNegative() {
		return nil, domainerror.NewGifteeError(
			domainerror.ErrCodeNegativeBudget,
			"budget must not be negative",
			domainerror.ErrNegativeBudget,
		)
	}

	// Create giftee entity
	giftee := entity.NewGiftee(input.UserID, input.Name, input.Relationship, input.Budget, input.Notes)

	// Save giftee to database
	if err := uc.gifteeRepo.Create(ctx, giftee); err != nil {
		if errors.Is(err, domainerror.ErrGifteeOwnerNotFound) {
			return nil, domainerror.NewGifteeError(
				domainerror.ErrCodeGifteeOwnerNotFound,
				"owning user not found",
				domainerror.ErrGifteeOwnerNotFound,
			)
		}
		return nil, fmt.Errorf("failed to create giftee: %w", err)
	}

	return &CreateGifteeOutput{
		Giftee: giftee,
	}, nil
}
