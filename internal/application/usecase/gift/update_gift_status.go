// Package gift contains gift-idea-related use cases.
package gift

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// StatusAction identifies a relative move through the status workflow.
type StatusAction string

const (
	// StatusActionAdvance moves the gift to the next workflow stage,
	// wrapping from given back to considering.
	StatusActionAdvance StatusAction = "advance"

	// StatusActionRevert moves the gift to the previous workflow stage,
	// wrapping from considering back to given.
	StatusActionRevert StatusAction = "revert"
)

// UpdateGiftStatusInput represents the input for moving a gift through the
// workflow. Exactly one of Status or Action must be set.
type UpdateGiftStatusInput struct {
	GiftID uuid.UUID
	UserID uuid.UUID
	Status *entity.GiftStatus // Explicit target status
	Action *StatusAction      // Relative move
}

// UpdateGiftStatusOutput represents the output of a status change.
type UpdateGiftStatusOutput struct {
	Gift           *entity.GiftIdea
	PreviousStatus entity.GiftStatus
}

// UpdateGiftStatusUseCase handles gift status workflow logic. Any status may
// move to any other; the workflow order only defines advance and revert.
type UpdateGiftStatusUseCase struct {
	giftRepo   adapter.GiftRepository
	gifteeRepo adapter.GifteeRepository
}

// NewUpdateGiftStatusUseCase creates a new UpdateGiftStatusUseCase instance.
func NewUpdateGiftStatusUseCase(giftRepo adapter.GiftRepository, gifteeRepo adapter.GifteeRepository) *UpdateGiftStatusUseCase {
	return &UpdateGiftStatusUseCase{
		giftRepo:   giftRepo,
		gifteeRepo: gifteeRepo,
	}
}

// Execute performs the status change.
func (uc *UpdateGiftStatusUseCase) Execute(ctx context.Context, input UpdateGiftStatusInput) (*UpdateGiftStatusOutput, error) {
	if (input.Status == nil) == (input.Action == nil) {
		return nil, domainerror.NewGiftError(
			domainerror.ErrCodeInvalidGiftStatus,
			"exactly one of status or action must be provided",
			domainerror.ErrInvalidGiftStatus,
		)
	}

	gift, err := findOwnedGift(ctx, uc.giftRepo, uc.gifteeRepo, input.GiftID, input.UserID)
	if err != nil {
		return nil, err
	}

	previous := gift.Status

	switch {
	case input.Status != nil:
		if !input.Status.IsValid() {
			return nil, domainerror.NewGiftError(
				domainerror.ErrCodeInvalidGiftStatus,
				"status must be 'considering', 'acquired', 'wrapped', or 'given'",
				domainerror.ErrInvalidGiftStatus,
			)
		}
		gift.Status = *input.Status
	case *input.Action == StatusActionAdvance:
		gift.Status = gift.Status.Next()
	case *input.Action == StatusActionRevert:
		gift.Status = gift.Status.Previous()
	default:
		return nil, domainerror.NewGiftError(
			domainerror.ErrCodeInvalidGiftStatus,
			"action must be 'advance' or 'revert'",
			domainerror.ErrInvalidGiftStatus,
		)
	}

	gift.UpdatedAt = time.Now().UTC()

	if err := uc.giftRepo.Update(ctx, gift); err != nil {
		return nil, fmt.Errorf("failed to update gift status: %w", err)
	}

	return &UpdateGiftStatusOutput{
		Gift:           gift,
		PreviousStatus: previous,
	}, nil
}
