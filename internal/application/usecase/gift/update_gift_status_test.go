// Package gift contains gift idea-related use cases.
package gift

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

func statusPtr(s entity.GiftStatus) *entity.GiftStatus { return &s }

func actionPtr(a StatusAction) *StatusAction { return &a }

func TestUpdateGiftStatusUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	setup := func(initial entity.GiftStatus) (*UpdateGiftStatusUseCase, *entity.GiftIdea) {
		gifteeRepo := newMemGifteeRepo()
		giftRepo := newMemGiftRepo()
		giftee := entity.NewGiftee(userID, "Alex", "", nil, "")
		_ = gifteeRepo.Create(context.Background(), giftee)
		gift := entity.NewGiftIdea(giftee.ID, "Board game", "", "", nil, entity.DefaultGiftRank, initial)
		_ = giftRepo.Create(context.Background(), gift)
		return NewUpdateGiftStatusUseCase(giftRepo, gifteeRepo), gift
	}

	t.Run("explicit status change", func(t *testing.T) {
		uc, gift := setup(entity.GiftStatusConsidering)

		output, err := uc.Execute(context.Background(), UpdateGiftStatusInput{
			GiftID: gift.ID,
			UserID: userID,
			Status: statusPtr(entity.GiftStatusGiven),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Gift.Status != entity.GiftStatusGiven {
			t.Errorf("expected status given, got %s", output.Gift.Status)
		}
		if output.PreviousStatus != entity.GiftStatusConsidering {
			t.Errorf("expected previous status considering, got %s", output.PreviousStatus)
		}
	})

	t.Run("advance moves to the next stage", func(t *testing.T) {
		uc, gift := setup(entity.GiftStatusAcquired)

		output, err := uc.Execute(context.Background(), UpdateGiftStatusInput{
			GiftID: gift.ID,
			UserID: userID,
			Action: actionPtr(StatusActionAdvance),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Gift.Status != entity.GiftStatusWrapped {
			t.Errorf("expected status wrapped, got %s", output.Gift.Status)
		}
	})

	t.Run("advance wraps from given to considering", func(t *testing.T) {
		uc, gift := setup(entity.GiftStatusGiven)

		output, err := uc.Execute(context.Background(), UpdateGiftStatusInput{
			GiftID: gift.ID,
			UserID: userID,
			Action: actionPtr(StatusActionAdvance),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Gift.Status != entity.GiftStatusConsidering {
			t.Errorf("expected status considering, got %s", output.Gift.Status)
		}
	})

	t.Run("revert wraps from considering to given", func(t *testing.T) {
		uc, gift := setup(entity.GiftStatusConsidering)

		output, err := uc.Execute(context.Background(), UpdateGiftStatusInput{
			GiftID: gift.ID,
			UserID: userID,
			Action: actionPtr(StatusActionRevert),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Gift.Status != entity.GiftStatusGiven {
			t.Errorf("expected status given, got %s", output.Gift.Status)
		}
	})

	t.Run("neither status nor action is rejected", func(t *testing.T) {
		uc, gift := setup(entity.GiftStatusConsidering)

		_, err := uc.Execute(context.Background(), UpdateGiftStatusInput{
			GiftID: gift.ID,
			UserID: userID,
		})
		if !errors.Is(err, domainerror.ErrInvalidGiftStatus) {
			t.Errorf("expected ErrInvalidGiftStatus, got %v", err)
		}
	})

	t.Run("both status and action is rejected", func(t *testing.T) {
		uc, gift := setup(entity.GiftStatusConsidering)

		_, err := uc.Execute(context.Background(), UpdateGiftStatusInput{
			GiftID: gift.ID,
			UserID: userID,
			Status: statusPtr(entity.GiftStatusAcquired),
			Action: actionPtr(StatusActionAdvance),
		})
		if !errors.Is(err, domainerror.ErrInvalidGiftStatus) {
			t.Errorf("expected ErrInvalidGiftStatus, got %v", err)
		}
	})

	t.Run("invalid explicit status is rejected", func(t *testing.T) {
		uc, gift := setup(entity.GiftStatusConsidering)

		_, err := uc.Execute(context.Background(), UpdateGiftStatusInput{
			GiftID: gift.ID,
			UserID: userID,
			Status: statusPtr(entity.GiftStatus("purchased")),
		})
		if !errors.Is(err, domainerror.ErrInvalidGiftStatus) {
			t.Errorf("expected ErrInvalidGiftStatus, got %v", err)
		}
	})

	t.Run("gift owned through another user's giftee", func(t *testing.T) {
		uc, gift := setup(entity.GiftStatusConsidering)

		_, err := uc.Execute(context.Background(), UpdateGiftStatusInput{
			GiftID: gift.ID,
			UserID: uuid.New(),
			Action: actionPtr(StatusActionAdvance),
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedGiftAccess) {
			t.Errorf("expected ErrUnauthorizedGiftAccess, got %v", err)
		}
	})

	t.Run("gift not found", func(t *testing.T) {
		uc, _ := setup(entity.GiftStatusConsidering)

		_, err := uc.Execute(context.Background(), UpdateGiftStatusInput{
			GiftID: uuid.New(),
			UserID: userID,
			Action: actionPtr(StatusActionAdvance),
		})
		if !errors.Is(err, domainerror.ErrGiftNotFound) {
			t.Errorf("expected ErrGiftNotFound, got %v", err)
		}
	})
}
