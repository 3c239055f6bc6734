package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
)

// SendDigestInput represents the input for emailing a progress digest.
type SendDigestInput struct {
	UserID uuid.UUID
}

// SendDigestUseCase queues a gift progress digest email for a user,
// summarizing per-giftee completion the same way the overview does.
type SendDigestUseCase struct {
	userRepo     adapter.UserRepository
	gifteeRepo   adapter.GifteeRepository
	giftRepo     adapter.GiftRepository
	emailService adapter.EmailService
}

// NewSendDigestUseCase creates a new SendDigestUseCase instance.
func NewSendDigestUseCase(
	userRepo adapter.UserRepository,
	gifteeRepo adapter.GifteeRepository,
	giftRepo adapter.GiftRepository,
	emailService adapter.EmailService,
) *SendDigestUseCase {
	return &SendDigestUseCase{
		userRepo:     userRepo,
		gifteeRepo:   gifteeRepo,
		giftRepo:     giftRepo,
		emailService: emailService,
	}
}

// Execute builds per-giftee progress lines and queues the digest email.
// A user with no giftees still gets a digest; the template renders an
// empty list.
func (uc *SendDigestUseCase) Execute(ctx context.Context, input SendDigestInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	giftees, err := uc.gifteeRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to list giftees: %w", err)
	}

	lines := make([]adapter.ProgressDigestGiftee, 0, len(giftees))
	for _, giftee := range giftees {
		gifts, err := uc.giftRepo.FindByGifteeID(ctx, giftee.ID)
		if err != nil {
			return fmt.Errorf("failed to list gifts for giftee %s: %w", giftee.ID, err)
		}

		statuses := make([]entity.GiftStatus, len(gifts))
		for i, gift := range gifts {
			statuses[i] = gift.Status
		}
		progress := entity.CalculateProgress(statuses)

		lines = append(lines, adapter.ProgressDigestGiftee{
			Name:       giftee.Name,
			Total:      progress.Total,
			Acquired:   progress.Acquired,
			Wrapped:    progress.Wrapped,
			Given:      progress.Given,
			Percentage: progress.Percentage,
		})
	}

	return uc.emailService.QueueProgressDigestEmail(ctx, adapter.QueueProgressDigestInput{
		UserEmail: user.Email,
		UserName:  user.Name,
		Giftees:   lines,
	})
}
