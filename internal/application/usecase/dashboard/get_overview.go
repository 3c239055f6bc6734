// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
)

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// GifteeSummary aggregates one giftee's budget, committed spend, and gift
// progress for the dashboard.
type GifteeSummary struct {
	Giftee    *entity.Giftee
	GiftCount int
	TotalCost decimal.Decimal
	Progress  entity.GiftProgress
	// OverBudget is set when the giftee has a budget and committed spend
	// exceeds it.
	OverBudget bool
}

// GetOverviewOutput represents the dashboard overview across all giftees.
type GetOverviewOutput struct {
	Giftees     []GifteeSummary
	TotalBudget decimal.Decimal
	TotalCost   decimal.Decimal
	TotalGifts  int
	Progress    entity.GiftProgress
}

// GetOverviewUseCase assembles the dashboard overview.
type GetOverviewUseCase struct {
	gifteeRepo adapter.GifteeRepository
	giftRepo   adapter.GiftRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(gifteeRepo adapter.GifteeRepository, giftRepo adapter.GiftRepository) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		gifteeRepo: gifteeRepo,
		giftRepo:   giftRepo,
	}
}

// Execute builds per-giftee summaries plus overall totals for the user.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	giftees, err := uc.gifteeRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list giftees: %w", err)
	}

	totalBudget, err := uc.gifteeRepo.TotalBudget(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum budgets: %w", err)
	}

	output := &GetOverviewOutput{
		Giftees:     make([]GifteeSummary, 0, len(giftees)),
		TotalBudget: totalBudget,
		TotalCost:   decimal.Zero,
	}

	var allStatuses []entity.GiftStatus
	for _, giftee := range giftees {
		gifts, err := uc.giftRepo.FindByGifteeID(ctx, giftee.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list gifts for giftee %s: %w", giftee.ID, err)
		}

		totalCost, err := uc.giftRepo.TotalCost(ctx, giftee.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to sum gift costs for giftee %s: %w", giftee.ID, err)
		}

		statuses := make([]entity.GiftStatus, len(gifts))
		for i, gift := range gifts {
			statuses[i] = gift.Status
		}
		allStatuses = append(allStatuses, statuses...)

		output.Giftees = append(output.Giftees, GifteeSummary{
			Giftee:     giftee,
			GiftCount:  len(gifts),
			TotalCost:  totalCost,
			Progress:   entity.CalculateProgress(statuses),
			OverBudget: giftee.Budget != nil && totalCost.GreaterThan(*giftee.Budget),
		})
		output.TotalCost = output.TotalCost.Add(totalCost)
		output.TotalGifts += len(gifts)
	}

	output.Progress = entity.CalculateProgress(allStatuses)

	return output, nil
}
