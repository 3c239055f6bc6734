// Package suggestion contains AI gift brainstorming use cases.
package suggestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

const (
	// DefaultIdeaCount is used when the request does not specify how many
	// ideas to generate.
	DefaultIdeaCount = 5

	// MaxIdeaCount bounds a single brainstorming call.
	MaxIdeaCount = 10
)

// BrainstormGiftsInput represents the input for AI gift brainstorming.
type BrainstormGiftsInput struct {
	UserID   uuid.UUID
	GifteeID uuid.UUID
	Scenario entity.GiftScenario
	// ExtraContext carries scenario-specific hints (occasion, deadline,
	// group size) keyed by field name.
	ExtraContext map[string]string
	NumIdeas     *int // Optional, defaults to DefaultIdeaCount
}

// BrainstormGiftsOutput represents the outcome of a brainstorming attempt.
// External failures are reported through Error with Success false instead of
// an error return, so the entrypoint can render them directly.
type BrainstormGiftsOutput struct {
	Success      bool
	Ideas        []*entity.SuggestedGift
	CostEstimate string
	TokensUsed   int
	FromCache    bool
	Error        *BrainstormError
}

// BrainstormGiftsUseCase orchestrates cache lookup and the AI call.
type BrainstormGiftsUseCase struct {
	gifteeRepo        adapter.GifteeRepository
	suggestionService adapter.SuggestionService
	cache             adapter.SuggestionCache
	logger            *slog.Logger
}

// NewBrainstormGiftsUseCase creates a new BrainstormGiftsUseCase instance.
// The cache is optional; pass nil to always call the service.
func NewBrainstormGiftsUseCase(
	gifteeRepo adapter.GifteeRepository,
	suggestionService adapter.SuggestionService,
	cache adapter.SuggestionCache,
	logger *slog.Logger,
) *BrainstormGiftsUseCase {
	return &BrainstormGiftsUseCase{
		gifteeRepo:        gifteeRepo,
		suggestionService: suggestionService,
		cache:             cache,
		logger:            logger,
	}
}

// Execute performs the brainstorming call for one giftee and scenario.
func (uc *BrainstormGiftsUseCase) Execute(ctx context.Context, input BrainstormGiftsInput) (*BrainstormGiftsOutput, error) {
	if !input.Scenario.IsValid() {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeInvalidScenario,
			"unknown brainstorming scenario",
			domainerror.ErrInvalidScenario,
		)
	}

	numIdeas := DefaultIdeaCount
	if input.NumIdeas != nil {
		if *input.NumIdeas < 1 || *input.NumIdeas > MaxIdeaCount {
			return nil, domainerror.NewSuggestionError(
				domainerror.ErrCodeInvalidIdeaCount,
				fmt.Sprintf("number of ideas must be between 1 and %d", MaxIdeaCount),
				domainerror.ErrInvalidIdeaCount,
			)
		}
		numIdeas = *input.NumIdeas
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

	if !uc.suggestionService.IsAvailable() {
		return nil, domainerror.NewSuggestionError(
			domainerror.ErrCodeSuggestionUnavailable,
			"gift suggestions are not configured",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	request := uc.buildRequest(giftee, input, numIdeas)

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, request)
		if err != nil {
			uc.logger.Warn("suggestion cache lookup failed", "error", err)
		} else if cached != nil {
			return &BrainstormGiftsOutput{
				Success:      true,
				Ideas:        cached.Ideas,
				CostEstimate: cached.CostEstimate,
				TokensUsed:   cached.TokensUsed,
				FromCache:    true,
			}, nil
		}
	}

	result, err := uc.suggestionService.Brainstorm(ctx, request)
	if err != nil {
		brainstormErr := classifyError(err)
		uc.logger.Error("brainstorming failed",
			"giftee_id", giftee.ID,
			"scenario", input.Scenario,
			"code", brainstormErr.Code,
			"error", err,
		)
		return &BrainstormGiftsOutput{
			Success: false,
			Error:   brainstormErr,
		}, nil
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, request, result); err != nil {
			uc.logger.Warn("suggestion cache store failed", "error", err)
		}
	}

	return &BrainstormGiftsOutput{
		Success:      true,
		Ideas:        result.Ideas,
		CostEstimate: result.CostEstimate,
		TokensUsed:   result.TokensUsed,
	}, nil
}

// buildRequest assembles the prompt context from the giftee's profile merged
// with the caller's scenario-specific hints. Caller hints win on key clashes.
func (uc *BrainstormGiftsUseCase) buildRequest(giftee *entity.Giftee, input BrainstormGiftsInput, numIdeas int) *adapter.BrainstormRequest {
	promptContext := make(map[string]string, len(input.ExtraContext)+3)
	if giftee.Relationship != "" {
		promptContext["relationship"] = giftee.Relationship
	}
	if giftee.Notes != "" {
		promptContext["interests"] = giftee.Notes
	}
	if giftee.Budget != nil {
		promptContext["budget"] = giftee.Budget.StringFixed(2)
	}
	for key, value := range input.ExtraContext {
		if value != "" {
			promptContext[key] = value
		}
	}

	return &adapter.BrainstormRequest{
		Scenario:   input.Scenario,
		GifteeName: giftee.Name,
		Context:    promptContext,
		NumIdeas:   numIdeas,
	}
}
