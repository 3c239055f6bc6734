// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/gift-tracker/backend/internal/domain/entity"
)

// BrainstormRequest holds the inputs for an AI gift brainstorming call.
type BrainstormRequest struct {
	Scenario   entity.GiftScenario
	GifteeName string
	// Context carries free-text hints keyed by field name (relationship,
	// interests, budget, gift_preferences plus scenario-specific keys).
	Context  map[string]string
	NumIdeas int
}

// BrainstormResult holds the parsed output of a brainstorming call.
type BrainstormResult struct {
	Ideas        []*entity.SuggestedGift
	CostEstimate string
	TokensUsed   int
}

// SuggestionService defines the interface for the external AI gift
// suggestion capability. Calls are single-attempt with no built-in retry.
type SuggestionService interface {
	// Brainstorm generates gift suggestions for the request.
	Brainstorm(ctx context.Context, request *BrainstormRequest) (*BrainstormResult, error)

	// IsAvailable checks if the service is configured.
	IsAvailable() bool
}

// SuggestionCache caches brainstorm results to avoid repeated paid calls
// for identical requests.
type SuggestionCache interface {
	// Get returns the cached result for the request, or nil on a miss.
	// Cache failures are reported but callers treat them as misses.
	Get(ctx context.Context, request *BrainstormRequest) (*BrainstormResult, error)

	// Set stores the result for the request.
	Set(ctx context.Context, request *BrainstormRequest, result *BrainstormResult) error
}
