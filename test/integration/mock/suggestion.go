package mock

import (
	"context"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
)

// SuggestionService is a configurable stand-in for the external AI
// brainstorming provider so scenarios never leave the test process.
type SuggestionService struct {
	Available   bool
	Ideas       []*entity.SuggestedGift
	Err         error
	Calls       int
	LastRequest *adapter.BrainstormRequest
}

// NewSuggestionService returns an available service with canned ideas.
func NewSuggestionService() *SuggestionService {
	service := &SuggestionService{}
	service.Reset()
	return service
}

// Brainstorm records the request and returns the configured result.
func (s *SuggestionService) Brainstorm(_ context.Context, request *adapter.BrainstormRequest) (*adapter.BrainstormResult, error) {
	s.Calls++
	s.LastRequest = request

	if s.Err != nil {
		return nil, s.Err
	}

	return &adapter.BrainstormResult{
		Ideas:        s.Ideas,
		CostEstimate: "$0.002",
		TokensUsed:   256,
	}, nil
}

// IsAvailable reports the configured availability.
func (s *SuggestionService) IsAvailable() bool {
	return s.Available
}

// Reset restores the default canned behavior between scenarios.
func (s *SuggestionService) Reset() {
	s.Available = true
	s.Err = nil
	s.Calls = 0
	s.LastRequest = nil
	s.Ideas = []*entity.SuggestedGift{
		{
			Title:       "Pour-over coffee kit",
			Description: "A compact dripper, filters and a starter bag of beans.",
			Rationale:   "Matches the daily coffee habit without repeating gear they own.",
			PriceRange:  "$30-$50",
		},
		{
			Title:       "Hand-bound photo journal",
			Description: "A small journal with pockets for printed photos.",
			Rationale:   "A personal keepsake that fits a modest budget.",
			PriceRange:  "$15-$25",
		},
		{
			Title:       "Local pottery class",
			Description: "A two-hour beginner wheel-throwing session for two.",
			Rationale:   "An experience to share rather than another object.",
			PriceRange:  "$60-$90",
		},
	}
}

var _ adapter.SuggestionService = (*SuggestionService)(nil)
