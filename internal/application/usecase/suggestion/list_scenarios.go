// Package suggestion contains AI gift brainstorming use cases.
package suggestion

import (
	"context"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
)

// ListScenariosOutput represents the available brainstorming scenarios.
type ListScenariosOutput struct {
	Scenarios []entity.ScenarioInfo
	Available bool
}

// ListScenariosUseCase exposes the supported brainstorming scenarios along
// with whether the suggestion service is configured at all.
type ListScenariosUseCase struct {
	suggestionService adapter.SuggestionService
}

// NewListScenariosUseCase creates a new ListScenariosUseCase instance.
func NewListScenariosUseCase(suggestionService adapter.SuggestionService) *ListScenariosUseCase {
	return &ListScenariosUseCase{
		suggestionService: suggestionService,
	}
}

// Execute lists the supported scenarios.
func (uc *ListScenariosUseCase) Execute(_ context.Context) (*ListScenariosOutput, error) {
	return &ListScenariosOutput{
		Scenarios: entity.AvailableScenarios(),
		Available: uc.suggestionService.IsAvailable(),
	}, nil
}
