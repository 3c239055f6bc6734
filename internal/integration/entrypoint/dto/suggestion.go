// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/application/usecase/suggestion"
	"github.com/gift-tracker/backend/internal/domain/entity"
)

// BrainstormRequest represents the request body for AI gift brainstorming.
type BrainstormRequest struct {
	GifteeID string            `json:"giftee_id" binding:"required,uuid"`
	Scenario string            `json:"scenario" binding:"required"`
	Context  map[string]string `json:"context,omitempty"`
	NumIdeas *int              `json:"num_ideas,omitempty" binding:"omitempty,min=1,max=10"`
}

// SuggestedGiftResponse represents one AI-generated gift idea.
type SuggestedGiftResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Rationale   string `json:"rationale"`
	PriceRange  string `json:"price_range"`
}

// BrainstormResponse represents the outcome of a brainstorming attempt.
type BrainstormResponse struct {
	Success      bool                    `json:"success"`
	Ideas        []SuggestedGiftResponse `json:"ideas"`
	CostEstimate string                  `json:"cost_estimate,omitempty"`
	TokensUsed   int                     `json:"tokens_used,omitempty"`
	FromCache    bool                    `json:"from_cache"`
	Error        *BrainstormErrorDetail  `json:"error,omitempty"`
}

// BrainstormErrorDetail mirrors the structured brainstorming failure.
type BrainstormErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// SaveSuggestionRequest represents the request body for saving a suggestion
// as a tracked gift idea.
type SaveSuggestionRequest struct {
	GifteeID    string           `json:"giftee_id" binding:"required,uuid"`
	Title       string           `json:"title" binding:"required,min=1,max=200"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// ScenarioResponse describes one brainstorming scenario.
type ScenarioResponse struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ScenarioListResponse lists the supported brainstorming scenarios.
type ScenarioListResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
	Available bool               `json:"available"`
}

// ToBrainstormResponse converts the brainstorming output to a DTO.
func ToBrainstormResponse(output *suggestion.BrainstormGiftsOutput) BrainstormResponse {
	ideas := make([]SuggestedGiftResponse, len(output.Ideas))
	for i, idea := range output.Ideas {
		ideas[i] = SuggestedGiftResponse{
			Title:       idea.Title,
			Description: idea.Description,
			Rationale:   idea.Rationale,
			PriceRange:  idea.PriceRange,
		}
	}

	response := BrainstormResponse{
		Success:      output.Success,
		Ideas:        ideas,
		CostEstimate: output.CostEstimate,
		TokensUsed:   output.TokensUsed,
		FromCache:    output.FromCache,
	}
	if output.Error != nil {
		response.Error = &BrainstormErrorDetail{
			Code:      output.Error.Code,
			Message:   output.Error.Message,
			Retryable: output.Error.Retryable,
		}
	}
	return response
}

// ToScenarioListResponse converts scenario infos to a DTO.
func ToScenarioListResponse(scenarios []entity.ScenarioInfo, available bool) ScenarioListResponse {
	items := make([]ScenarioResponse, len(scenarios))
	for i, info := range scenarios {
		items[i] = ScenarioResponse{
			Value:       string(info.Value),
			Label:       info.Label,
			Description: info.Description,
		}
	}
	return ScenarioListResponse{
		Scenarios: items,
		Available: available,
	}
}
