// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/application/usecase/suggestion"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/middleware"
)

// SuggestionController handles AI gift brainstorming endpoints.
type SuggestionController struct {
	brainstormUseCase    *suggestion.BrainstormGiftsUseCase
	saveUseCase          *suggestion.SaveSuggestionUseCase
	listScenariosUseCase *suggestion.ListScenariosUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(
	brainstormUseCase *suggestion.BrainstormGiftsUseCase,
	saveUseCase *suggestion.SaveSuggestionUseCase,
	listScenariosUseCase *suggestion.ListScenariosUseCase,
) *SuggestionController {
	return &SuggestionController{
		brainstormUseCase:    brainstormUseCase,
		saveUseCase:          saveUseCase,
		listScenariosUseCase: listScenariosUseCase,
	}
}

// Brainstorm handles POST /suggestions/brainstorm requests.
func (c *SuggestionController) Brainstorm(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.BrainstormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	gifteeID, err := uuid.Parse(req.GifteeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid giftee ID format",
		})
		return
	}

	input := suggestion.BrainstormGiftsInput{
		UserID:       userID,
		GifteeID:     gifteeID,
		Scenario:     entity.GiftScenario(req.Scenario),
		ExtraContext: req.Context,
		NumIdeas:     req.NumIdeas,
	}

	output, err := c.brainstormUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	// External AI failures come back with Success false and still render
	// as a 200 so the client can inspect the structured error.
	ctx.JSON(http.StatusOK, dto.ToBrainstormResponse(output))
}

// Save handles POST /suggestions/save requests.
func (c *SuggestionController) Save(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SaveSuggestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeGiftTitleRequired),
		})
		return
	}

	gifteeID, err := uuid.Parse(req.GifteeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid giftee ID format",
		})
		return
	}

	input := suggestion.SaveSuggestionInput{
		UserID:      userID,
		GifteeID:    gifteeID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGiftResponse(output.Gift))
}

// ListScenarios handles GET /suggestions/scenarios requests.
func (c *SuggestionController) ListScenarios(ctx *gin.Context) {
	output, err := c.listScenariosUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list scenarios",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScenarioListResponse(output.Scenarios, output.Available))
}

// handleSuggestionError handles suggestion errors and returns appropriate
// HTTP responses. Brainstorming touches giftees and gifts, so their domain
// errors surface here too.
func (c *SuggestionController) handleSuggestionError(ctx *gin.Context, err error) {
	var suggestionErr *domainerror.SuggestionError
	if errors.As(err, &suggestionErr) {
		statusCode := c.getStatusCodeForSuggestionError(suggestionErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: suggestionErr.Message,
			Code:  string(suggestionErr.Code),
		})
		return
	}

	var gifteeErr *domainerror.GifteeError
	if errors.As(err, &gifteeErr) {
		statusCode := http.StatusInternalServerError
		switch gifteeErr.Code {
		case domainerror.ErrCodeGifteeNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeUnauthorizedGifteeAccess:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: gifteeErr.Message,
			Code:  string(gifteeErr.Code),
		})
		return
	}

	var giftErr *domainerror.GiftError
	if errors.As(err, &giftErr) {
		statusCode := http.StatusInternalServerError
		switch giftErr.Code {
		case domainerror.ErrCodeGiftTitleRequired, domainerror.ErrCodeNegativePrice:
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: giftErr.Message,
			Code:  string(giftErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSuggestionError maps suggestion error codes to HTTP status
// codes.
func (c *SuggestionController) getStatusCodeForSuggestionError(code domainerror.SuggestionErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidScenario, domainerror.ErrCodeInvalidIdeaCount:
		return http.StatusBadRequest
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
