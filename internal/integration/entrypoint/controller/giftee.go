// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/application/usecase/giftee"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/middleware"
)

// GifteeController handles giftee endpoints.
type GifteeController struct {
	listUseCase   *giftee.ListGifteesUseCase
	createUseCase *giftee.CreateGifteeUseCase
	getUseCase    *giftee.GetGifteeUseCase
	updateUseCase *giftee.UpdateGifteeUseCase
	deleteUseCase *giftee.DeleteGifteeUseCase
}

// NewGifteeController creates a new giftee controller instance.
func NewGifteeController(
	listUseCase *giftee.ListGifteesUseCase,
	createUseCase *giftee.CreateGifteeUseCase,
	getUseCase *giftee.GetGifteeUseCase,
	updateUseCase *giftee.UpdateGifteeUseCase,
	deleteUseCase *giftee.DeleteGifteeUseCase,
) *GifteeController {
	return &GifteeController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /giftees requests.
func (c *GifteeController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := giftee.ListGifteesInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve giftees",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGifteeListResponse(output.Giftees, output.TotalBudget))
}

// Create handles POST /giftees requests.
func (c *GifteeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateGifteeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeGifteeNameRequired),
		})
		return
	}

	input := giftee.CreateGifteeInput{
		UserID:       userID,
		Name:         req.Name,
		Relationship: req.Relationship,
		Budget:       req.Budget,
		Notes:        req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGifteeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGifteeResponse(output.Giftee))
}

// Get handles GET /giftees/:id requests.
func (c *GifteeController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	gifteeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid giftee ID format",
		})
		return
	}

	input := giftee.GetGifteeInput{
		GifteeID: gifteeID,
		UserID:   userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGifteeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGifteeDetailResponse(output.Giftee))
}

// Update handles PATCH /giftees/:id requests.
func (c *GifteeController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	gifteeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid giftee ID format",
		})
		return
	}

	var req dto.UpdateGifteeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := giftee.UpdateGifteeInput{
		GifteeID:     gifteeID,
		UserID:       userID,
		Name:         req.Name,
		Relationship: req.Relationship,
		Budget:       req.Budget,
		Notes:        req.Notes,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGifteeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGifteeResponse(output.Giftee))
}

// Delete handles DELETE /giftees/:id requests.
func (c *GifteeController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	gifteeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid giftee ID format",
		})
		return
	}

	input := giftee.DeleteGifteeInput{
		GifteeID: gifteeID,
		UserID:   userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleGifteeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleGifteeError handles giftee errors and returns appropriate HTTP responses.
func (c *GifteeController) handleGifteeError(ctx *gin.Context, err error) {
	var gifteeErr *domainerror.GifteeError
	if errors.As(err, &gifteeErr) {
		statusCode := c.getStatusCodeForGifteeError(gifteeErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: gifteeErr.Message,
			Code:  string(gifteeErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGifteeError maps giftee error codes to HTTP status codes.
func (c *GifteeController) getStatusCodeForGifteeError(code domainerror.GifteeErrorCode) int {
	switch code {
	case domainerror.ErrCodeGifteeNotFound, domainerror.ErrCodeGifteeOwnerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGifteeAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeGifteeNameRequired,
		domainerror.ErrCodeNegativeBudget:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
