// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gift-tracker/backend/internal/application/usecase/gift"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/middleware"
)

// GiftController handles gift idea endpoints.
type GiftController struct {
	createUseCase       *gift.CreateGiftUseCase
	listUseCase         *gift.ListGiftsUseCase
	listAllUseCase      *gift.ListAllGiftsUseCase
	updateUseCase       *gift.UpdateGiftUseCase
	updateStatusUseCase *gift.UpdateGiftStatusUseCase
	deleteUseCase       *gift.DeleteGiftUseCase
}

// NewGiftController creates a new gift controller instance.
func NewGiftController(
	createUseCase *gift.CreateGiftUseCase,
	listUseCase *gift.ListGiftsUseCase,
	listAllUseCase *gift.ListAllGiftsUseCase,
	updateUseCase *gift.UpdateGiftUseCase,
	updateStatusUseCase *gift.UpdateGiftStatusUseCase,
	deleteUseCase *gift.DeleteGiftUseCase,
) *GiftController {
	return &GiftController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		listAllUseCase:      listAllUseCase,
		updateUseCase:       updateUseCase,
		updateStatusUseCase: updateStatusUseCase,
		deleteUseCase:       deleteUseCase,
	}
}

// Create handles POST /giftees/:id/gifts requests.
func (c *GiftController) Create(ctx *gin.Context) {
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

	var req dto.CreateGiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeGiftTitleRequired),
		})
		return
	}

	input := gift.CreateGiftInput{
		GifteeID:    gifteeID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Price:       req.Price,
		Rank:        req.Rank,
		Status:      toGiftStatus(req.Status),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGiftError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGiftResponse(output.Gift))
}

// List handles GET /giftees/:id/gifts requests.
func (c *GiftController) List(ctx *gin.Context) {
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

	input := gift.ListGiftsInput{
		GifteeID: gifteeID,
		UserID:   userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGiftError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGiftListResponse(output.Gifts, output.Progress, output.TotalCost))
}

// ListAll handles GET /gifts requests.
func (c *GiftController) ListAll(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := gift.ListAllGiftsInput{
		UserID: userID,
	}

	output, err := c.listAllUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve gifts",
		})
		return
	}

	groups := make([]dto.GifteeGiftsResponse, len(output.Groups))
	for i, group := range output.Groups {
		gifts := make([]dto.GiftResponse, len(group.Gifts))
		for j, g := range group.Gifts {
			gifts[j] = dto.ToGiftResponse(g)
		}
		groups[i] = dto.GifteeGiftsResponse{
			Giftee: dto.ToGifteeResponse(group.Giftee),
			Gifts:  gifts,
		}
	}

	ctx.JSON(http.StatusOK, dto.AllGiftsResponse{
		Groups:     groups,
		TotalGifts: output.TotalGifts,
	})
}

// Update handles PATCH /gifts/:id requests.
func (c *GiftController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	giftID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid gift ID format",
		})
		return
	}

	var req dto.UpdateGiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := gift.UpdateGiftInput{
		GiftID:      giftID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Price:       req.Price,
		Rank:        req.Rank,
		Status:      toGiftStatus(req.Status),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGiftError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGiftResponse(output.Gift))
}

// UpdateStatus handles PATCH /gifts/:id/status requests.
func (c *GiftController) UpdateStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	giftID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid gift ID format",
		})
		return
	}

	var req dto.UpdateGiftStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidGiftStatus),
		})
		return
	}

	input := gift.UpdateGiftStatusInput{
		GiftID: giftID,
		UserID: userID,
		Status: toGiftStatus(req.Status),
	}
	if req.Action != nil {
		action := gift.StatusAction(*req.Action)
		input.Action = &action
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGiftError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GiftStatusResponse{
		Gift:           dto.ToGiftResponse(output.Gift),
		PreviousStatus: string(output.PreviousStatus),
	})
}

// Delete handles DELETE /gifts/:id requests.
func (c *GiftController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	giftID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid gift ID format",
		})
		return
	}

	input := gift.DeleteGiftInput{
		GiftID: giftID,
		UserID: userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleGiftError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// toGiftStatus converts an optional request status string to a domain status.
func toGiftStatus(status *string) *entity.GiftStatus {
	if status == nil {
		return nil
	}
	s := entity.GiftStatus(*status)
	return &s
}

// handleGiftError handles gift errors and returns appropriate HTTP responses.
func (c *GiftController) handleGiftError(ctx *gin.Context, err error) {
	var giftErr *domainerror.GiftError
	if errors.As(err, &giftErr) {
		statusCode := c.getStatusCodeForGiftError(giftErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: giftErr.Message,
			Code:  string(giftErr.Code),
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

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGiftError maps gift error codes to HTTP status codes.
func (c *GiftController) getStatusCodeForGiftError(code domainerror.GiftErrorCode) int {
	switch code {
	case domainerror.ErrCodeGiftNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGiftAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeGiftTitleRequired,
		domainerror.ErrCodeNegativePrice,
		domainerror.ErrCodeInvalidGiftStatus,
		domainerror.ErrCodeInvalidGiftRank:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
