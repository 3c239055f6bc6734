// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gift-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getOverviewUseCase *dashboard.GetOverviewUseCase
	sendDigestUseCase  *dashboard.SendDigestUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getOverviewUseCase *dashboard.GetOverviewUseCase,
	sendDigestUseCase *dashboard.SendDigestUseCase,
) *DashboardController {
	return &DashboardController{
		getOverviewUseCase: getOverviewUseCase,
		sendDigestUseCase:  sendDigestUseCase,
	}
}

// GetOverview handles GET /dashboard/overview requests.
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetOverviewInput{
		UserID: userID,
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build dashboard overview",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardOverviewResponse(output))
}

// EmailDigest handles POST /dashboard/email-digest requests. The email is
// queued for the background worker, not sent inline.
func (c *DashboardController) EmailDigest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.SendDigestInput{
		UserID: userID,
	}

	if err := c.sendDigestUseCase.Execute(ctx.Request.Context(), input); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to queue progress digest email",
		})
		return
	}

	ctx.JSON(http.StatusAccepted, dto.MessageResponse{
		Message: "Progress digest email queued",
	})
}
