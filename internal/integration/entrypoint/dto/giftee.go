// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/domain/entity"
)

// CreateGifteeRequest represents the request body for giftee creation.
type CreateGifteeRequest struct {
	Name         string           `json:"name" binding:"required,min=1,max=100"`
	Relationship string           `json:"relationship,omitempty" binding:"omitempty,max=100"`
	Budget       *decimal.Decimal `json:"budget,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// UpdateGifteeRequest represents the request body for giftee update.
// Omitted fields are left unchanged.
type UpdateGifteeRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Relationship *string          `json:"relationship,omitempty" binding:"omitempty,max=100"`
	Budget       *decimal.Decimal `json:"budget,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// GifteeResponse represents a single giftee in API responses.
type GifteeResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	Name         string           `json:"name"`
	Relationship string           `json:"relationship,omitempty"`
	Budget       *decimal.Decimal `json:"budget,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// GifteeDetailResponse represents a giftee with their gifts and aggregates.
type GifteeDetailResponse struct {
	GifteeResponse
	Gifts     []GiftResponse   `json:"gifts"`
	Progress  ProgressResponse `json:"progress"`
	TotalCost decimal.Decimal  `json:"total_cost"`
}

// GifteeListResponse represents the response for listing giftees.
type GifteeListResponse struct {
	Giftees     []GifteeResponse `json:"giftees"`
	TotalBudget decimal.Decimal  `json:"total_budget"`
}

// ProgressResponse represents a gift progress summary.
type ProgressResponse struct {
	Total      int     `json:"total"`
	Acquired   int     `json:"acquired"`
	Wrapped    int     `json:"wrapped"`
	Given      int     `json:"given"`
	Percentage float64 `json:"percentage"`
}

// ToGifteeResponse converts a domain Giftee entity to a GifteeResponse DTO.
func ToGifteeResponse(giftee *entity.Giftee) GifteeResponse {
	return GifteeResponse{
		ID:           giftee.ID.String(),
		UserID:       giftee.UserID.String(),
		Name:         giftee.Name,
		Relationship: giftee.Relationship,
		Budget:       giftee.Budget,
		Notes:        giftee.Notes,
		CreatedAt:    giftee.CreatedAt,
		UpdatedAt:    giftee.UpdatedAt,
	}
}

// ToGifteeDetailResponse converts a GifteeWithGifts to a detail DTO.
func ToGifteeDetailResponse(detail *entity.GifteeWithGifts) GifteeDetailResponse {
	gifts := make([]GiftResponse, len(detail.Gifts))
	for i, gift := range detail.Gifts {
		gifts[i] = ToGiftResponse(gift)
	}
	return GifteeDetailResponse{
		GifteeResponse: ToGifteeResponse(detail.Giftee),
		Gifts:          gifts,
		Progress:       ToProgressResponse(detail.Progress),
		TotalCost:      detail.TotalCost,
	}
}

// ToGifteeListResponse converts giftees and their combined budget to a list DTO.
func ToGifteeListResponse(giftees []*entity.Giftee, totalBudget decimal.Decimal) GifteeListResponse {
	items := make([]GifteeResponse, len(giftees))
	for i, giftee := range giftees {
		items[i] = ToGifteeResponse(giftee)
	}
	return GifteeListResponse{
		Giftees:     items,
		TotalBudget: totalBudget,
	}
}

// ToProgressResponse converts a GiftProgress to a ProgressResponse DTO.
func ToProgressResponse(progress entity.GiftProgress) ProgressResponse {
	return ProgressResponse{
		Total:      progress.Total,
		Acquired:   progress.Acquired,
		Wrapped:    progress.Wrapped,
		Given:      progress.Given,
		Percentage: progress.Percentage,
	}
}
