// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/domain/entity"
)

// CreateGiftRequest represents the request body for gift idea creation.
type CreateGiftRequest struct {
	Title       string           `json:"title" binding:"required,min=1,max=200"`
	Description string           `json:"description,omitempty"`
	URL         string           `json:"url,omitempty" binding:"omitempty,url"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Rank        *int             `json:"rank,omitempty" binding:"omitempty,min=1"`
	Status      *string          `json:"status,omitempty" binding:"omitempty,oneof=considering acquired wrapped given"`
}

// UpdateGiftRequest represents the request body for gift idea update.
// Omitted fields are left unchanged.
type UpdateGiftRequest struct {
	Title       *string          `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description,omitempty"`
	URL         *string          `json:"url,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Rank        *int             `json:"rank,omitempty" binding:"omitempty,min=1"`
	Status      *string          `json:"status,omitempty" binding:"omitempty,oneof=considering acquired wrapped given"`
}

// UpdateGiftStatusRequest represents the request body for a status change.
// Exactly one of status or action must be provided.
type UpdateGiftStatusRequest struct {
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=considering acquired wrapped given"`
	Action *string `json:"action,omitempty" binding:"omitempty,oneof=advance revert"`
}

// GiftResponse represents a single gift idea in API responses.
type GiftResponse struct {
	ID          string           `json:"id"`
	GifteeID    string           `json:"giftee_id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	URL         string           `json:"url,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Rank        int              `json:"rank"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// GiftListResponse represents the response for listing a giftee's gifts.
type GiftListResponse struct {
	Gifts     []GiftResponse   `json:"gifts"`
	Progress  ProgressResponse `json:"progress"`
	TotalCost decimal.Decimal  `json:"total_cost"`
}

// GiftStatusResponse represents the response for a status change.
type GiftStatusResponse struct {
	Gift           GiftResponse `json:"gift"`
	PreviousStatus string       `json:"previous_status"`
}

// GifteeGiftsResponse groups a giftee with their gifts for the all-gifts view.
type GifteeGiftsResponse struct {
	Giftee GifteeResponse `json:"giftee"`
	Gifts  []GiftResponse `json:"gifts"`
}

// AllGiftsResponse represents the response for listing every gift idea.
type AllGiftsResponse struct {
	Groups     []GifteeGiftsResponse `json:"groups"`
	TotalGifts int                   `json:"total_gifts"`
}

// ToGiftResponse converts a domain GiftIdea entity to a GiftResponse DTO.
func ToGiftResponse(gift *entity.GiftIdea) GiftResponse {
	return GiftResponse{
		ID:          gift.ID.String(),
		GifteeID:    gift.GifteeID.String(),
		Title:       gift.Title,
		Description: gift.Description,
		URL:         gift.URL,
		Price:       gift.Price,
		Rank:        gift.Rank,
		Status:      string(gift.Status),
		CreatedAt:   gift.CreatedAt,
		UpdatedAt:   gift.UpdatedAt,
	}
}

// ToGiftListResponse converts gifts plus aggregates to a list DTO.
func ToGiftListResponse(gifts []*entity.GiftIdea, progress entity.GiftProgress, totalCost decimal.Decimal) GiftListResponse {
	items := make([]GiftResponse, len(gifts))
	for i, gift := range gifts {
		items[i] = ToGiftResponse(gift)
	}
	return GiftListResponse{
		Gifts:     items,
		Progress:  ToProgressResponse(progress),
		TotalCost: totalCost,
	}
}
