// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Giftee represents a person receiving gifts. Budget is a pointer because an
// unset budget is distinct from a budget of zero.
type Giftee struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Relationship string // Partner, Parent, Friend, etc. Empty when unset.
	Budget       *decimal.Decimal
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewGiftee creates a new Giftee entity owned by the given user.
func NewGiftee(userID uuid.UUID, name, relationship string, budget *decimal.Decimal, notes string) *Giftee {
	now := time.Now().UTC()
	return &Giftee{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Relationship: relationship,
		Budget:       budget,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// GifteeWithGifts represents a giftee together with their gift ideas,
// progress summary, and committed spend.
type GifteeWithGifts struct {
	Giftee    *Giftee
	Gifts     []*GiftIdea
	Progress  GiftProgress
	TotalCost decimal.Decimal
}
