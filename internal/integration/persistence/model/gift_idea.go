// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/domain/entity"
)

// GiftIdeaModel represents the gift_ideas table in the database. Deleting a
// giftee cascades to its gift ideas at the database level; deleting a gift
// idea never affects its giftee.
type GiftIdeaModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	GifteeID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Giftee      *GifteeModel     `gorm:"foreignKey:GifteeID;constraint:OnDelete:CASCADE"`
	Title       string           `gorm:"type:varchar(255);not null"`
	Description *string          `gorm:"type:text"`
	URL         *string          `gorm:"type:varchar(500)"`
	Price       *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Rank        int              `gorm:"not null;default:1"`
	Status      string           `gorm:"type:varchar(20);not null;default:'considering';index"`
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null"`
}

// TableName returns the table name for the GiftIdeaModel.
func (GiftIdeaModel) TableName() string {
	return "gift_ideas"
}

// ToEntity converts a GiftIdeaModel to a domain GiftIdea entity.
func (m *GiftIdeaModel) ToEntity() *entity.GiftIdea {
	gift := &entity.GiftIdea{
		ID:        m.ID,
		GifteeID:  m.GifteeID,
		Title:     m.Title,
		Price:     m.Price,
		Rank:      m.Rank,
		Status:    entity.GiftStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Description != nil {
		gift.Description = *m.Description
	}
	if m.URL != nil {
		gift.URL = *m.URL
	}
	return gift
}

// GiftIdeaFromEntity creates a GiftIdeaModel from a domain GiftIdea entity.
func GiftIdeaFromEntity(gift *entity.GiftIdea) *GiftIdeaModel {
	m := &GiftIdeaModel{
		ID:        gift.ID,
		GifteeID:  gift.GifteeID,
		Title:     gift.Title,
		Price:     gift.Price,
		Rank:      gift.Rank,
		Status:    string(gift.Status),
		CreatedAt: gift.CreatedAt,
		UpdatedAt: gift.UpdatedAt,
	}
	if gift.Description != "" {
		m.Description = &gift.Description
	}
	if gift.URL != "" {
		m.URL = &gift.URL
	}
	return m
}
