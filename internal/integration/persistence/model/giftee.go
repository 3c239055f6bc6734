// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/domain/entity"
)

// GifteeModel represents the giftees table in the database. Deleting a user
// cascades to their giftees at the database level.
type GifteeModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	User         *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Relationship *string          `gorm:"type:varchar(100)"`
	Budget       *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Notes        *string          `gorm:"type:text"`
	CreatedAt    time.Time        `gorm:"not null"`
	UpdatedAt    time.Time        `gorm:"not null"`
}

// TableName returns the table name for the GifteeModel.
func (GifteeModel) TableName() string {
	return "giftees"
}

// ToEntity converts a GifteeModel to a domain Giftee entity.
func (m *GifteeModel) ToEntity() *entity.Giftee {
	giftee := &entity.Giftee{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Budget:    m.Budget,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Relationship != nil {
		giftee.Relationship = *m.Relationship
	}
	if m.Notes != nil {
		giftee.Notes = *m.Notes
	}
	return giftee
}

// GifteeFromEntity creates a GifteeModel from a domain Giftee entity.
func GifteeFromEntity(giftee *entity.Giftee) *GifteeModel {
	m := &GifteeModel{
		ID:        giftee.ID,
		UserID:    giftee.UserID,
		Name:      giftee.Name,
		Budget:    giftee.Budget,
		CreatedAt: giftee.CreatedAt,
		UpdatedAt: giftee.UpdatedAt,
	}
	if giftee.Relationship != "" {
		m.Relationship = &giftee.Relationship
	}
	if giftee.Notes != "" {
		m.Notes = &giftee.Notes
	}
	return m
}
