// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GiftStatus represents the stage of a gift idea in the workflow. The four
// stages form a display ordering only; any status may move to any other.
type GiftStatus string

const (
	GiftStatusConsidering GiftStatus = "considering"
	GiftStatusAcquired    GiftStatus = "acquired"
	GiftStatusWrapped     GiftStatus = "wrapped"
	GiftStatusGiven       GiftStatus = "given"
)

// giftStatusOrder is the display progression of the workflow.
var giftStatusOrder = []GiftStatus{
	GiftStatusConsidering,
	GiftStatusAcquired,
	GiftStatusWrapped,
	GiftStatusGiven,
}

// IsValid reports whether the status is one of the four workflow stages.
func (s GiftStatus) IsValid() bool {
	switch s {
	case GiftStatusConsidering, GiftStatusAcquired, GiftStatusWrapped, GiftStatusGiven:
		return true
	}
	return false
}

// CountsTowardSpend reports whether a gift in this status contributes to the
// committed spend of its giftee. Considering represents an unpurchased idea.
func (s GiftStatus) CountsTowardSpend() bool {
	return s == GiftStatusAcquired || s == GiftStatusWrapped || s == GiftStatusGiven
}

// Next returns the following status in the workflow, wrapping from given
// back to considering. Unknown statuses normalize to considering.
func (s GiftStatus) Next() GiftStatus {
	for i, status := range giftStatusOrder {
		if status == s {
			return giftStatusOrder[(i+1)%len(giftStatusOrder)]
		}
	}
	return GiftStatusConsidering
}

// Previous returns the preceding status in the workflow, wrapping from
// considering back to given. Unknown statuses normalize to considering.
func (s GiftStatus) Previous() GiftStatus {
	for i, status := range giftStatusOrder {
		if status == s {
			return giftStatusOrder[(i+len(giftStatusOrder)-1)%len(giftStatusOrder)]
		}
	}
	return GiftStatusConsidering
}

// DefaultGiftRank is the rank assigned to new gift ideas; 1 is the top
// choice. Ranks are display-order hints and need not be unique.
const DefaultGiftRank = 1

// GiftIdea represents a candidate gift for a giftee. Price is a pointer
// because an unset price is distinct from a price of zero.
type GiftIdea struct {
	ID          uuid.UUID
	GifteeID    uuid.UUID
	Title       string
	Description string
	URL         string
	Price       *decimal.Decimal
	Rank        int
	Status      GiftStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGiftIdea creates a new GiftIdea entity for the given giftee.
func NewGiftIdea(gifteeID uuid.UUID, title, description, url string, price *decimal.Decimal, rank int, status GiftStatus) *GiftIdea {
	now := time.Now().UTC()
	return &GiftIdea{
		ID:          uuid.New(),
		GifteeID:    gifteeID,
		Title:       title,
		Description: description,
		URL:         url,
		Price:       price,
		Rank:        rank,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// GiftProgress summarizes how far a collection of gifts has progressed
// through the workflow.
type GiftProgress struct {
	Total      int
	Acquired   int     // at or past acquired
	Wrapped    int     // at or past wrapped
	Given      int     // exactly given
	Percentage float64 // acquired-or-later relative to total, 0..100
}

// CalculateProgress computes a progress summary over gift statuses. It is a
// pure reporting function; an empty input yields the zero summary.
func CalculateProgress(statuses []GiftStatus) GiftProgress {
	progress := GiftProgress{Total: len(statuses)}
	if progress.Total == 0 {
		return progress
	}

	for _, status := range statuses {
		switch status {
		case GiftStatusAcquired:
			progress.Acquired++
		case GiftStatusWrapped:
			progress.Acquired++
			progress.Wrapped++
		case GiftStatusGiven:
			progress.Acquired++
			progress.Wrapped++
			progress.Given++
		}
	}

	progress.Percentage = float64(progress.Acquired) / float64(progress.Total) * 100
	return progress
}
