// Package gift contains gift idea-related use cases.
package gift

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// memGifteeRepo is an in-memory GifteeRepository for use case tests.
type memGifteeRepo struct {
	giftees map[uuid.UUID]*entity.Giftee
	order   []uuid.UUID
}

func newMemGifteeRepo() *memGifteeRepo {
	return &memGifteeRepo{giftees: make(map[uuid.UUID]*entity.Giftee)}
}

func (r *memGifteeRepo) Create(_ context.Context, giftee *entity.Giftee) error {
	r.giftees[giftee.ID] = giftee
	r.order = append(r.order, giftee.ID)
	return nil
}

func (r *memGifteeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Giftee, error) {
	giftee, ok := r.giftees[id]
	if !ok {
		return nil, domainerror.ErrGifteeNotFound
	}
	return giftee, nil
}

func (r *memGifteeRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Giftee, error) {
	var out []*entity.Giftee
	for _, id := range r.order {
		if giftee := r.giftees[id]; giftee != nil && giftee.UserID == userID {
			out = append(out, giftee)
		}
	}
	return out, nil
}

func (r *memGifteeRepo) Update(_ context.Context, giftee *entity.Giftee) error {
	if _, ok := r.giftees[giftee.ID]; !ok {
		return domainerror.ErrGifteeNotFound
	}
	r.giftees[giftee.ID] = giftee
	return nil
}

func (r *memGifteeRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.giftees[id]
	delete(r.giftees, id)
	return ok, nil
}

func (r *memGifteeRepo) TotalBudget(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, giftee := range r.giftees {
		if giftee.UserID == userID && giftee.Budget != nil {
			total = total.Add(*giftee.Budget)
		}
	}
	return total, nil
}

// memGiftRepo is an in-memory GiftRepository for use case tests.
type memGiftRepo struct {
	gifts map[uuid.UUID]*entity.GiftIdea
	order []uuid.UUID
}

func newMemGiftRepo() *memGiftRepo {
	return &memGiftRepo{gifts: make(map[uuid.UUID]*entity.GiftIdea)}
}

func (r *memGiftRepo) Create(_ context.Context, gift *entity.GiftIdea) error {
	r.gifts[gift.ID] = gift
	r.order = append(r.order, gift.ID)
	return nil
}

func (r *memGiftRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.GiftIdea, error) {
	gift, ok := r.gifts[id]
	if !ok {
		return nil, domainerror.ErrGiftNotFound
	}
	return gift, nil
}

func (r *memGiftRepo) FindByGifteeID(_ context.Context, gifteeID uuid.UUID) ([]*entity.GiftIdea, error) {
	var out []*entity.GiftIdea
	for _, id := range r.order {
		if gift := r.gifts[id]; gift != nil && gift.GifteeID == gifteeID {
			out = append(out, gift)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

func (r *memGiftRepo) Update(_ context.Context, gift *entity.GiftIdea) error {
	if _, ok := r.gifts[gift.ID]; !ok {
		return domainerror.ErrGiftNotFound
	}
	r.gifts[gift.ID] = gift
	return nil
}

func (r *memGiftRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.gifts[id]
	delete(r.gifts, id)
	return ok, nil
}

func (r *memGiftRepo) TotalCost(_ context.Context, gifteeID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, gift := range r.gifts {
		if gift.GifteeID == gifteeID && gift.Status.CountsTowardSpend() && gift.Price != nil {
			total = total.Add(*gift.Price)
		}
	}
	return total, nil
}
