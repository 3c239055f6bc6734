// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

func TestGiftRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewGiftRepository(db)
	user := createTestUser(t, db, "owner@example.com")
	giftee := createTestGiftee(t, db, user.ID, "Alex", nil)

	t.Run("round trip keeps optional fields", func(t *testing.T) {
		price := decimal.RequireFromString("42.99")
		gift := entity.NewGiftIdea(giftee.ID, "Headphones", "Noise cancelling", "https://example.com/hp", &price, 2, entity.GiftStatusAcquired)
		if err := repo.Create(context.Background(), gift); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(context.Background(), gift.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Title != "Headphones" || found.Description != "Noise cancelling" || found.URL != "https://example.com/hp" {
			t.Errorf("unexpected gift: %+v", found)
		}
		if found.Price == nil || !found.Price.Equal(price) {
			t.Errorf("expected price %s, got %v", price, found.Price)
		}
		if found.Rank != 2 || found.Status != entity.GiftStatusAcquired {
			t.Errorf("unexpected rank/status: %+v", found)
		}
	})

	t.Run("unknown giftee is rejected", func(t *testing.T) {
		gift := entity.NewGiftIdea(uuid.New(), "Orphan", "", "", nil, 1, entity.GiftStatusConsidering)
		err := repo.Create(context.Background(), gift)
		if !errors.Is(err, domainerror.ErrGifteeNotFound) {
			t.Errorf("expected ErrGifteeNotFound, got %v", err)
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), uuid.New())
		if !errors.Is(err, domainerror.ErrGiftNotFound) {
			t.Errorf("expected ErrGiftNotFound, got %v", err)
		}
	})
}

func TestGiftRepository_FindByGifteeID_RankOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewGiftRepository(db)
	user := createTestUser(t, db, "owner@example.com")
	giftee := createTestGiftee(t, db, user.ID, "Alex", nil)

	// Insert out of rank order with distinct creation times so the
	// insertion-order tiebreak is deterministic.
	base := time.Now().UTC()
	for i, spec := range []struct {
		title string
		rank  int
	}{
		{"third", 3},
		{"first", 1},
		{"second", 2},
		{"first-tie", 1},
	} {
		gift := entity.NewGiftIdea(giftee.ID, spec.title, "", "", nil, spec.rank, entity.GiftStatusConsidering)
		gift.CreatedAt = base.Add(time.Duration(i) * time.Second)
		gift.UpdatedAt = gift.CreatedAt
		if err := repo.Create(context.Background(), gift); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	gifts, err := repo.FindByGifteeID(context.Background(), giftee.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"first", "first-tie", "second", "third"}
	if len(gifts) != len(want) {
		t.Fatalf("expected %d gifts, got %d", len(want), len(gifts))
	}
	for i, title := range want {
		if gifts[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, gifts[i].Title)
		}
	}
}

func TestGiftRepository_TotalCost(t *testing.T) {
	db := newTestDB(t)
	repo := NewGiftRepository(db)
	user := createTestUser(t, db, "owner@example.com")
	giftee := createTestGiftee(t, db, user.ID, "Alex", nil)

	t.Run("zero with no gifts", func(t *testing.T) {
		total, err := repo.TotalCost(context.Background(), giftee.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.IsZero() {
			t.Errorf("expected zero, got %s", total)
		}
	})

	t.Run("only acquired or later statuses count", func(t *testing.T) {
		specs := []struct {
			price  string
			status entity.GiftStatus
		}{
			{"100.00", entity.GiftStatusConsidering}, // not committed spend
			{"50.00", entity.GiftStatusAcquired},
			{"30.00", entity.GiftStatusWrapped},
			{"50.00", entity.GiftStatusGiven},
		}
		for _, spec := range specs {
			price := decimal.RequireFromString(spec.price)
			gift := entity.NewGiftIdea(giftee.ID, "Item", "", "", &price, 1, spec.status)
			if err := repo.Create(context.Background(), gift); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		// A priced-less acquired gift contributes nothing.
		unpriced := entity.NewGiftIdea(giftee.ID, "Unpriced", "", "", nil, 1, entity.GiftStatusAcquired)
		if err := repo.Create(context.Background(), unpriced); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		total, err := repo.TotalCost(context.Background(), giftee.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := decimal.RequireFromString("130.00"); !total.Equal(want) {
			t.Errorf("expected %s, got %s", want, total)
		}
	})
}

func TestGiftRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewGiftRepository(db)
	gifteeRepo := NewGifteeRepository(db)
	user := createTestUser(t, db, "owner@example.com")
	giftee := createTestGiftee(t, db, user.ID, "Alex", nil)

	gift := entity.NewGiftIdea(giftee.ID, "Mug", "", "", nil, 1, entity.GiftStatusConsidering)
	if err := repo.Create(context.Background(), gift); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleted, err := repo.Delete(context.Background(), gift.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report a removed row")
	}

	// The owning giftee is untouched.
	if _, err := gifteeRepo.FindByID(context.Background(), giftee.ID); err != nil {
		t.Errorf("expected giftee to survive gift deletion, got %v", err)
	}

	deleted, err = repo.Delete(context.Background(), gift.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report no removed row")
	}
}
