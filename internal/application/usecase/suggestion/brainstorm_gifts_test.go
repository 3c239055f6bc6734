// Package suggestion contains AI gift brainstorming use cases.
package suggestion

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

type fakeGifteeRepo struct {
	giftees map[uuid.UUID]*entity.Giftee
}

func (r *fakeGifteeRepo) Create(_ context.Context, giftee *entity.Giftee) error {
	r.giftees[giftee.ID] = giftee
	return nil
}

func (r *fakeGifteeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Giftee, error) {
	giftee, ok := r.giftees[id]
	if !ok {
		return nil, domainerror.ErrGifteeNotFound
	}
	return giftee, nil
}

func (r *fakeGifteeRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Giftee, error) {
	var out []*entity.Giftee
	for _, giftee := range r.giftees {
		if giftee.UserID == userID {
			out = append(out, giftee)
		}
	}
	return out, nil
}

func (r *fakeGifteeRepo) Update(_ context.Context, giftee *entity.Giftee) error {
	r.giftees[giftee.ID] = giftee
	return nil
}

func (r *fakeGifteeRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.giftees[id]
	delete(r.giftees, id)
	return ok, nil
}

func (r *fakeGifteeRepo) TotalBudget(_ context.Context, _ uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeSuggestionService struct {
	available   bool
	result      *adapter.BrainstormResult
	err         error
	lastRequest *adapter.BrainstormRequest
	calls       int
}

func (s *fakeSuggestionService) Brainstorm(_ context.Context, request *adapter.BrainstormRequest) (*adapter.BrainstormResult, error) {
	s.calls++
	s.lastRequest = request
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *fakeSuggestionService) IsAvailable() bool {
	return s.available
}

type fakeSuggestionCache struct {
	stored map[entity.GiftScenario]*adapter.BrainstormResult
	getErr error
}

func (c *fakeSuggestionCache) Get(_ context.Context, request *adapter.BrainstormRequest) (*adapter.BrainstormResult, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.stored[request.Scenario], nil
}

func (c *fakeSuggestionCache) Set(_ context.Context, request *adapter.BrainstormRequest, result *adapter.BrainstormResult) error {
	c.stored[request.Scenario] = result
	return nil
}

func newBrainstormFixture(available bool) (*BrainstormGiftsUseCase, *fakeGifteeRepo, *fakeSuggestionService, *fakeSuggestionCache) {
	repo := &fakeGifteeRepo{giftees: make(map[uuid.UUID]*entity.Giftee)}
	service := &fakeSuggestionService{
		available: available,
		result: &adapter.BrainstormResult{
			Ideas: []*entity.SuggestedGift{
				{Title: "Star chart", Description: "Custom night sky print", Rationale: "They love astronomy", PriceRange: "$30-50"},
			},
			CostEstimate: "$0.0012",
			TokensUsed:   1200,
		},
	}
	cache := &fakeSuggestionCache{stored: make(map[entity.GiftScenario]*adapter.BrainstormResult)}
	uc := NewBrainstormGiftsUseCase(repo, service, cache, slog.Default())
	return uc, repo, service, cache
}

func TestBrainstormGiftsUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("successful brainstorm caches the result", func(t *testing.T) {
		uc, repo, service, cache := newBrainstormFixture(true)
		budget := decimal.NewFromInt(100)
		giftee := entity.NewGiftee(userID, "Sam", "Friend", &budget, "Loves astronomy")
		repo.giftees[giftee.ID] = giftee

		output, err := uc.Execute(context.Background(), BrainstormGiftsInput{
			UserID:   userID,
			GifteeID: giftee.ID,
			Scenario: entity.ScenarioGeneral,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Fatal("expected success")
		}
		if output.FromCache {
			t.Error("first call should not come from cache")
		}
		if len(output.Ideas) != 1 || output.Ideas[0].Title != "Star chart" {
			t.Errorf("unexpected ideas: %+v", output.Ideas)
		}
		if output.TokensUsed != 1200 {
			t.Errorf("expected 1200 tokens used, got %d", output.TokensUsed)
		}
		if cache.stored[entity.ScenarioGeneral] == nil {
			t.Error("expected the result to be cached")
		}
		if service.lastRequest.NumIdeas != DefaultIdeaCount {
			t.Errorf("expected default idea count %d, got %d", DefaultIdeaCount, service.lastRequest.NumIdeas)
		}
	})

	t.Run("giftee profile feeds the prompt context", func(t *testing.T) {
		uc, repo, service, _ := newBrainstormFixture(true)
		budget := decimal.NewFromFloat(75.5)
		giftee := entity.NewGiftee(userID, "Sam", "Sister", &budget, "Hiking and tea")
		repo.giftees[giftee.ID] = giftee

		_, err := uc.Execute(context.Background(), BrainstormGiftsInput{
			UserID:   userID,
			GifteeID: giftee.ID,
			Scenario: entity.ScenarioBudget,
			ExtraContext: map[string]string{
				"budget":   "under $20",
				"occasion": "birthday",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := service.lastRequest.Context
		if got["relationship"] != "Sister" {
			t.Errorf("expected relationship from profile, got %q", got["relationship"])
		}
		if got["interests"] != "Hiking and tea" {
			t.Errorf("expected interests from notes, got %q", got["interests"])
		}
		// Caller hints win over profile values on key clashes.
		if got["budget"] != "under $20" {
			t.Errorf("expected caller budget to win, got %q", got["budget"])
		}
		if got["occasion"] != "birthday" {
			t.Errorf("expected occasion hint, got %q", got["occasion"])
		}
	})

	t.Run("cache hit skips the service", func(t *testing.T) {
		uc, repo, service, cache := newBrainstormFixture(true)
		giftee := entity.NewGiftee(userID, "Sam", "", nil, "")
		repo.giftees[giftee.ID] = giftee
		cache.stored[entity.ScenarioGeneral] = &adapter.BrainstormResult{
			Ideas: []*entity.SuggestedGift{{Title: "Cached idea"}},
		}

		output, err := uc.Execute(context.Background(), BrainstormGiftsInput{
			UserID:   userID,
			GifteeID: giftee.ID,
			Scenario: entity.ScenarioGeneral,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.FromCache {
			t.Error("expected a cache hit")
		}
		if service.calls != 0 {
			t.Errorf("expected no service calls, got %d", service.calls)
		}
	})

	t.Run("cache failure degrades to a miss", func(t *testing.T) {
		uc, repo, service, cache := newBrainstormFixture(true)
		cache.getErr = errors.New("redis down")
		giftee := entity.NewGiftee(userID, "Sam", "", nil, "")
		repo.giftees[giftee.ID] = giftee

		output, err := uc.Execute(context.Background(), BrainstormGiftsInput{
			UserID:   userID,
			GifteeID: giftee.ID,
			Scenario: entity.ScenarioGeneral,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success || output.FromCache {
			t.Errorf("expected a fresh successful result, got %+v", output)
		}
		if service.calls != 1 {
			t.Errorf("expected one service call, got %d", service.calls)
		}
	})

	t.Run("service failure returns structured error not a Go error", func(t *testing.T) {
		uc, repo, service, _ := newBrainstormFixture(true)
		service.err = errors.New("HTTP 429: too many requests")
		giftee := entity.NewGiftee(userID, "Sam", "", nil, "")
		repo.giftees[giftee.ID] = giftee

		output, err := uc.Execute(context.Background(), BrainstormGiftsInput{
			UserID:   userID,
			GifteeID: giftee.ID,
			Scenario: entity.ScenarioGeneral,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Success {
			t.Fatal("expected failure output")
		}
		if output.Error == nil || output.Error.Code != ErrCodeAIRateLimited {
			t.Errorf("expected rate-limited error, got %+v", output.Error)
		}
		if !output.Error.Retryable {
			t.Error("expected a retryable error")
		}
	})

	t.Run("invalid scenario", func(t *testing.T) {
		uc, repo, _, _ := newBrainstormFixture(true)
		giftee := entity.NewGiftee(userID, "Sam", "", nil, "")
		repo.giftees[giftee.ID] = giftee

		_, err := uc.Execute(context.Background(), BrainstormGiftsInput{
			UserID:   userID,
			GifteeID: giftee.ID,
			Scenario: entity.GiftScenario("romantic"),
		})
		if !errors.Is(err, domainerror.ErrInvalidScenario) {
			t.Errorf("expected ErrInvalidScenario, got %v", err)
		}
	})

	t.Run("idea count out of range", func(t *testing.T) {
		uc, repo, _, _ := newBrainstormFixture(true)
		giftee := entity.NewGiftee(userID, "Sam", "", nil, "")
		repo.giftees[giftee.ID] = giftee

		for _, count := range []int{0, MaxIdeaCount + 1} {
			n := count
			_, err := uc.Execute(context.Background(), BrainstormGiftsInput{
				UserID:   userID,
				GifteeID: giftee.ID,
				Scenario: entity.ScenarioGeneral,
				NumIdeas: &n,
			})
			if !errors.Is(err, domainerror.ErrInvalidIdeaCount) {
				t.Errorf("count %d: expected ErrInvalidIdeaCount, got %v", count, err)
			}
		}
	})

	t.Run("giftee owned by another user", func(t *testing.T) {
		uc, repo, _, _ := newBrainstormFixture(true)
		giftee := entity.NewGiftee(uuid.New(), "Sam", "", nil, "")
		repo.giftees[giftee.ID] = giftee

		_, err := uc.Execute(context.Background(), BrainstormGiftsInput{
			UserID:   userID,
			GifteeID: giftee.ID,
			Scenario: entity.ScenarioGeneral,
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedGifteeAccess) {
			t.Errorf("expected ErrUnauthorizedGifteeAccess, got %v", err)
		}
	})

	t.Run("giftee not found", func(t *testing.T) {
		uc, _, _, _ := newBrainstormFixture(true)

		_, err := uc.Execute(context.Background(), BrainstormGiftsInput{
			UserID:   userID,
			GifteeID: uuid.New(),
			Scenario: entity.ScenarioGeneral,
		})
		if !errors.Is(err, domainerror.ErrGifteeNotFound) {
			t.Errorf("expected ErrGifteeNotFound, got %v", err)
		}
	})

	t.Run("service not configured", func(t *testing.T) {
		uc, repo, _, _ := newBrainstormFixture(false)
		giftee := entity.NewGiftee(userID, "Sam", "", nil, "")
		repo.giftees[giftee.ID] = giftee

		_, err := uc.Execute(context.Background(), BrainstormGiftsInput{
			UserID:   userID,
			GifteeID: giftee.ID,
			Scenario: entity.ScenarioGeneral,
		})
		if !errors.Is(err, domainerror.ErrSuggestionUnavailable) {
			t.Errorf("expected ErrSuggestionUnavailable, got %v", err)
		}
	})
}
