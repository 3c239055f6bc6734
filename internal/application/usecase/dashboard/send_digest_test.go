// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
	domainerror "github.com/gift-tracker/backend/internal/domain/error"
)

// memUserRepo is an in-memory UserRepository for use case tests.
type memUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(context.Background(), email)
	return err == nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.users[id]
	delete(r.users, id)
	return ok, nil
}

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

// memEmailService records queued digest inputs for assertions.
type memEmailService struct {
	digests []adapter.QueueProgressDigestInput
}

func (s *memEmailService) QueuePasswordResetEmail(_ context.Context, _ adapter.QueuePasswordResetInput) error {
	return nil
}

func (s *memEmailService) QueueProgressDigestEmail(_ context.Context, input adapter.QueueProgressDigestInput) error {
	s.digests = append(s.digests, input)
	return nil
}

func TestSendDigestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	setup := func() (*SendDigestUseCase, *memUserRepo, *memGifteeRepo, *memGiftRepo, *memEmailService) {
		userRepo := newMemUserRepo()
		gifteeRepo := newMemGifteeRepo()
		giftRepo := newMemGiftRepo()
		emails := &memEmailService{}
		uc := NewSendDigestUseCase(userRepo, gifteeRepo, giftRepo, emails)
		return uc, userRepo, gifteeRepo, giftRepo, emails
	}

	t.Run("queues one digest with per-giftee progress lines", func(t *testing.T) {
		uc, userRepo, gifteeRepo, giftRepo, emails := setup()

		user := entity.NewUser("jamie@example.com", "Jamie", "hash")
		_ = userRepo.Create(ctx, user)

		budget := decimal.NewFromInt(100)
		mom := entity.NewGiftee(user.ID, "Mom", "parent", &budget, "")
		alex := entity.NewGiftee(user.ID, "Alex", "friend", nil, "")
		_ = gifteeRepo.Create(ctx, mom)
		_ = gifteeRepo.Create(ctx, alex)

		price := decimal.NewFromInt(40)
		_ = giftRepo.Create(ctx, entity.NewGiftIdea(mom.ID, "Scarf", "", "", &price, 1, entity.GiftStatusGiven))
		_ = giftRepo.Create(ctx, entity.NewGiftIdea(mom.ID, "Candle", "", "", nil, 2, entity.GiftStatusConsidering))
		_ = giftRepo.Create(ctx, entity.NewGiftIdea(alex.ID, "Board game", "", "", nil, 1, entity.GiftStatusAcquired))

		if err := uc.Execute(ctx, SendDigestInput{UserID: user.ID}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}

		if len(emails.digests) != 1 {
			t.Fatalf("expected 1 queued digest, got %d", len(emails.digests))
		}
		digest := emails.digests[0]
		if digest.UserEmail != "jamie@example.com" || digest.UserName != "Jamie" {
			t.Errorf("unexpected recipient: %s / %s", digest.UserEmail, digest.UserName)
		}
		if len(digest.Giftees) != 2 {
			t.Fatalf("expected 2 giftee lines, got %d", len(digest.Giftees))
		}

		momLine := digest.Giftees[0]
		if momLine.Name != "Mom" {
			t.Fatalf("expected Mom first, got %s", momLine.Name)
		}
		if momLine.Total != 2 || momLine.Acquired != 1 || momLine.Given != 1 {
			t.Errorf("unexpected Mom progress: %+v", momLine)
		}
		if momLine.Percentage != 50 {
			t.Errorf("expected Mom at 50%%, got %v", momLine.Percentage)
		}

		alexLine := digest.Giftees[1]
		if alexLine.Acquired != 1 || alexLine.Given != 0 {
			t.Errorf("unexpected Alex progress: %+v", alexLine)
		}
	})

	t.Run("user with no giftees still gets a digest", func(t *testing.T) {
		uc, userRepo, _, _, emails := setup()

		user := entity.NewUser("sam@example.com", "Sam", "hash")
		_ = userRepo.Create(ctx, user)

		if err := uc.Execute(ctx, SendDigestInput{UserID: user.ID}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if len(emails.digests) != 1 {
			t.Fatalf("expected 1 queued digest, got %d", len(emails.digests))
		}
		if len(emails.digests[0].Giftees) != 0 {
			t.Errorf("expected empty giftee list, got %d lines", len(emails.digests[0].Giftees))
		}
	})

	t.Run("unknown user fails without queueing", func(t *testing.T) {
		uc, _, _, _, emails := setup()

		err := uc.Execute(ctx, SendDigestInput{UserID: uuid.New()})
		if err == nil {
			t.Fatal("expected error for unknown user")
		}
		if !strings.Contains(err.Error(), "failed to look up user") {
			t.Errorf("unexpected error: %v", err)
		}
		if len(emails.digests) != 0 {
			t.Errorf("expected no queued digests, got %d", len(emails.digests))
		}
	})
}
