package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type fakeNewsletterRepo struct {
	subs map[string]*db_models.NewsletterSubscription
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{subs: make(map[string]*db_models.NewsletterSubscription)}
}

func (f *fakeNewsletterRepo) FindByEmail(ctx context.Context, email string) (*db_models.NewsletterSubscription, error) {
	return f.subs[email], nil
}

func (f *fakeNewsletterRepo) Insert(ctx context.Context, sub *db_models.NewsletterSubscription) error {
	f.subs[sub.Email] = sub
	return nil
}

func (f *fakeNewsletterRepo) Save(ctx context.Context, sub *db_models.NewsletterSubscription) error {
	f.subs[sub.Email] = sub
	return nil
}

func TestNewsletterSubscribeIsIdempotent(t *testing.T) {
	repo := newFakeNewsletterRepo()
	service := NewNewsletterService(repo).(*NewsletterService)
	service.now = func() time.Time { return time.Unix(1700000000, 0) }

	if err := service.Subscribe(context.Background(), "Soul@Example.com", ""); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	sub := repo.subs["soul@example.com"]
	if sub == nil {
		t.Fatal("email not normalized to lowercase")
	}
	if !sub.IsSubscribed || sub.SubscribedAt != 1700000000 {
		t.Errorf("sub = %+v", sub)
	}

	if err := service.Subscribe(context.Background(), "soul@example.com", ""); err != nil {
		t.Errorf("repeat Subscribe: %v", err)
	}
	if len(repo.subs) != 1 {
		t.Errorf("repeat subscribe created %d rows", len(repo.subs))
	}
}

func TestNewsletterResubscribeAfterUnsubscribe(t *testing.T) {
	repo := newFakeNewsletterRepo()
	service := NewNewsletterService(repo).(*NewsletterService)
	service.now = func() time.Time { return time.Unix(1700000000, 0) }

	if err := service.Subscribe(context.Background(), "soul@example.com", ""); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := service.Unsubscribe(context.Background(), "soul@example.com"); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}

	sub := repo.subs["soul@example.com"]
	if sub.IsSubscribed || sub.UnsubscribedAt == 0 {
		t.Errorf("after unsubscribe: %+v", sub)
	}

	if err := service.Subscribe(context.Background(), "soul@example.com", "user-9"); err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	sub = repo.subs["soul@example.com"]
	if !sub.IsSubscribed || sub.UnsubscribedAt != 0 || sub.UserID != "user-9" {
		t.Errorf("after resubscribe: %+v", sub)
	}
}

func TestNewsletterUnsubscribeUnknownEmail(t *testing.T) {
	service := NewNewsletterService(newFakeNewsletterRepo())

	err := service.Unsubscribe(context.Background(), "ghost@example.com")
	if !errors.Is(err, utils.ErrNotSubscribed) {
		t.Errorf("err = %v, want ErrNotSubscribed", err)
	}
}
