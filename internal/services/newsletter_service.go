package services

import (
	"context"
	"strings"
	"time"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type NewsletterServiceInterface interface {
	Subscribe(ctx context.Context, email string, userID string) error
	Unsubscribe(ctx context.Context, email string) error
}

type NewsletterService struct {
	newsletterRepo repositories.NewsletterRepository
	now            func() time.Time
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository) NewsletterServiceInterface {
	return &NewsletterService{
		newsletterRepo: newsletterRepo,
		now:            time.Now,
	}
}

// Subscribe is idempotent. Resubscribing an unsubscribed email flips it back
// to subscribed; subscribing an already-subscribed email is a no-op.
func (n *NewsletterService) Subscribe(ctx context.Context, email string, userID string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	sub, err := n.newsletterRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if sub == nil {
		sub = &db_models.NewsletterSubscription{
			Email:        email,
			IsSubscribed: true,
			UserID:       userID,
			SubscribedAt: n.now().Unix(),
		}
		if err := n.newsletterRepo.Insert(ctx, sub); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	}

	if sub.IsSubscribed {
		return nil
	}

	sub.IsSubscribed = true
	sub.SubscribedAt = n.now().Unix()
	sub.UnsubscribedAt = 0
	if userID != "" {
		sub.UserID = userID
	}
	if err := n.newsletterRepo.Save(ctx, sub); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (n *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	sub, err := n.newsletterRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil || !sub.IsSubscribed {
		return utils.ErrNotSubscribed
	}

	sub.IsSubscribed = false
	sub.UnsubscribedAt = n.now().Unix()
	if err := n.newsletterRepo.Save(ctx, sub); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
