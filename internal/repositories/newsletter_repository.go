package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

type NewsletterRepository interface {
	FindByEmail(ctx context.Context, email string) (*db_models.NewsletterSubscription, error)
	Insert(ctx context.Context, sub *db_models.NewsletterSubscription) error
	Save(ctx context.Context, sub *db_models.NewsletterSubscription) error
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) FindByEmail(ctx context.Context, email string) (*db_models.NewsletterSubscription, error) {
	var sub db_models.NewsletterSubscription
	err := r.db.WithContext(ctx).First(&sub, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *newsletterRepository) Insert(ctx context.Context, sub *db_models.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *newsletterRepository) Save(ctx context.Context, sub *db_models.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}
