package repositories

import (
	"context"
	"gorm.io/gorm"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

type ContactRepository interface {
	Insert(ctx context.Context, contact *db_models.Contact) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Insert(ctx context.Context, contact *db_models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}
