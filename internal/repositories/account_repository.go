package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindByID(ctx context.Context, id string) (*db_models.Account, error)
	UpdatePasswordByEmail(ctx context.Context, email string, passwordHash string) error
	TouchLastLogin(ctx context.Context, id string, at int64) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// ────────────────────────────────────────────────────────────────
// Read helpers return a nil model with nil error when no row exists.
// ────────────────────────────────────────────────────────────────

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) UpdatePasswordByEmail(ctx context.Context, email string, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}

func (r *accountRepository) TouchLastLogin(ctx context.Context, id string, at int64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}
