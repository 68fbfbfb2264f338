package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

type AuditRepository interface {
	Insert(ctx context.Context, entry *db_models.AuditLog) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Insert(ctx context.Context, entry *db_models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Delete(&db_models.AuditLog{}, "created_at < ?", cutoff.Unix())
	return result.RowsAffected, result.Error
}
