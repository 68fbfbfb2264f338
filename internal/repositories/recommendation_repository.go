package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

type RecommendationRepository interface {
	// Append stores a new recommendation record; history is never rewritten.
	Append(ctx context.Context, record *db_models.Recommendation) error
	FindLatestByUserID(ctx context.Context, userID string) (*db_models.Recommendation, error)
	ListByUserID(ctx context.Context, userID string, limit int) ([]db_models.Recommendation, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Append(ctx context.Context, record *db_models.Recommendation) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *recommendationRepository) FindLatestByUserID(ctx context.Context, userID string) (*db_models.Recommendation, error) {
	var record db_models.Recommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *recommendationRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]db_models.Recommendation, error) {
	var records []db_models.Recommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
