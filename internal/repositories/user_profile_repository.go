package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

type UserProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*db_models.UserProfile, error)
	Insert(ctx context.Context, profile *db_models.UserProfile) error
	Save(ctx context.Context, profile *db_models.UserProfile) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) FindByUserID(ctx context.Context, userID string) (*db_models.UserProfile, error) {
	var profile db_models.UserProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Insert(ctx context.Context, profile *db_models.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *userProfileRepository) Save(ctx context.Context, profile *db_models.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
