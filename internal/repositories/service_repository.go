package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

// ServiceRepository is the read interface the quiz recommender depends on:
// FindAll returns the whole catalog and all filtering happens in the
// recommender. An empty result with a nil error means "catalog not seeded",
// which callers treat differently from a storage failure.
type ServiceRepository interface {
	FindAll(ctx context.Context) ([]db_models.Service, error)
	FindByID(ctx context.Context, id string) (*db_models.Service, error)
	Insert(ctx context.Context, service *db_models.Service) error
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]db_models.Service, error) {
	var services []db_models.Service
	if err := r.db.WithContext(ctx).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id string) (*db_models.Service, error) {
	var service db_models.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Insert(ctx context.Context, service *db_models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}
