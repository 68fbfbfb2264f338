package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

type PodcastRepository interface {
	FindAll(ctx context.Context) ([]db_models.Podcast, error)
	FindByID(ctx context.Context, id string) (*db_models.Podcast, error)
	Insert(ctx context.Context, podcast *db_models.Podcast) error
}

type podcastRepository struct {
	db *gorm.DB
}

func NewPodcastRepository(db *gorm.DB) PodcastRepository {
	return &podcastRepository{db: db}
}

func (r *podcastRepository) FindAll(ctx context.Context) ([]db_models.Podcast, error) {
	var podcasts []db_models.Podcast
	if err := r.db.WithContext(ctx).Find(&podcasts).Error; err != nil {
		return nil, err
	}
	return podcasts, nil
}

func (r *podcastRepository) FindByID(ctx context.Context, id string) (*db_models.Podcast, error) {
	var podcast db_models.Podcast
	err := r.db.WithContext(ctx).First(&podcast, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &podcast, nil
}

func (r *podcastRepository) Insert(ctx context.Context, podcast *db_models.Podcast) error {
	return r.db.WithContext(ctx).Create(podcast).Error
}
