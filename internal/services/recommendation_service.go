package services

import (
	"context"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/response_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

const recommendationHistoryLimit = 10

type RecommendationServiceInterface interface {
	GetLatest(ctx context.Context, userID string) (*response_models.UserRecommendationsResponse, error)
	GetHistory(ctx context.Context, userID string) ([]response_models.RecommendationHistoryEntry, error)
}

type RecommendationService struct {
	recommendationRepo repositories.RecommendationRepository
}

func NewRecommendationService(recommendationRepo repositories.RecommendationRepository) RecommendationServiceInterface {
	return &RecommendationService{
		recommendationRepo: recommendationRepo,
	}
}

// GetLatest returns the most recent stored bundle. A user with no stored
// recommendations gets an empty bundle, not an error, so the frontend can
// render the "take the quiz" state without special-casing a 404.
func (r *RecommendationService) GetLatest(ctx context.Context, userID string) (*response_models.UserRecommendationsResponse, error) {
	record, err := r.recommendationRepo.FindLatestByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.UserRecommendationsResponse{
		Recommendations: db_models.RecommendationBundle{
			Services: []db_models.ServiceRecommendation{},
			Products: []db_models.ProductRecommendation{},
			Podcasts: []db_models.PodcastRecommendation{},
		},
	}
	if record != nil {
		resp.Recommendations = record.Recommendations
	}
	return resp, nil
}

func (r *RecommendationService) GetHistory(ctx context.Context, userID string) ([]response_models.RecommendationHistoryEntry, error) {
	records, err := r.recommendationRepo.ListByUserID(ctx, userID, recommendationHistoryLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.RecommendationHistoryEntry, 0, len(records))
	for _, record := range records {
		out = append(out, response_models.RecommendationHistoryEntry{
			ID:            record.ID.String(),
			CreatedAt:     record.CreatedAt,
			ServicesCount: len(record.Recommendations.Services),
			ProductsCount: len(record.Recommendations.Products),
			PodcastsCount: len(record.Recommendations.Podcasts),
		})
	}
	return out, nil
}
