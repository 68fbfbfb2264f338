package recommendation_fx

import (
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/infra"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
)

var Module = fx.Provide(
	provideRecommendationService, provideRecommendationRepo)

func provideRecommendationRepo(dbs *infra.Databases) repositories.RecommendationRepository {
	return repositories.NewRecommendationRepository(dbs.User)
}

func provideRecommendationService(recommendationRepo repositories.RecommendationRepository) services.RecommendationServiceInterface {
	return services.NewRecommendationService(recommendationRepo)
}
