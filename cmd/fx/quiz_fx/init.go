package quiz_fx

import (
	"go.uber.org/fx"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/infra"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
)

var Module = fx.Provide(
	provideQuizService, provideQuizRecommender, provideQuizSessionRepo)

func provideQuizSessionRepo(dbs *infra.Databases) repositories.QuizSessionRepository {
	return repositories.NewQuizSessionRepository(dbs.Catalog)
}

func provideQuizRecommender(
	serviceRepo repositories.ServiceRepository,
	productRepo repositories.ProductRepository,
	podcastRepo repositories.PodcastRepository,
) *services.QuizRecommender {
	return services.NewQuizRecommender(serviceRepo, productRepo, podcastRepo)
}

func provideQuizService(
	sessionRepo repositories.QuizSessionRepository,
	recommendationRepo repositories.RecommendationRepository,
	recommender *services.QuizRecommender,
	audit services.AuditServiceInterface,
) services.QuizServiceInterface {
	return services.NewQuizService(sessionRepo, recommendationRepo, recommender, audit)
}
