package response_models

import "github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"

type UserRecommendationsResponse struct {
	Recommendations db_models.RecommendationBundle `json:"recommendations"`
}

type RecommendationHistoryEntry struct {
	ID            string `json:"id"`
	CreatedAt     int64  `json:"createdAt"`
	ServicesCount int    `json:"servicesCount"`
	ProductsCount int    `json:"productsCount"`
	PodcastsCount int    `json:"podcastsCount"`
}
