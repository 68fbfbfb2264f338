package response_models

import (
	"time"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

type Astrology struct {
	SunSign    string `json:"sunSign"`
	MoonSign   string `json:"moonSign"`
	RisingSign string `json:"risingSign"`
}

type HumanDesign struct {
	EnergyType string `json:"energyType"`
	Strategy   string `json:"strategy"`
	Authority  string `json:"authority"`
}

type Nonprofit struct {
	Eligible bool   `json:"eligible"`
	ApplyURL string `json:"applyUrl,omitempty"`
	Message  string `json:"message,omitempty"`
}

// QuizResults is the full payload returned synchronously from a submission
// and replayed later by session token.
type QuizResults struct {
	Services    []db_models.ServiceRecommendation `json:"services"`
	Products    []db_models.ProductRecommendation `json:"products"`
	Podcasts    []db_models.PodcastRecommendation `json:"podcasts"`
	Astrology   Astrology                         `json:"astrology"`
	HumanDesign HumanDesign                       `json:"humanDesign"`
	Nonprofit   Nonprofit                         `json:"nonprofit"`
}

type QuizSubmissionResponse struct {
	SessionID             string      `json:"sessionId"`
	Results               QuizResults `json:"results"`
	RecommendationsStored bool        `json:"recommendationsStored"`
}

type StoredQuizResults struct {
	Services []db_models.ServiceRecommendation `json:"services"`
	Products []db_models.ProductRecommendation `json:"products"`
	Podcasts []db_models.PodcastRecommendation `json:"podcasts"`
	Insights db_models.WellnessInsights        `json:"insights"`
}

type QuizResultsResponse struct {
	SessionID string            `json:"sessionId"`
	Results   StoredQuizResults `json:"results"`
	Timestamp time.Time         `json:"timestamp"`
}
