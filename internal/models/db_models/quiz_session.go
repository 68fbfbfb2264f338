package db_models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// QuizResponses is the normalized form of a quiz submission. Every field is
// drawn from a closed vocabulary; free text never reaches storage.
type QuizResponses struct {
	EnergyType           string   `json:"energyType"`
	BalanceActivities    []string `json:"balanceActivities"`
	BudgetPreference     string   `json:"budgetPreference"`
	TimeAvailability     string   `json:"timeAvailability"`
	SessionPreference    string   `json:"sessionPreference"`
	PractitionerInterest string   `json:"practitionerInterest"`
	ProductInterest      bool     `json:"productInterest"`
	CurrentChallenge     string   `json:"currentChallenge"`
}

// ServiceRecommendation is the projection of a catalog service returned to
// quiz takers. Price may be clamped to the caller's budget tier; the catalog
// row itself is never touched.
type ServiceRecommendation struct {
	ServiceID        string  `json:"serviceId"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Description      string  `json:"description"`
	PractitionerType string  `json:"practitionerType"`
	Image            string  `json:"image"`
}

type ProductRecommendation struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ProductURL  string  `json:"productUrl"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

type PodcastRecommendation struct {
	PodcastID   string `json:"podcastId"`
	Title       string `json:"title"`
	Episode     string `json:"episode"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Image       string `json:"image"`
}

type RecommendationBundle struct {
	Services []ServiceRecommendation `json:"services"`
	Products []ProductRecommendation `json:"products"`
	Podcasts []PodcastRecommendation `json:"podcasts"`
}

type PriorityArea struct {
	Area     string `json:"area"`
	Priority int    `json:"priority"`
}

type WellnessInsights struct {
	WellnessProfile     string         `json:"wellnessProfile"`
	RecommendedApproach string         `json:"recommendedApproach"`
	PriorityAreas       []PriorityArea `json:"priorityAreas"`
}

type SessionMetadata struct {
	QuizVersion    string    `json:"quizVersion"`
	CompletionTime int       `json:"completionTime"` // seconds
	DeviceType     string    `json:"deviceType"`
	BrowserType    string    `json:"browserType"`
	IPCountry      string    `json:"ipCountry"`
	Timestamp      time.Time `json:"timestamp"`
	// Fingerprint is written once at creation and never updated.
	SessionFingerprint string `json:"sessionFingerprint,omitempty"`
}

type QuestionTiming struct {
	QuestionID string `json:"questionId"`
	TimeSpent  int    `json:"timeSpent"`
}

type SessionAnalytics struct {
	TimeSpentOnEachQuestion []QuestionTiming `json:"timeSpentOnEachQuestion"`
	QuestionsSkipped        []string         `json:"questionsSkipped"`
	TotalQuestionsAnswered  int              `json:"totalQuestionsAnswered"`
}

// AnonymousQuizSession bundles one quiz run: normalized answers, the
// generated recommendations, derived insights and anonymous metadata. It is
// keyed by a random hex token and carries no user reference.
type AnonymousQuizSession struct {
	BaseModel
	SessionID       string               `gorm:"uniqueIndex;size:128"`
	Responses       QuizResponses        `gorm:"serializer:json"`
	Recommendations RecommendationBundle `gorm:"serializer:json"`
	Insights        WellnessInsights     `gorm:"serializer:json"`
	Metadata        SessionMetadata      `gorm:"serializer:json"`
	Analytics       SessionAnalytics     `gorm:"serializer:json"`
}

// BeforeCreate seals a session fingerprint into the metadata. First write
// wins: a fingerprint supplied by the caller is kept as-is.
func (s *AnonymousQuizSession) BeforeCreate(tx *gorm.DB) error {
	if err := s.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if s.Metadata.SessionFingerprint == "" {
		s.Metadata.SessionFingerprint = s.fingerprint()
	}
	return nil
}

func (s *AnonymousQuizSession) fingerprint() string {
	data, _ := json.Marshal(map[string]interface{}{
		"deviceType":  s.Metadata.DeviceType,
		"browserType": s.Metadata.BrowserType,
		"ipCountry":   s.Metadata.IPCountry,
		"timestamp":   s.Metadata.Timestamp,
	})
	return string(data)
}
