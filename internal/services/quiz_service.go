package services

import (
	"context"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/response_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

const quizVersion = "1.0"

type QuizServiceInterface interface {
	// SubmitQuiz runs the whole pipeline: normalize, derive, recommend,
	// persist an anonymous session, and, for an authenticated caller,
	// best-effort persist the bundle under their identity. userID may be
	// empty for anonymous submissions.
	SubmitQuiz(ctx context.Context, req request_models.QuizSubmissionRequest, device request_models.DeviceInfo, userID string) (*response_models.QuizSubmissionResponse, error)
	GetResults(ctx context.Context, sessionID string) (*response_models.QuizResultsResponse, error)
	GetAnalytics(ctx context.Context, start, end *time.Time) (*response_models.QuizAnalytics, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type QuizService struct {
	sessionRepo        repositories.QuizSessionRepository
	recommendationRepo repositories.RecommendationRepository
	recommender        *QuizRecommender
	audit              AuditServiceInterface
	pick               func(n int) int
}

func NewQuizService(
	sessionRepo repositories.QuizSessionRepository,
	recommendationRepo repositories.RecommendationRepository,
	recommender *QuizRecommender,
	audit AuditServiceInterface,
) QuizServiceInterface {
	return &QuizService{
		sessionRepo:        sessionRepo,
		recommendationRepo: recommendationRepo,
		recommender:        recommender,
		audit:              audit,
		pick:               rand.Intn,
	}
}

func (q *QuizService) SubmitQuiz(ctx context.Context, req request_models.QuizSubmissionRequest, device request_models.DeviceInfo, userID string) (*response_models.QuizSubmissionResponse, error) {
	sessionID, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	astrology := CalculateAstrology(req.DateOfBirth, req.BirthTime)
	humanDesign := CalculateHumanDesign(req, q.pick)

	services, err := q.recommender.RecommendServices(ctx, req)
	if err != nil {
		return nil, err
	}
	products, err := q.recommender.RecommendProducts(ctx, req)
	if err != nil {
		return nil, err
	}

	responses := NormalizeQuizResponses(req)

	podcasts, err := q.recommender.RecommendPodcasts(ctx, responses.CurrentChallenge)
	if err != nil {
		return nil, err
	}

	session := &db_models.AnonymousQuizSession{
		SessionID: sessionID,
		Responses: responses,
		Recommendations: db_models.RecommendationBundle{
			Services: services,
			Products: products,
			Podcasts: podcasts,
		},
		Insights: DeriveInsights(req),
		Metadata: db_models.SessionMetadata{
			QuizVersion:    quizVersion,
			CompletionTime: req.CompletionTime,
			DeviceType:     deviceOrDefault(device.DeviceType, "desktop"),
			BrowserType:    deviceOrDefault(device.BrowserType, "unknown"),
			IPCountry:      deviceOrDefault(device.IPCountry, "unknown"),
			Timestamp:      time.Now(),
		},
		Analytics: sessionAnalytics(req),
	}

	if err := q.sessionRepo.Insert(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	nonprofit := response_models.Nonprofit{
		Eligible: req.EligibleNonprofit == "Yes",
		ApplyURL: "/apply/nonprofit-support",
		Message:  "You may qualify for free or subsidized wellness services. Apply now to learn more.",
	}

	result := response_models.QuizResults{
		Services:    services,
		Products:    products,
		Podcasts:    podcasts,
		Astrology:   astrology,
		HumanDesign: humanDesign,
		Nonprofit:   nonprofit,
	}

	if userID != "" {
		// Best-effort side write: the caller already has their session and
		// results, so a failure here is logged and swallowed.
		record := &db_models.Recommendation{
			UserID:          userID,
			Recommendations: session.Recommendations,
		}
		if err := q.recommendationRepo.Append(ctx, record); err != nil {
			log.Printf("Error storing recommendations for user %s: %v", userID, err)
		}
	}

	q.audit.Record(ctx, db_models.AuditLog{
		UserID:    userID,
		SessionID: sessionID,
		Action:    "QUIZ_SUBMIT",
		Resource:  "ANONYMOUS_QUIZ",
		Country:   device.IPCountry,
	})

	return &response_models.QuizSubmissionResponse{
		SessionID:             sessionID,
		Results:               result,
		RecommendationsStored: userID != "",
	}, nil
}

func (q *QuizService) GetResults(ctx context.Context, sessionID string) (*response_models.QuizResultsResponse, error) {
	session, err := q.sessionRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	return &response_models.QuizResultsResponse{
		SessionID: session.SessionID,
		Results: response_models.StoredQuizResults{
			Services: session.Recommendations.Services,
			Products: session.Recommendations.Products,
			Podcasts: session.Recommendations.Podcasts,
			Insights: session.Insights,
		},
		Timestamp: session.Metadata.Timestamp,
	}, nil
}

func (q *QuizService) GetAnalytics(ctx context.Context, start, end *time.Time) (*response_models.QuizAnalytics, error) {
	sessions, err := q.sessionRepo.ListByTimestampRange(ctx, start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	analytics := &response_models.QuizAnalytics{
		MostCommonChallenge: []response_models.ChallengeCount{},
		MostCommonProfile:   []response_models.ProfileCount{},
		DeviceTypes:         []string{},
	}
	if len(sessions) == 0 {
		return analytics, nil
	}

	challengeCounts := make(map[string]int)
	profileCounts := make(map[string]int)
	deviceSeen := make(map[string]bool)
	totalCompletion := 0

	for _, session := range sessions {
		challengeCounts[session.Responses.CurrentChallenge]++
		profileCounts[session.Insights.WellnessProfile]++
		totalCompletion += session.Metadata.CompletionTime
		if !deviceSeen[session.Metadata.DeviceType] {
			deviceSeen[session.Metadata.DeviceType] = true
			analytics.DeviceTypes = append(analytics.DeviceTypes, session.Metadata.DeviceType)
		}
	}

	analytics.TotalSessions = len(sessions)
	analytics.AvgCompletionTime = int(float64(totalCompletion)/float64(len(sessions)) + 0.5)

	for challenge, count := range challengeCounts {
		analytics.MostCommonChallenge = append(analytics.MostCommonChallenge, response_models.ChallengeCount{
			Challenge: challenge,
			Count:     count,
		})
	}
	sort.Slice(analytics.MostCommonChallenge, func(i, j int) bool {
		a, b := analytics.MostCommonChallenge[i], analytics.MostCommonChallenge[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Challenge < b.Challenge
	})
	if len(analytics.MostCommonChallenge) > 3 {
		analytics.MostCommonChallenge = analytics.MostCommonChallenge[:3]
	}

	for profile, count := range profileCounts {
		analytics.MostCommonProfile = append(analytics.MostCommonProfile, response_models.ProfileCount{
			Profile: profile,
			Count:   count,
		})
	}
	sort.Slice(analytics.MostCommonProfile, func(i, j int) bool {
		a, b := analytics.MostCommonProfile[i], analytics.MostCommonProfile[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Profile < b.Profile
	})
	if len(analytics.MostCommonProfile) > 3 {
		analytics.MostCommonProfile = analytics.MostCommonProfile[:3]
	}

	return analytics, nil
}

func (q *QuizService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := q.sessionRepo.DeleteBySessionID(ctx, sessionID); err != nil {
		// Deleting an unknown token reads as not-found, anything else is a
		// storage failure.
		session, lookupErr := q.sessionRepo.FindBySessionID(ctx, sessionID)
		if lookupErr == nil && session == nil {
			return utils.ErrSessionNotFound
		}
		return utils.ErrDatabaseError
	}

	q.audit.Record(ctx, db_models.AuditLog{
		SessionID: sessionID,
		Action:    "DELETE",
		Resource:  "ANONYMOUS_QUIZ",
	})
	return nil
}

func deviceOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func sessionAnalytics(req request_models.QuizSubmissionRequest) db_models.SessionAnalytics {
	timings := make([]db_models.QuestionTiming, 0, len(req.TimeSpentOnQuestions))
	for _, timing := range req.TimeSpentOnQuestions {
		timings = append(timings, db_models.QuestionTiming{
			QuestionID: timing.QuestionID,
			TimeSpent:  timing.TimeSpent,
		})
	}

	skipped := req.SkippedQuestions
	if skipped == nil {
		skipped = []string{}
	}

	return db_models.SessionAnalytics{
		TimeSpentOnEachQuestion: timings,
		QuestionsSkipped:        skipped,
		TotalQuestionsAnswered:  req.TotalQuestions,
	}
}
