package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

func deviceInfoFrom(c *gin.Context) request_models.DeviceInfo {
	userAgent := c.GetHeader("User-Agent")
	return request_models.DeviceInfo{
		DeviceType:  utils.DeviceTypeFrom(userAgent),
		BrowserType: utils.BrowserTypeFrom(userAgent),
		IPCountry:   c.GetHeader("CF-IPCountry"),
	}
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Process quiz answers and return personalized recommendations
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.QuizSubmissionRequest true "Quiz answers"
// @Success 200 {object} utils.APIResponse
// @Router /quiz/submit [post]
func (q *QuizController) Submit(c *gin.Context) {
	var req request_models.QuizSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	resp, err := q.quizService.SubmitQuiz(c.Request.Context(), req, deviceInfoFrom(c), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Quiz processed successfully")
}

// Results godoc
// @Summary Fetch stored quiz results
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session token"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /quiz/results/{sessionId} [get]
func (q *QuizController) Results(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session id is required")
		return
	}

	resp, err := q.quizService.GetResults(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Results retrieved successfully")
}

// Analytics godoc
// @Summary Aggregate quiz analytics
// @Description Anonymous aggregates over stored sessions, admin only
// @Tags Quiz
// @Produce json
// @Param startDate query string false "Inclusive lower bound (2006-01-02)"
// @Param endDate query string false "Inclusive upper bound (2006-01-02)"
// @Success 200 {object} utils.APIResponse
// @Router /quiz/analytics [get]
func (q *QuizController) Analytics(c *gin.Context) {
	var query request_models.AnalyticsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	var start, end *time.Time
	if query.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid startDate")
			return
		}
		start = &parsed
	}
	if query.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid endDate")
			return
		}
		// Make the upper bound inclusive of the whole day.
		parsed = parsed.Add(24*time.Hour - time.Second)
		end = &parsed
	}

	resp, err := q.quizService.GetAnalytics(c.Request.Context(), start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Analytics retrieved successfully")
}

// DeleteSession godoc
// @Summary Delete an anonymous quiz session
// @Tags Quiz
// @Param sessionId path string true "Session token"
// @Success 200 {object} utils.APIResponse
// @Router /quiz/session/{sessionId} [delete]
func (q *QuizController) DeleteSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session id is required")
		return
	}

	if err := q.quizService.DeleteSession(c.Request.Context(), sessionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Session deleted successfully")
}

// Health reports quiz pipeline liveness.
func (q *QuizController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "ok", "service": "quiz"}, "Healthy")
}
