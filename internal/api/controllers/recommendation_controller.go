package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// Latest godoc
// @Summary Latest stored recommendations for the caller
// @Tags Recommendations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /recommendations [get]
func (r *RecommendationController) Latest(c *gin.Context) {
	userID := c.GetString("user_id")

	resp, err := r.recommendationService.GetLatest(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Recommendations retrieved successfully")
}

func (r *RecommendationController) History(c *gin.Context) {
	userID := c.GetString("user_id")

	history, err := r.recommendationService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "Recommendation history retrieved successfully")
}
