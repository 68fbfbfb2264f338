package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type NewsletterController struct {
	newsletterService services.NewsletterServiceInterface
}

func NewNewsletterController(newsletterService services.NewsletterServiceInterface) *NewsletterController {
	return &NewsletterController{
		newsletterService: newsletterService,
	}
}

func (n *NewsletterController) Subscribe(c *gin.Context) {
	var req request_models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := n.newsletterService.Subscribe(c.Request.Context(), req.Email, c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscribed successfully")
}

func (n *NewsletterController) Unsubscribe(c *gin.Context) {
	var req request_models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := n.newsletterService.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Unsubscribed successfully")
}
