package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/services"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type ContactController struct {
	contactService services.ContactServiceInterface
}

func NewContactController(contactService services.ContactServiceInterface) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

func (cc *ContactController) Submit(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := cc.contactService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id}, "Message received, we will get back to you soon")
}
