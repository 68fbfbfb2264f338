package services

import (
	"context"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type ContactServiceInterface interface {
	SubmitContact(ctx context.Context, req request_models.ContactRequest) (string, error)
}

type ContactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactServiceInterface {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

var contactTypes = map[string]bool{
	"general":     true,
	"support":     true,
	"feedback":    true,
	"partnership": true,
	"other":       true,
}

var contactPriorities = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
	"urgent": true,
}

func (c *ContactService) SubmitContact(ctx context.Context, req request_models.ContactRequest) (string, error) {
	contactType := req.ContactType
	if !contactTypes[contactType] {
		contactType = "general"
	}
	priority := req.Priority
	if !contactPriorities[priority] {
		priority = "medium"
	}

	contact := &db_models.Contact{
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		ContactType: contactType,
		Priority:    priority,
		Status:      "new",
	}
	if err := c.contactRepo.Insert(ctx, contact); err != nil {
		return "", utils.ErrDatabaseError
	}
	return contact.ID.String(), nil
}
