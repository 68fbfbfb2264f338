package services

import (
	"context"
	"log"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
)

// AuditServiceInterface appends compliance records. Recording is always
// best-effort: an audit failure must never fail the action being audited,
// so Record returns nothing and logs internally.
type AuditServiceInterface interface {
	Record(ctx context.Context, entry db_models.AuditLog)
}

type AuditService struct {
	auditRepo repositories.AuditRepository
}

func NewAuditService(auditRepo repositories.AuditRepository) AuditServiceInterface {
	return &AuditService{
		auditRepo: auditRepo,
	}
}

func (a *AuditService) Record(ctx context.Context, entry db_models.AuditLog) {
	if entry.Action == "" || entry.Resource == "" {
		log.Printf("Dropping audit entry with missing action/resource: %+v", entry)
		return
	}

	if err := a.auditRepo.Insert(ctx, &entry); err != nil {
		log.Printf("Error writing audit log (%s %s): %v", entry.Action, entry.Resource, err)
	}
}
