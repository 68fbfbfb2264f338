package services

import (
	"context"
	"log"
	"time"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
)

// retentionPeriod matches the stated privacy policy of six years for
// anonymous quiz data and audit records.
const retentionPeriod = 6 * 365 * 24 * time.Hour

type RetentionServiceInterface interface {
	// SweepExpired deletes sessions and audit logs older than the retention
	// cutoff and returns the number of rows removed from each store.
	SweepExpired(ctx context.Context) (sessions int64, auditLogs int64, err error)
}

type RetentionService struct {
	sessionRepo repositories.QuizSessionRepository
	auditRepo   repositories.AuditRepository
	now         func() time.Time
}

func NewRetentionService(
	sessionRepo repositories.QuizSessionRepository,
	auditRepo repositories.AuditRepository,
) RetentionServiceInterface {
	return &RetentionService{
		sessionRepo: sessionRepo,
		auditRepo:   auditRepo,
		now:         time.Now,
	}
}

func (r *RetentionService) SweepExpired(ctx context.Context) (int64, int64, error) {
	cutoff := r.now().Add(-retentionPeriod)

	sessions, err := r.sessionRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, 0, err
	}

	auditLogs, err := r.auditRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return sessions, 0, err
	}

	if sessions > 0 || auditLogs > 0 {
		log.Printf("Retention sweep removed %d quiz sessions and %d audit logs", sessions, auditLogs)
	}
	return sessions, auditLogs, nil
}
