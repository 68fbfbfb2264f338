package services

import (
	"context"
	"testing"
	"time"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

type countingSessionRepo struct {
	fakeSessionRepo
	cutoff  time.Time
	deleted int64
}

func (c *countingSessionRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	c.cutoff = cutoff
	return c.deleted, nil
}

type countingAuditRepo struct {
	cutoff  time.Time
	deleted int64
}

func (c *countingAuditRepo) Insert(ctx context.Context, entry *db_models.AuditLog) error {
	return nil
}

func (c *countingAuditRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	c.cutoff = cutoff
	return c.deleted, nil
}

func TestSweepExpiredUsesSixYearCutoff(t *testing.T) {
	sessionRepo := &countingSessionRepo{deleted: 4}
	auditRepo := &countingAuditRepo{deleted: 7}

	service := NewRetentionService(sessionRepo, auditRepo).(*RetentionService)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	sessions, auditLogs, err := service.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if sessions != 4 || auditLogs != 7 {
		t.Errorf("counts = %d/%d, want 4/7", sessions, auditLogs)
	}

	wantCutoff := now.Add(-6 * 365 * 24 * time.Hour)
	if !sessionRepo.cutoff.Equal(wantCutoff) {
		t.Errorf("session cutoff = %v, want %v", sessionRepo.cutoff, wantCutoff)
	}
	if !auditRepo.cutoff.Equal(wantCutoff) {
		t.Errorf("audit cutoff = %v, want %v", auditRepo.cutoff, wantCutoff)
	}
}
