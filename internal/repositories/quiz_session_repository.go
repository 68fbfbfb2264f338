package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
)

type QuizSessionRepository interface {
	Insert(ctx context.Context, session *db_models.AnonymousQuizSession) error
	FindBySessionID(ctx context.Context, sessionID string) (*db_models.AnonymousQuizSession, error)
	// ListByTimestampRange returns every session whose metadata timestamp
	// falls inside the optional bounds. Nil bounds are open-ended.
	ListByTimestampRange(ctx context.Context, start, end *time.Time) ([]db_models.AnonymousQuizSession, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type quizSessionRepository struct {
	db *gorm.DB
}

func NewQuizSessionRepository(db *gorm.DB) QuizSessionRepository {
	return &quizSessionRepository{db: db}
}

func (r *quizSessionRepository) Insert(ctx context.Context, session *db_models.AnonymousQuizSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *quizSessionRepository) FindBySessionID(ctx context.Context, sessionID string) (*db_models.AnonymousQuizSession, error) {
	var session db_models.AnonymousQuizSession
	err := r.db.WithContext(ctx).First(&session, "session_id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *quizSessionRepository) ListByTimestampRange(ctx context.Context, start, end *time.Time) ([]db_models.AnonymousQuizSession, error) {
	query := r.db.WithContext(ctx)
	if start != nil {
		query = query.Where("created_at >= ?", start.Unix())
	}
	if end != nil {
		query = query.Where("created_at <= ?", end.Unix())
	}

	var sessions []db_models.AnonymousQuizSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *quizSessionRepository) DeleteBySessionID(ctx context.Context, sessionID string) error {
	result := r.db.WithContext(ctx).Delete(&db_models.AnonymousQuizSession{}, "session_id = ?", sessionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *quizSessionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Delete(&db_models.AnonymousQuizSession{}, "created_at < ?", cutoff.Unix())
	return result.RowsAffected, result.Error
}
