package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/yusufkecer/fitness-tracker-backend/internal/domain"
	"github.com/yusufkecer/fitness-tracker-backend/internal/metrics"
)

// SessionStore persists exercise sessions and answers per-day queries.
type SessionStore interface {
	Create(ctx context.Context, s *domain.ExerciseSession) (int64, error)
	TotalMinutes(ctx context.Context, userID, date string) (int, error)
	ListByUserAndDate(ctx context.Context, userID, date string) ([]domain.ExerciseSession, error)
}

type SessionService struct {
	store   SessionStore
	metrics *metrics.Manager
	now     func() time.Time
}

func NewSessionService(store SessionStore, metricsManager *metrics.Manager, now func() time.Time) *SessionService {
	if now == nil {
		now = time.Now
	}
	return &SessionService{store: store, metrics: metricsManager, now: now}
}

func (s *SessionService) Record(ctx context.Context, req domain.RecordSessionRequest) (*domain.ExerciseSession, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	exerciseType, err := domain.ParseExerciseType(req.ExerciseType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if req.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}
	date, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	startTime := s.now()
	if req.StartTime != nil {
		startTime = *req.StartTime
	}

	session := &domain.ExerciseSession{
		UserID:       userID,
		ExerciseType: exerciseType,
		ExerciseID:   req.ExerciseID,
		StartTime:    startTime.UTC(),
		Duration:     req.Duration,
		Date:         date,
	}
	id, err := s.store.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}
	session.ID = id

	if s.metrics != nil {
		s.metrics.CounterSessionsRecorded.WithLabelValues(string(exerciseType)).Inc()
		s.metrics.CounterMinutesLogged.WithLabelValues(string(exerciseType)).Add(float64(req.Duration))
	}
	log.WithFields(log.Fields{
		"user_id":  userID,
		"type":     exerciseType,
		"duration": req.Duration,
		"date":     date,
	}).Debug("session recorded")
	return session, nil
}

// DailyTotal sums the minutes userID logged on date. An empty date means today.
func (s *SessionService) DailyTotal(ctx context.Context, userID, date string) (*domain.DailyTotal, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	total, err := s.store.TotalMinutes(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("daily total: %w", err)
	}
	return &domain.DailyTotal{UserID: userID, Date: day, TotalMinutes: total}, nil
}

func (s *SessionService) List(ctx context.Context, userID, date string) ([]domain.ExerciseSession, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	sessions, err := s.store.ListByUserAndDate(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []domain.ExerciseSession{}
	}
	return sessions, nil
}

func (s *SessionService) resolveDate(date string) (string, error) {
	if date == "" {
		return s.now().Format(domain.DateLayout), nil
	}
	return domain.ParseDate(date)
}
