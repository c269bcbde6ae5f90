package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yusufkecer/fitness-tracker-backend/internal/domain"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.ExerciseSession) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO exercise_sessions (user_id, exercise_type, exercise_id, start_time, duration, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.UserID, string(s.ExerciseType), s.ExerciseID, s.StartTime.UTC(), s.Duration, s.Date,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create session: %w", err)
	}
	return result.LastInsertId()
}

// TotalMinutes sums session durations for the user on date, 0 when none exist.
func (r *SessionRepository) TotalMinutes(ctx context.Context, userID, date string) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(duration), 0)
		 FROM exercise_sessions
		 WHERE user_id = ? AND date = ?`,
		userID, date,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum session minutes: %w", err)
	}
	return total, nil
}

func (r *SessionRepository) ListByUserAndDate(ctx context.Context, userID, date string) ([]domain.ExerciseSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, exercise_type, exercise_id, start_time, duration, date
		 FROM exercise_sessions
		 WHERE user_id = ? AND date = ?
		 ORDER BY start_time ASC, id ASC`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.ExerciseSession
	for rows.Next() {
		var s domain.ExerciseSession
		var exerciseType string
		if err := rows.Scan(&s.ID, &s.UserID, &exerciseType, &s.ExerciseID, &s.StartTime, &s.Duration, &s.Date); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.ExerciseType = domain.ExerciseType(exerciseType)
		s.StartTime = s.StartTime.UTC()
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
