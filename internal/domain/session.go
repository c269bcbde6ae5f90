package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for session dates.
const DateLayout = "2006-01-02"

type ExerciseType string

const (
	ExerciseTypeYoga ExerciseType = "yoga"
	ExerciseTypeGym  ExerciseType = "gym"
)

func ParseExerciseType(s string) (ExerciseType, error) {
	switch t := ExerciseType(s); t {
	case ExerciseTypeYoga, ExerciseTypeGym:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownExerciseType, s)
	}
}

type ExerciseSession struct {
	ID           int64        `json:"id"`
	UserID       string       `json:"user_id"`
	ExerciseType ExerciseType `json:"exercise_type"`
	ExerciseID   int          `json:"exercise_id"`
	StartTime    time.Time    `json:"start_time"`
	Duration     int          `json:"duration"`
	Date         string       `json:"date"`
}

type RecordSessionRequest struct {
	UserID       string     `json:"user_id"`
	ExerciseType string     `json:"exercise_type"`
	ExerciseID   int        `json:"exercise_id"`
	StartTime    *time.Time `json:"start_time"`
	Duration     int        `json:"duration"`
	Date         string     `json:"date"`
}

type DailyTotal struct {
	UserID       string `json:"user_id"`
	Date         string `json:"date"`
	TotalMinutes int    `json:"total_minutes"`
}

// ParseDate validates s as a YYYY-MM-DD calendar date and returns it normalized.
func ParseDate(s string) (string, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d.Format(DateLayout), nil
}
