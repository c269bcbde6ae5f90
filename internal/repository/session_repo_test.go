package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/fitness-tracker-backend/internal/db/dbtest"
	"github.com/yusufkecer/fitness-tracker-backend/internal/domain"
)

func TestSessionRepository_TotalMinutes(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(dbtest.New(t))
	start := time.Date(2026, time.October, 14, 7, 30, 0, 0, time.UTC)

	sessions := []domain.ExerciseSession{
		{UserID: "alice", ExerciseType: domain.ExerciseTypeYoga, ExerciseID: 1, StartTime: start, Duration: 20, Date: "2026-10-14"},
		{UserID: "alice", ExerciseType: domain.ExerciseTypeGym, ExerciseID: 3, StartTime: start.Add(2 * time.Hour), Duration: 45, Date: "2026-10-14"},
		{UserID: "alice", ExerciseType: domain.ExerciseTypeGym, ExerciseID: 2, StartTime: start.Add(24 * time.Hour), Duration: 30, Date: "2026-10-15"},
		{UserID: "bob", ExerciseType: domain.ExerciseTypeGym, ExerciseID: 1, StartTime: start, Duration: 60, Date: "2026-10-14"},
	}
	for i := range sessions {
		id, err := repo.Create(ctx, &sessions[i])
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}

	total, err := repo.TotalMinutes(ctx, "alice", "2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, 65, total)

	total, err = repo.TotalMinutes(ctx, "alice", "2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, 30, total)

	total, err = repo.TotalMinutes(ctx, "bob", "2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, 60, total)
}

func TestSessionRepository_TotalMinutesNoSessions(t *testing.T) {
	repo := NewSessionRepository(dbtest.New(t))

	total, err := repo.TotalMinutes(context.Background(), "nobody", "2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestSessionRepository_ListByUserAndDate(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(dbtest.New(t))
	morning := time.Date(2026, time.October, 14, 7, 0, 0, 0, time.UTC)

	late := &domain.ExerciseSession{UserID: "alice", ExerciseType: domain.ExerciseTypeGym, ExerciseID: 5, StartTime: morning.Add(10 * time.Hour), Duration: 15, Date: "2026-10-14"}
	early := &domain.ExerciseSession{UserID: "alice", ExerciseType: domain.ExerciseTypeYoga, ExerciseID: 2, StartTime: morning, Duration: 25, Date: "2026-10-14"}
	for _, s := range []*domain.ExerciseSession{late, early} {
		_, err := repo.Create(ctx, s)
		require.NoError(t, err)
	}

	got, err := repo.ListByUserAndDate(ctx, "alice", "2026-10-14")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, domain.ExerciseTypeYoga, got[0].ExerciseType)
	assert.Equal(t, 2, got[0].ExerciseID)
	assert.True(t, morning.Equal(got[0].StartTime))
	assert.Equal(t, 25, got[0].Duration)
	assert.Equal(t, "2026-10-14", got[0].Date)
	assert.Equal(t, int64(1), got[1].ID)

	none, err := repo.ListByUserAndDate(ctx, "alice", "2026-10-13")
	require.NoError(t, err)
	assert.Empty(t, none)
}
