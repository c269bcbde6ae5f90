package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/fitness-tracker-backend/internal/domain"
	"github.com/yusufkecer/fitness-tracker-backend/internal/metrics"
)

type fakeSessionStore struct {
	sessions []domain.ExerciseSession
	err      error
}

func (f *fakeSessionStore) Create(_ context.Context, s *domain.ExerciseSession) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	s.ID = int64(len(f.sessions) + 1)
	f.sessions = append(f.sessions, *s)
	return s.ID, nil
}

func (f *fakeSessionStore) TotalMinutes(_ context.Context, userID, date string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	total := 0
	for _, s := range f.sessions {
		if s.UserID == userID && s.Date == date {
			total += s.Duration
		}
	}
	return total, nil
}

func (f *fakeSessionStore) ListByUserAndDate(_ context.Context, userID, date string) ([]domain.ExerciseSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.ExerciseSession
	for _, s := range f.sessions {
		if s.UserID == userID && s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestSessionService_RecordDefaults(t *testing.T) {
	store := &fakeSessionStore{}
	m := metrics.NewTestManager()
	svc := NewSessionService(store, m, clock)

	session, err := svc.Record(context.Background(), domain.RecordSessionRequest{
		UserID: "alice", ExerciseType: "yoga", ExerciseID: 2, Duration: 25,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), session.ID)
	assert.Equal(t, "2026-10-14", session.Date)
	assert.Equal(t, fixedNow, session.StartTime)
	assert.Equal(t, domain.ExerciseTypeYoga, session.ExerciseType)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterSessionsRecorded.WithLabelValues("yoga")))
	assert.Equal(t, float64(25), testutil.ToFloat64(m.CounterMinutesLogged.WithLabelValues("yoga")))
}

func TestSessionService_RecordExplicitDate(t *testing.T) {
	store := &fakeSessionStore{}
	svc := NewSessionService(store, nil, clock)
	start := time.Date(2026, time.October, 1, 6, 0, 0, 0, time.UTC)

	session, err := svc.Record(context.Background(), domain.RecordSessionRequest{
		UserID: "alice", ExerciseType: "gym", ExerciseID: 1, Duration: 40, Date: "2026-10-01", StartTime: &start,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", session.Date)
	assert.Equal(t, start, session.StartTime)
}

func TestSessionService_RecordValidation(t *testing.T) {
	svc := NewSessionService(&fakeSessionStore{}, nil, clock)

	tests := []struct {
		name string
		req  domain.RecordSessionRequest
		want error
	}{
		{name: "missing user", req: domain.RecordSessionRequest{ExerciseType: "gym", Duration: 10}, want: domain.ErrValidation},
		{name: "bad type", req: domain.RecordSessionRequest{UserID: "a", ExerciseType: "pilates", Duration: 10}, want: domain.ErrUnknownExerciseType},
		{name: "negative duration", req: domain.RecordSessionRequest{UserID: "a", ExerciseType: "gym", Duration: -1}, want: domain.ErrValidation},
		{name: "bad date", req: domain.RecordSessionRequest{UserID: "a", ExerciseType: "gym", Duration: 1, Date: "10/14/2026"}, want: domain.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSessionService_DailyTotal(t *testing.T) {
	ctx := context.Background()
	store := &fakeSessionStore{}
	svc := NewSessionService(store, nil, clock)

	for _, req := range []domain.RecordSessionRequest{
		{UserID: "alice", ExerciseType: "gym", Duration: 30},
		{UserID: "alice", ExerciseType: "yoga", Duration: 15},
		{UserID: "alice", ExerciseType: "yoga", Duration: 50, Date: "2026-10-13"},
	} {
		_, err := svc.Record(ctx, req)
		require.NoError(t, err)
	}

	today, err := svc.DailyTotal(ctx, "alice", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DailyTotal{UserID: "alice", Date: "2026-10-14", TotalMinutes: 45}, *today)

	yesterday, err := svc.DailyTotal(ctx, "alice", "2026-10-13")
	require.NoError(t, err)
	assert.Equal(t, 50, yesterday.TotalMinutes)

	empty, err := svc.DailyTotal(ctx, "bob", "2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalMinutes)

	_, err = svc.DailyTotal(ctx, "alice", "2026-02-30")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestSessionService_List(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(&fakeSessionStore{}, nil, clock)

	sessions, err := svc.List(ctx, "alice", "")
	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
}

func TestSessionService_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	svc := NewSessionService(&fakeSessionStore{err: boom}, nil, clock)

	_, err := svc.Record(ctx, domain.RecordSessionRequest{UserID: "a", ExerciseType: "gym", Duration: 5})
	assert.ErrorIs(t, err, boom)

	_, err = svc.DailyTotal(ctx, "a", "")
	assert.ErrorIs(t, err, boom)

	_, err = svc.List(ctx, "a", "")
	assert.ErrorIs(t, err, boom)
}
