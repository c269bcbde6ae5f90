package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/yusufkecer/fitness-tracker-backend/internal/domain"
	"github.com/yusufkecer/fitness-tracker-backend/internal/metrics"
	"github.com/yusufkecer/fitness-tracker-backend/internal/repository"
)

type UserService struct {
	store   repository.UserStore
	metrics *metrics.Manager
	now     func() time.Time
}

func NewUserService(store repository.UserStore, metricsManager *metrics.Manager, now func() time.Time) *UserService {
	if now == nil {
		now = time.Now
	}
	return &UserService{store: store, metrics: metricsManager, now: now}
}

// Register computes the BMI for req and stores the user, replacing any
// previous registration under the same id.
func (s *UserService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	if !(req.Weight > 0) {
		return nil, fmt.Errorf("%w: weight must be positive", domain.ErrValidation)
	}
	if math.IsInf(domain.ComputeWaterIntake(req.Weight), 0) {
		return nil, fmt.Errorf("%w: weight out of range", domain.ErrValidation)
	}

	bmi, err := domain.ComputeBMI(req.Weight, req.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: height must be positive and the bmi finite: %w", domain.ErrValidation, err)
	}

	user := &domain.User{
		UserID:       userID,
		Weight:       req.Weight,
		Height:       req.Height,
		BMI:          bmi,
		RegisteredAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterRegistrations.Inc()
	}
	log.WithFields(log.Fields{"user_id": userID, "bmi": bmi}).Debug("user registered")
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.store.Get(ctx, userID)
}

func (s *UserService) DietRecommendation(ctx context.Context, userID string) (*domain.DietRecommendation, error) {
	user, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.NewDietRecommendation(user), nil
}
