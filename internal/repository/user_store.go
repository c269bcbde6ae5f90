package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/yusufkecer/fitness-tracker-backend/internal/domain"
)

// UserStore is the contract the services use to keep registered users.
type UserStore interface {
	Save(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
}

var (
	_ UserStore = (*MemoryUserStore)(nil)
	_ UserStore = (*SQLUserStore)(nil)
)

// MemoryUserStore holds users in process memory; contents are lost on restart.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]domain.User)}
}

func (s *MemoryUserStore) Save(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.UserID] = *u
	return nil
}

func (s *MemoryUserStore) Get(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return &u, nil
}
