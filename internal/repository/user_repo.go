package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yusufkecer/fitness-tracker-backend/internal/domain"
)

// SQLUserStore keeps registered users in the users table.
type SQLUserStore struct {
	db *sql.DB
}

func NewSQLUserStore(db *sql.DB) *SQLUserStore {
	return &SQLUserStore{db: db}
}

// Save inserts u or replaces the row registered under the same id.
func (r *SQLUserStore) Save(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`REPLACE INTO users (user_id, weight, height, bmi, registered_at)
		 VALUES (?, ?, ?, ?, ?)`,
		u.UserID, u.Weight, u.Height, u.BMI, u.RegisteredAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *SQLUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, weight, height, bmi, registered_at
		 FROM users WHERE user_id = ?`, userID,
	).Scan(&u.UserID, &u.Weight, &u.Height, &u.BMI, &u.RegisteredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	u.RegisteredAt = u.RegisteredAt.UTC()
	return &u, nil
}
