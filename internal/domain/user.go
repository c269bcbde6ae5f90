package domain

import "time"

type User struct {
	UserID       string    `json:"user_id"`
	Weight       float64   `json:"weight"`
	Height       float64   `json:"height"`
	BMI          float64   `json:"bmi"`
	RegisteredAt time.Time `json:"registered_at"`
}

type RegisterRequest struct {
	UserID string  `json:"user_id"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}
