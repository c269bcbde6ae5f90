package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrUnknownExerciseType = errors.New("unknown exercise type")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	// ErrUndefinedBMI is returned when height is not positive or the BMI
	// does not fit in a finite float64.
	ErrUndefinedBMI = errors.New("bmi undefined for the given weight and height")
	ErrValidation   = errors.New("validation failed")
)
