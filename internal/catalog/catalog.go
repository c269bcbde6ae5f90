// Package catalog holds the built-in yoga and gym exercise lists.
package catalog

import (
	"fmt"

	"github.com/yusufkecer/fitness-tracker-backend/internal/domain"
)

var yoga = []domain.Exercise{
	{ID: 1, Name: "Mountain Pose", Description: "Stand tall with feet together, shoulders relaxed, and arms at your sides."},
	{ID: 2, Name: "Downward Dog", Description: "Start on all fours, then lift your hips up and back to form an inverted V shape."},
	{ID: 3, Name: "Warrior II", Description: "Stand with legs wide apart, turn your right foot out, and bend your right knee while extending your arms."},
	{ID: 4, Name: "Tree Pose", Description: "Stand on one leg and place the sole of your other foot on your inner thigh to maintain balance."},
	{ID: 5, Name: "Child's Pose", Description: "Sit back on your heels, lean forward, and stretch your arms out, resting your forehead on the ground."},
}

var gym = []domain.Exercise{
	{ID: 1, Name: "Bench Press", Description: "A compound exercise for chest, shoulders, and triceps."},
	{ID: 2, Name: "Squat", Description: "A fundamental lower-body exercise to build strength in legs and glutes."},
	{ID: 3, Name: "Deadlift", Description: "An exercise that works your back, glutes, and hamstrings."},
	{ID: 4, Name: "Overhead Press", Description: "Targets shoulders and triceps for upper body strength."},
	{ID: 5, Name: "Pull-Up", Description: "A bodyweight exercise that strengthens your back and biceps."},
}

func entries(t domain.ExerciseType) ([]domain.Exercise, error) {
	switch t {
	case domain.ExerciseTypeYoga:
		return yoga, nil
	case domain.ExerciseTypeGym:
		return gym, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownExerciseType, t)
	}
}

// List returns a copy of the catalog for t, so callers cannot mutate it.
func List(t domain.ExerciseType) ([]domain.Exercise, error) {
	src, err := entries(t)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Exercise, len(src))
	for i, ex := range src {
		ex.Type = t
		out[i] = ex
	}
	return out, nil
}

func Get(t domain.ExerciseType, id int) (domain.Exercise, error) {
	src, err := entries(t)
	if err != nil {
		return domain.Exercise{}, err
	}
	for _, ex := range src {
		if ex.ID == id {
			ex.Type = t
			return ex, nil
		}
	}
	return domain.Exercise{}, fmt.Errorf("%w: %s exercise %d", domain.ErrExerciseNotFound, t, id)
}
