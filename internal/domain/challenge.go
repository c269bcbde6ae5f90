package domain

import "fmt"

const (
	ChallengeDays = 30
	restInterval  = 7
)

const (
	gymRestDay  = "Rest Day: Light stretching and recovery."
	yogaRestDay = "Rest Day: Focus on meditation, mindful breathing, and gentle stretching."
)

var yogaRoutines = []string{
	"Perform 3 rounds of Sun Salutations (2 minutes each).",
	"Hold Mountain Pose and Downward Dog for 3 rounds (2 minutes each).",
	"Perform 3 rounds of Warrior II (1.5 minutes each side) and Tree Pose (1.5 minutes each side).",
	"Hold Child's Pose for 3 rounds (3 minutes each).",
	"Practice deep breathing and mindful meditation for 10 minutes.",
	"Perform a combination of Mountain, Warrior, and Downward Dog in sequence.",
}

type ChallengeDay struct {
	Day       int    `json:"day"`
	Exercises string `json:"exercises"`
	RestDay   bool   `json:"rest_day"`
}

func IsRestDay(day int) bool {
	return day%restInterval == 0
}

func GymChallengePlan() []ChallengeDay {
	return buildPlan(gymRestDay, func(day int) string {
		return fmt.Sprintf(
			"Bench Press: %d reps, Squat: %d reps, Deadlift: %d reps, Overhead Press: %d reps, Pull-Up: %d reps",
			10+day*2, 12+day*2, 8+day*2, 10+day*2, 5+day/2,
		)
	})
}

// YogaChallengePlan cycles the routines by raw day number, so rest days still
// advance the cycle.
func YogaChallengePlan() []ChallengeDay {
	return buildPlan(yogaRestDay, func(day int) string {
		return yogaRoutines[(day-1)%len(yogaRoutines)]
	})
}

func ChallengePlan(t ExerciseType) ([]ChallengeDay, error) {
	switch t {
	case ExerciseTypeGym:
		return GymChallengePlan(), nil
	case ExerciseTypeYoga:
		return YogaChallengePlan(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExerciseType, t)
	}
}

func buildPlan(restDay string, workout func(day int) string) []ChallengeDay {
	plan := make([]ChallengeDay, 0, ChallengeDays)
	for day := 1; day <= ChallengeDays; day++ {
		entry := ChallengeDay{Day: day}
		if IsRestDay(day) {
			entry.Exercises = restDay
			entry.RestDay = true
		} else {
			entry.Exercises = workout(day)
		}
		plan = append(plan, entry)
	}
	return plan
}
