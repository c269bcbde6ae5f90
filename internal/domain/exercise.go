package domain

type Exercise struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        ExerciseType `json:"type"`
}
