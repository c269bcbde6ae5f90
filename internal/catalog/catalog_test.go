package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/fitness-tracker-backend/internal/domain"
)

func TestList(t *testing.T) {
	yogaList, err := List(domain.ExerciseTypeYoga)
	require.NoError(t, err)
	require.Len(t, yogaList, 5)
	assert.Equal(t, "Mountain Pose", yogaList[0].Name)
	assert.Equal(t, domain.ExerciseTypeYoga, yogaList[0].Type)

	gymList, err := List(domain.ExerciseTypeGym)
	require.NoError(t, err)
	require.Len(t, gymList, 5)
	assert.Equal(t, "Pull-Up", gymList[4].Name)

	_, err = List("pilates")
	assert.ErrorIs(t, err, domain.ErrUnknownExerciseType)
}

func TestListReturnsCopy(t *testing.T) {
	first, err := List(domain.ExerciseTypeGym)
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := List(domain.ExerciseTypeGym)
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", second[0].Name)
}

func TestGet(t *testing.T) {
	ex, err := Get(domain.ExerciseTypeYoga, 4)
	require.NoError(t, err)
	assert.Equal(t, "Tree Pose", ex.Name)

	_, err = Get(domain.ExerciseTypeGym, 6)
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)

	_, err = Get(domain.ExerciseTypeGym, 0)
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)

	_, err = Get("pilates", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownExerciseType)
}
