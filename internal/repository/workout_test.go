package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"smartlife/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkout(userID uint, date time.Time) *models.Workout {
	return &models.Workout{
		UserID:         userID,
		Date:           date,
		Type:           models.WorkoutStrength,
		Duration:       45,
		CaloriesBurned: 300,
		Exercises: []models.Exercise{
			{ID: "ex-1", Name: "Squat", Type: "strength", Sets: 3, Reps: 10, Intensity: "high"},
			{ID: "ex-2", Name: "Plank", Type: "strength", Duration: 2, Intensity: "low"},
		},
	}
}

func TestWorkoutRepository_ListOrderAndScope(t *testing.T) {
	repo := NewWorkoutRepository(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, newWorkout(1, base)))
	require.NoError(t, repo.Create(ctx, newWorkout(1, base.Add(48*time.Hour))))
	require.NoError(t, repo.Create(ctx, newWorkout(2, base.Add(24*time.Hour))))

	list, err := repo.ListByUser(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Date.After(list[1].Date), "newest first")

	paged, err := repo.ListByUser(ctx, 1, 1, 1)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, list[1].ID, paged[0].ID)

	empty, err := repo.ListByUser(ctx, 3, 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	window, err := repo.ListByUserBetween(ctx, 1, base, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, window, 1)
}

func TestWorkoutRepository_OwnerScoping(t *testing.T) {
	repo := NewWorkoutRepository(setupTestDB(t))
	ctx := context.Background()

	w := newWorkout(1, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, w))

	_, err := repo.GetByIDForUser(ctx, w.ID, 2)
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	foreign := *w
	foreign.UserID = 2
	foreign.Notes = "hijacked"
	err = repo.Update(ctx, &foreign)
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	err = repo.DeleteForUser(ctx, w.ID, 2)
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	got, err := repo.GetByIDForUser(ctx, w.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, got.Notes)
}

func TestWorkoutRepository_UpdatePersistsExercises(t *testing.T) {
	repo := NewWorkoutRepository(setupTestDB(t))
	ctx := context.Background()

	w := newWorkout(1, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, w))

	w.Exercises[1].Completed = true
	w.Completed = true
	require.NoError(t, repo.Update(ctx, w))

	got, err := repo.GetByIDForUser(ctx, w.ID, 1)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.False(t, got.Exercises[0].Completed)
	assert.True(t, got.Exercises[1].Completed)
	assert.Equal(t, 1, got.CompletedExercises())
}

func TestWorkoutRepository_Delete(t *testing.T) {
	repo := NewWorkoutRepository(setupTestDB(t))
	ctx := context.Background()

	w := newWorkout(1, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, w))
	require.NoError(t, repo.DeleteForUser(ctx, w.ID, 1))

	_, err := repo.GetByIDForUser(ctx, w.ID, 1)
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	err = repo.DeleteForUser(ctx, w.ID, 1)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestWorkoutRepository_GetByIDForUser_DBError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWorkoutRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "workouts" WHERE id = $1 AND user_id = $2`)).
		WithArgs(5, 1, 1).
		WillReturnError(errors.New("connection reset"))

	w, err := repo.GetByIDForUser(context.Background(), 5, 1)
	assert.Nil(t, w)
	assert.True(t, models.HasCode(err, models.CodeInternal))
	assert.NoError(t, mock.ExpectationsWereMet())
}
