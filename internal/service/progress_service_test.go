package service

import (
	"context"
	"testing"
	"time"

	"smartlife/internal/cache"
	"smartlife/internal/models"
	"smartlife/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func progressFixtures() []models.Progress {
	return []models.Progress{
		{UserID: 5, Date: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), Weight: 80, SleepQuality: 70, SleepDuration: 7, WaterIntake: 2,
			WorkoutStats: models.WorkoutStats{CaloriesBurned: floatPtr(300), ExercisesCompleted: intPtr(4)}},
		{UserID: 5, Date: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), Weight: 70, SleepQuality: 90, SleepDuration: 8, WaterIntake: 3},
		{UserID: 5, Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Weight: 82, SleepQuality: 60, SleepDuration: 6, WaterIntake: 1.5,
			WorkoutStats: models.WorkoutStats{CaloriesBurned: floatPtr(100)}},
	}
}

func TestProgressService_CreateValidatesAndDefaultsDate(t *testing.T) {
	now := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	svc := NewProgressService(noopProgressRepo())
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), 5, ProgressInput{Weight: 70, SleepQuality: 80, SleepDuration: 7, WaterIntake: 2})
	require.NoError(t, err)
	assert.Equal(t, now, p.Date)
	assert.Equal(t, uint(5), p.UserID)

	_, err = svc.Create(context.Background(), 5, ProgressInput{Weight: 70, SleepQuality: 180})
	assertCode(t, err, models.CodeValidation)
	assert.Contains(t, err.Error(), "sleepQuality")
}

func TestProgressService_SummaryMatchesDirectComputation(t *testing.T) {
	withCache(t)

	entries := progressFixtures()
	repo := noopProgressRepo()
	repo.listFn = func(context.Context, uint, int, int) ([]models.Progress, error) { return entries, nil }
	svc := NewProgressService(repo)

	direct := stats.SummarizeProgress(entries)

	fresh, err := svc.Summary(context.Background(), 5)
	require.NoError(t, err)
	cached, err := svc.Summary(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, direct, fresh)
	assert.Equal(t, direct, cached)
	assert.Equal(t, 4, cached.TotalWorkouts)
	assert.Equal(t, 400.0, cached.TotalCaloriesBurned)
}

func TestProgressService_Trends(t *testing.T) {
	mr := withCache(t)

	repo := noopProgressRepo()
	repo.listFn = func(context.Context, uint, int, int) ([]models.Progress, error) { return progressFixtures(), nil }
	svc := NewProgressService(repo)

	trends, err := svc.Trends(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, trends, 2)
	assert.Equal(t, 2024, trends[0].Year)
	assert.Equal(t, 2, trends[0].Month)
	assert.Equal(t, 75.0, trends[0].AvgWeight)
	assert.Equal(t, 1, trends[1].Month)
	assert.True(t, mr.Exists(cache.ProgressTrendsKey(5)))

	require.NoError(t, svc.Delete(context.Background(), 5, 1))
	assert.False(t, mr.Exists(cache.ProgressTrendsKey(5)))
	assert.False(t, mr.Exists(cache.ProgressSummaryKey(5)))
}

func TestProgressService_TrendsEmptyIsNotNil(t *testing.T) {
	withCache(t)
	svc := NewProgressService(noopProgressRepo())

	trends, err := svc.Trends(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, trends)
	assert.Empty(t, trends)

	again, err := svc.Trends(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, again)
}

func TestProgressService_UpdateScopedToOwner(t *testing.T) {
	repo := noopProgressRepo()
	repo.getFn = func(_ context.Context, id, userID uint) (*models.Progress, error) {
		if userID == 5 {
			return &models.Progress{ID: id, UserID: 5, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, nil
		}
		return nil, models.NewNotFoundError("Progress", id)
	}
	svc := NewProgressService(repo)

	p, err := svc.Update(context.Background(), 5, 3, ProgressPatch{Weight: ptr(71.0), SleepQuality: ptr(50.0), SleepDuration: ptr(6.0)})
	require.NoError(t, err)
	assert.Equal(t, 71.0, p.Weight)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p.Date)

	_, err = svc.Update(context.Background(), 6, 3, ProgressPatch{Weight: ptr(71.0)})
	assertCode(t, err, models.CodeNotFound)
}

func TestProgressService_UpdateChangesOnlyPresentFields(t *testing.T) {
	waist := 82.0
	calories := 1200.0
	stored := models.Progress{
		ID: 3, UserID: 5, Date: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		Weight: 72, WaterIntake: 2.5, SleepQuality: 85, SleepDuration: 7.5, Notes: "rested",
		BodyMeasurements: models.BodyMeasurements{Waist: &waist},
		WorkoutStats:     models.WorkoutStats{CaloriesBurned: &calories},
		Photos:           []string{"https://cdn.example.com/p/1.jpg"},
	}
	repo := noopProgressRepo()
	repo.getFn = func(context.Context, uint, uint) (*models.Progress, error) {
		p := stored
		return &p, nil
	}
	svc := NewProgressService(repo)

	p, err := svc.Update(context.Background(), 5, 3, ProgressPatch{Weight: ptr(80.0)})
	require.NoError(t, err)
	assert.Equal(t, 80.0, p.Weight)
	assert.Equal(t, 2.5, p.WaterIntake)
	assert.Equal(t, 85.0, p.SleepQuality)
	assert.Equal(t, 7.5, p.SleepDuration)
	assert.Equal(t, "rested", p.Notes)
	assert.Equal(t, stored.BodyMeasurements, p.BodyMeasurements)
	assert.Equal(t, stored.WorkoutStats, p.WorkoutStats)
	assert.Equal(t, stored.Photos, p.Photos)

	p, err = svc.Update(context.Background(), 5, 3, ProgressPatch{BodyMeasurements: &models.BodyMeasurements{}})
	require.NoError(t, err)
	assert.Nil(t, p.BodyMeasurements.Waist, "present nested struct replaces the stored one")

	_, err = svc.Update(context.Background(), 5, 3, ProgressPatch{SleepQuality: ptr(101.0)})
	assertCode(t, err, models.CodeValidation)
}
