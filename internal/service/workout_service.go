package service

import (
	"context"
	"slices"
	"time"

	"smartlife/internal/cache"
	"smartlife/internal/models"
	"smartlife/internal/observability"
	"smartlife/internal/repository"
	"smartlife/internal/stats"
	"smartlife/internal/validation"

	"github.com/google/uuid"
)

type WorkoutService struct {
	repo repository.WorkoutRepository
	now  func() time.Time
}

type ExerciseInput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Sets      int    `json:"sets"`
	Reps      int    `json:"reps"`
	Duration  int    `json:"duration"`
	Intensity string `json:"intensity"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

// WorkoutInput is the client-supplied body of a workout. A nil Date means now.
type WorkoutInput struct {
	Date           *time.Time      `json:"date"`
	Type           string          `json:"type"`
	Duration       int             `json:"duration"`
	CaloriesBurned float64         `json:"caloriesBurned"`
	Exercises      []ExerciseInput `json:"exercises"`
	Notes          string          `json:"notes"`
	Completed      bool            `json:"completed"`
}

// WorkoutPatch carries a partial update of a workout. Nil fields are left
// unchanged. A present Exercises list replaces the stored one whole.
type WorkoutPatch struct {
	Date           *time.Time       `json:"date"`
	Type           *string          `json:"type"`
	Duration       *int             `json:"duration"`
	CaloriesBurned *float64         `json:"caloriesBurned"`
	Exercises      *[]ExerciseInput `json:"exercises"`
	Notes          *string          `json:"notes"`
	Completed      *bool            `json:"completed"`
}

func NewWorkoutService(repo repository.WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo, now: time.Now}
}

// WithClock overrides the service clock.
func (s *WorkoutService) WithClock(now func() time.Time) *WorkoutService {
	s.now = now
	return s
}

func (s *WorkoutService) List(ctx context.Context, userID uint, limit, offset int) ([]models.Workout, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

func (s *WorkoutService) Get(ctx context.Context, userID, id uint) (*models.Workout, error) {
	return s.repo.GetByIDForUser(ctx, id, userID)
}

func (s *WorkoutService) Create(ctx context.Context, userID uint, in WorkoutInput) (*models.Workout, error) {
	w := &models.Workout{UserID: userID}
	s.apply(w, in)

	if err := validation.ValidateWorkout(w); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	cache.InvalidateWorkoutStats(ctx, userID)
	return w, nil
}

// Update changes only the fields present in patch. Exercises sent with a
// known id keep it.
func (s *WorkoutService) Update(ctx context.Context, userID, id uint, patch WorkoutPatch) (*models.Workout, error) {
	w, err := s.repo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Date != nil {
		w.Date = patch.Date.UTC()
	}
	if patch.Type != nil {
		w.Type = *patch.Type
	}
	if patch.Duration != nil {
		w.Duration = *patch.Duration
	}
	if patch.CaloriesBurned != nil {
		w.CaloriesBurned = *patch.CaloriesBurned
	}
	if patch.Exercises != nil {
		w.Exercises = buildExercises(w.Exercises, *patch.Exercises)
	}
	if patch.Notes != nil {
		w.Notes = *patch.Notes
	}
	if patch.Completed != nil {
		w.Completed = *patch.Completed
	}

	if err := validation.ValidateWorkout(w); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	cache.InvalidateWorkoutStats(ctx, userID)
	return w, nil
}

func (s *WorkoutService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
		return err
	}
	cache.InvalidateWorkoutStats(ctx, userID)
	return nil
}

// CompleteExercise marks one exercise of the user's workout as completed and
// saves the workout as a whole.
func (s *WorkoutService) CompleteExercise(ctx context.Context, userID, workoutID uint, exerciseID string) (*models.Workout, error) {
	w, err := s.repo.GetByIDForUser(ctx, workoutID, userID)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(w.Exercises, func(ex models.Exercise) bool { return ex.ID == exerciseID })
	if idx < 0 {
		return nil, models.NewNotFoundError("Exercise", exerciseID)
	}

	exercises := slices.Clone(w.Exercises)
	exercises[idx].Completed = true
	w.Exercises = exercises

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	cache.InvalidateWorkoutStats(ctx, userID)
	return w, nil
}

// Stats summarizes all of the user's workouts.
func (s *WorkoutService) Stats(ctx context.Context, userID uint) (summary stats.WorkoutSummary, err error) {
	ctx, span := observability.StartSpan(ctx, "WorkoutService.Stats", userID)
	defer func() { observability.EndSpan(span, err) }()

	err = cache.Aside(ctx, cache.WorkoutStatsKey(userID), &summary, cache.StatsTTL, func() error {
		workouts, err := s.repo.ListByUser(ctx, userID, 0, 0)
		if err != nil {
			return err
		}
		summary = stats.SummarizeWorkouts(workouts)
		return nil
	})
	return summary, err
}

// Weekly returns per-day activity for the current UTC week.
func (s *WorkoutService) Weekly(ctx context.Context, userID uint) ([]stats.DayActivity, error) {
	now := s.now()
	from, to := stats.WeekBounds(now)
	workouts, err := s.repo.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return stats.WeeklyActivity(workouts, now), nil
}

func (s *WorkoutService) apply(w *models.Workout, in WorkoutInput) {
	date := s.now().UTC()
	if in.Date != nil {
		date = in.Date.UTC()
	}

	w.Date = date
	w.Type = in.Type
	w.Duration = in.Duration
	w.CaloriesBurned = in.CaloriesBurned
	w.Exercises = buildExercises(w.Exercises, in.Exercises)
	w.Notes = in.Notes
	w.Completed = in.Completed
}

// buildExercises converts client exercises, keeping ids already present in
// stored and assigning a fresh uuid to any other.
func buildExercises(stored []models.Exercise, in []ExerciseInput) []models.Exercise {
	known := make(map[string]bool, len(stored))
	for _, ex := range stored {
		known[ex.ID] = true
	}

	exercises := make([]models.Exercise, 0, len(in))
	for _, ex := range in {
		id := ex.ID
		if id == "" || !known[id] {
			id = uuid.NewString()
		}
		exercises = append(exercises, models.Exercise{
			ID:        id,
			Name:      ex.Name,
			Type:      ex.Type,
			Sets:      ex.Sets,
			Reps:      ex.Reps,
			Duration:  ex.Duration,
			Intensity: ex.Intensity,
			Completed: ex.Completed,
			Notes:     ex.Notes,
		})
	}
	return exercises
}
