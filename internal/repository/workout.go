package repository

import (
	"context"
	"errors"
	"time"

	"smartlife/internal/models"

	"gorm.io/gorm"
)

// WorkoutRepository defines data access methods for workouts. Every method
// is scoped to the owning user.
type WorkoutRepository interface {
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Workout, error)
	ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.Workout, error)
	GetByIDForUser(ctx context.Context, id, userID uint) (*models.Workout, error)
	Create(ctx context.Context, workout *models.Workout) error
	Update(ctx context.Context, workout *models.Workout) error
	DeleteForUser(ctx context.Context, id, userID uint) error
}

type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository returns a new WorkoutRepository implementation.
func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

// ListByUser returns the user's workouts, newest first. A non-positive limit returns all of them.
func (r *workoutRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Workout, error) {
	workouts := []models.Workout{}
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&workouts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return workouts, nil
}

// ListByUserBetween returns workouts dated in [from, to).
func (r *workoutRepository) ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.Workout, error) {
	workouts := []models.Workout{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&workouts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return workouts, nil
}

func (r *workoutRepository) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Workout, error) {
	var workout models.Workout
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&workout).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Workout", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &workout, nil
}

func (r *workoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	if err := r.db.WithContext(ctx).Create(workout).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update writes the whole workout, embedded exercises included, if it belongs to workout.UserID.
func (r *workoutRepository) Update(ctx context.Context, workout *models.Workout) error {
	res := r.db.WithContext(ctx).
		Model(&models.Workout{}).
		Where("id = ? AND user_id = ?", workout.ID, workout.UserID).
		Select("*").
		Omit("ID", "UserID", "CreatedAt").
		Updates(workout)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Workout", workout.ID)
	}
	return nil
}

func (r *workoutRepository) DeleteForUser(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Workout{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Workout", id)
	}
	return nil
}
