// Package seed creates demo data for development databases.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"smartlife/internal/models"
	"smartlife/internal/repository"
	"smartlife/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	Email    string
	Password string
	Days     int
	Clean    bool
	// RandSeed makes the generated data reproducible. Zero picks a random seed.
	RandSeed int64
}

// DefaultOptions seeds one demo account with a year of history.
func DefaultOptions() Options {
	return Options{
		Email:    "demo@smartlife.dev",
		Password: "Demo!Pass123",
		Days:     365,
		Clean:    true,
	}
}

// Result reports what Seed created.
type Result struct {
	UserID   uint
	Workouts int
	Progress int
}

type Seeder struct {
	db       *gorm.DB
	users    *service.UserService
	workouts *service.WorkoutService
	progress *service.ProgressService
	now      func() time.Time
}

func NewSeeder(db *gorm.DB, creds service.Credentials) *Seeder {
	return &Seeder{
		db:       db,
		users:    service.NewUserService(repository.NewUserRepository(db), creds),
		workouts: service.NewWorkoutService(repository.NewWorkoutRepository(db)),
		progress: service.NewProgressService(repository.NewProgressRepository(db)),
		now:      time.Now,
	}
}

// Seed creates the demo user, a workout roughly every other day and a weekly
// progress entry going back opts.Days days.
func (s *Seeder) Seed(ctx context.Context, opts Options) (*Result, error) {
	if opts.Clean {
		if err := s.clear(opts.Email); err != nil {
			return nil, fmt.Errorf("failed to clear demo user: %w", err)
		}
	}

	faker := gofakeit.New(opts.RandSeed)

	auth, err := s.users.Register(ctx, service.RegisterInput{
		Name:               faker.Name(),
		Email:              opts.Email,
		Password:           opts.Password,
		Age:                faker.Number(20, 60),
		Gender:             faker.RandomString(models.Genders),
		Weight:             faker.Float64Range(55, 95),
		Height:             faker.Float64Range(155, 195),
		FitnessLevel:       faker.RandomString(models.FitnessLevels),
		Goals:              faker.RandomString(models.Goals),
		HealthConditions:   []string{"none"},
		WorkoutPreferences: []string{models.WorkoutCardio, models.WorkoutStrength},
		TimeAvailability:   faker.Number(20, 90),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}
	res := &Result{UserID: auth.User.ID}
	log.Printf("✓ demo user %s created", opts.Email)

	today := s.now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -opts.Days)
	weight := faker.Float64Range(70, 90)

	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		if faker.Number(0, 1) == 0 {
			date := day.Add(time.Duration(faker.Number(6, 20)) * time.Hour)
			if _, err := s.workouts.Create(ctx, res.UserID, buildWorkout(faker, date)); err != nil {
				return nil, fmt.Errorf("failed to create workout: %w", err)
			}
			res.Workouts++
		}

		if day.Weekday() == time.Sunday {
			weight += faker.Float64Range(-0.6, 0.4)
			date := day.Add(8 * time.Hour)
			if _, err := s.progress.Create(ctx, res.UserID, buildProgress(faker, date, weight)); err != nil {
				return nil, fmt.Errorf("failed to create progress entry: %w", err)
			}
			res.Progress++
		}
	}

	log.Printf("✓ %d workouts and %d progress entries created", res.Workouts, res.Progress)
	return res, nil
}

func (s *Seeder) clear(email string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Workout{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Progress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func buildWorkout(faker *gofakeit.Faker, date time.Time) service.WorkoutInput {
	workoutType := faker.RandomString(models.WorkoutTypes)
	exercises := make([]service.ExerciseInput, faker.Number(1, 5))
	for i := range exercises {
		exercises[i] = service.ExerciseInput{
			Name:      faker.Verb() + " " + faker.Noun(),
			Type:      workoutType,
			Sets:      faker.Number(0, 5),
			Reps:      faker.Number(0, 15),
			Duration:  faker.Number(2, 20),
			Intensity: faker.RandomString(models.Intensities),
			Completed: faker.Bool(),
		}
	}

	return service.WorkoutInput{
		Date:           &date,
		Type:           workoutType,
		Duration:       faker.Number(15, 90),
		CaloriesBurned: float64(faker.Number(100, 800)),
		Exercises:      exercises,
		Completed:      faker.Number(0, 9) > 1,
	}
}

func buildProgress(faker *gofakeit.Faker, date time.Time, weight float64) service.ProgressInput {
	waist := faker.Float64Range(70, 95)
	calories := float64(faker.Number(800, 3500))
	return service.ProgressInput{
		Date:             &date,
		Weight:           weight,
		BodyMeasurements: models.BodyMeasurements{Waist: &waist},
		WorkoutStats:     models.WorkoutStats{CaloriesBurned: &calories},
		WaterIntake:      faker.Float64Range(1, 4),
		SleepQuality:     float64(faker.Number(40, 100)),
		SleepDuration:    faker.Float64Range(5, 9),
	}
}
