package validation

import (
	"fmt"
	"strings"

	"smartlife/internal/models"
)

func oneOf(field, value string, allowed []string) error {
	if !models.OneOf(value, allowed) {
		return fmt.Errorf("%s must be one of: %s", field, strings.Join(allowed, ", "))
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

// ValidateProfile checks the profile fields of a user. Password is checked separately.
func ValidateProfile(u *models.User) error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if u.Age <= 0 || u.Age > 130 {
		return fmt.Errorf("age must be between 1 and 130")
	}
	if err := oneOf("gender", u.Gender, models.Genders); err != nil {
		return err
	}
	if u.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if u.Height <= 0 {
		return fmt.Errorf("height must be positive")
	}
	if err := oneOf("fitnessLevel", u.FitnessLevel, models.FitnessLevels); err != nil {
		return err
	}
	if err := oneOf("goals", u.Goals, models.Goals); err != nil {
		return err
	}
	for _, hc := range u.HealthConditions {
		if err := oneOf("healthConditions", hc, models.HealthConditions); err != nil {
			return err
		}
	}
	for _, wp := range u.WorkoutPreferences {
		if err := oneOf("workoutPreferences", wp, models.WorkoutTypes); err != nil {
			return err
		}
	}
	return nonNegative("timeAvailability", float64(u.TimeAvailability))
}

// ValidateWorkout checks a workout and every exercise in it.
func ValidateWorkout(w *models.Workout) error {
	if err := oneOf("type", w.Type, models.WorkoutTypes); err != nil {
		return err
	}
	if err := nonNegative("duration", float64(w.Duration)); err != nil {
		return err
	}
	if err := nonNegative("caloriesBurned", w.CaloriesBurned); err != nil {
		return err
	}
	for i, ex := range w.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return fmt.Errorf("exercises[%d].name is required", i)
		}
		if err := oneOf(fmt.Sprintf("exercises[%d].type", i), ex.Type, models.WorkoutTypes); err != nil {
			return err
		}
		if err := oneOf(fmt.Sprintf("exercises[%d].intensity", i), ex.Intensity, models.Intensities); err != nil {
			return err
		}
		if ex.Sets < 0 || ex.Reps < 0 || ex.Duration < 0 {
			return fmt.Errorf("exercises[%d] sets, reps and duration must not be negative", i)
		}
	}
	return nil
}

// ValidateProgress checks a progress entry.
func ValidateProgress(p *models.Progress) error {
	if p.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if err := nonNegative("waterIntake", p.WaterIntake); err != nil {
		return err
	}
	if p.SleepQuality < 0 || p.SleepQuality > 100 {
		return fmt.Errorf("sleepQuality must be between 0 and 100")
	}
	if p.SleepDuration < 0 || p.SleepDuration > 24 {
		return fmt.Errorf("sleepDuration must be between 0 and 24")
	}
	return nil
}
