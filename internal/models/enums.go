package models

import "slices"

// Workout and exercise categories.
const (
	WorkoutCardio      = "cardio"
	WorkoutStrength    = "strength"
	WorkoutYoga        = "yoga"
	WorkoutHIIT        = "hiit"
	WorkoutFlexibility = "flexibility"
)

var (
	WorkoutTypes     = []string{WorkoutCardio, WorkoutStrength, WorkoutYoga, WorkoutHIIT, WorkoutFlexibility}
	Intensities      = []string{"low", "medium", "high"}
	Genders          = []string{"male", "female", "other"}
	FitnessLevels    = []string{"beginner", "intermediate", "advanced"}
	Goals            = []string{"weight_loss", "muscle_gain", "endurance", "flexibility"}
	HealthConditions = []string{"none", "diabetes", "hypertension", "heart_disease", "arthritis", "other"}
)

// OneOf reports whether v is a member of allowed.
func OneOf(v string, allowed []string) bool {
	return slices.Contains(allowed, v)
}
