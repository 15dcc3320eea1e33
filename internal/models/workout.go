package models

import (
	"time"
)

// Exercise is one entry of a workout. Exercises live inside their parent
// workout row and are always read and written together with it.
type Exercise struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Sets      int    `json:"sets"`
	Reps      int    `json:"reps"`
	Duration  int    `json:"duration"`
	Intensity string `json:"intensity"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes,omitempty"`
}

// Workout is a single exercise session owned by one user.
type Workout struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;index:idx_workouts_user_date,priority:1" json:"userId"`
	Date           time.Time  `gorm:"not null;index:idx_workouts_user_date,priority:2,sort:desc" json:"date"`
	Type           string     `gorm:"not null" json:"type"`
	Duration       int        `gorm:"not null" json:"duration"`
	CaloriesBurned float64    `gorm:"not null" json:"caloriesBurned"`
	Exercises      []Exercise `gorm:"type:text;serializer:json" json:"exercises"`
	Notes          string     `json:"notes,omitempty"`
	Completed      bool       `gorm:"not null;default:false" json:"completed"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// CompletedExercises counts the embedded exercises marked completed.
func (w *Workout) CompletedExercises() int {
	n := 0
	for _, ex := range w.Exercises {
		if ex.Completed {
			n++
		}
	}
	return n
}
