package models

import (
	"time"
)

// BodyMeasurements are optional circumference measurements in centimetres.
type BodyMeasurements struct {
	Chest *float64 `json:"chest,omitempty"`
	Waist *float64 `json:"waist,omitempty"`
	Hips  *float64 `json:"hips,omitempty"`
	Arms  *float64 `json:"arms,omitempty"`
	Legs  *float64 `json:"legs,omitempty"`
}

// WorkoutStats is a snapshot of training volume recorded with a progress entry.
// Every field is optional; a missing value counts as zero in aggregates.
type WorkoutStats struct {
	TotalDuration      *float64 `json:"totalDuration,omitempty"`
	CaloriesBurned     *float64 `json:"caloriesBurned,omitempty"`
	ExercisesCompleted *int     `json:"exercisesCompleted,omitempty"`
}

// Progress is a point-in-time body and lifestyle measurement owned by one user.
type Progress struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	UserID           uint             `gorm:"not null;index:idx_progress_user_date,priority:1" json:"userId"`
	Date             time.Time        `gorm:"not null;index:idx_progress_user_date,priority:2,sort:desc" json:"date"`
	Weight           float64          `gorm:"not null" json:"weight"`
	BodyMeasurements BodyMeasurements `gorm:"embedded;embeddedPrefix:body_" json:"bodyMeasurements"`
	WorkoutStats     WorkoutStats     `gorm:"embedded;embeddedPrefix:stats_" json:"workoutStats"`
	WaterIntake      float64          `gorm:"not null" json:"waterIntake"`
	SleepQuality     float64          `gorm:"not null" json:"sleepQuality"`
	SleepDuration    float64          `gorm:"not null" json:"sleepDuration"`
	Notes            string           `json:"notes,omitempty"`
	Photos           []string         `gorm:"type:text;serializer:json" json:"photos"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// TableName keeps the plural of "progress" readable.
func (Progress) TableName() string {
	return "progress_entries"
}
