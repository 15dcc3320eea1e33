// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered member and their fitness profile.
type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	Password           string    `gorm:"not null" json:"-"`
	Age                int       `gorm:"not null" json:"age"`
	Gender             string    `gorm:"not null" json:"gender"`
	Weight             float64   `gorm:"not null" json:"weight"`
	Height             float64   `gorm:"not null" json:"height"`
	FitnessLevel       string    `gorm:"not null" json:"fitnessLevel"`
	Goals              string    `gorm:"not null" json:"goals"`
	HealthConditions   []string  `gorm:"type:text;serializer:json" json:"healthConditions"`
	WorkoutPreferences []string  `gorm:"type:text;serializer:json" json:"workoutPreferences"`
	TimeAvailability   int       `gorm:"not null" json:"timeAvailability"`
	ProfileImage       string    `json:"profileImage,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// UserSummary is the subset of a user returned alongside a freshly issued token.
type UserSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	FitnessLevel string `json:"fitnessLevel"`
	Goals        string `json:"goals"`
}

// Summary returns the public token-response view of u.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		FitnessLevel: u.FitnessLevel,
		Goals:        u.Goals,
	}
}
