// Package service contains the application's business logic.
package service

import (
	"context"
	"net/url"
	"strings"

	"smartlife/internal/models"
	"smartlife/internal/repository"
	"smartlife/internal/validation"
)

// Credentials hashes passwords and issues tokens.
type Credentials interface {
	HashPassword(plaintext string) (string, error)
	VerifyPassword(plaintext, hash string) bool
	IssueToken(userID uint) (string, error)
}

type UserService struct {
	userRepo repository.UserRepository
	creds    Credentials
}

type RegisterInput struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	Weight             float64  `json:"weight"`
	Height             float64  `json:"height"`
	FitnessLevel       string   `json:"fitnessLevel"`
	Goals              string   `json:"goals"`
	HealthConditions   []string `json:"healthConditions"`
	WorkoutPreferences []string `json:"workoutPreferences"`
	TimeAvailability   int      `json:"timeAvailability"`
}

// UpdateProfileInput carries a partial profile update. Nil fields are left unchanged.
// Passwords cannot be changed here.
type UpdateProfileInput struct {
	Name               *string   `json:"name"`
	Email              *string   `json:"email"`
	Age                *int      `json:"age"`
	Gender             *string   `json:"gender"`
	Weight             *float64  `json:"weight"`
	Height             *float64  `json:"height"`
	FitnessLevel       *string   `json:"fitnessLevel"`
	Goals              *string   `json:"goals"`
	HealthConditions   *[]string `json:"healthConditions"`
	WorkoutPreferences *[]string `json:"workoutPreferences"`
	TimeAvailability   *int      `json:"timeAvailability"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

func NewUserService(userRepo repository.UserRepository, creds Credentials) *UserService {
	return &UserService{userRepo: userRepo, creds: creds}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user := &models.User{
		Name:               strings.TrimSpace(in.Name),
		Email:              validation.NormalizeEmail(in.Email),
		Age:                in.Age,
		Gender:             in.Gender,
		Weight:             in.Weight,
		Height:             in.Height,
		FitnessLevel:       in.FitnessLevel,
		Goals:              in.Goals,
		HealthConditions:   in.HealthConditions,
		WorkoutPreferences: in.WorkoutPreferences,
		TimeAvailability:   in.TimeAvailability,
	}
	if err := validation.ValidateProfile(user); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("User already exists")
	}

	hash, err := s.creds.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	user.Password = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authResult(user)
}

// Login never reveals whether the email or the password was wrong.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil || !s.creds.VerifyPassword(password, user.Password) {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return s.authResult(user)
}

func (s *UserService) authResult(user *models.User) (*AuthResult, error) {
	token, err := s.creds.IssueToken(user.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &AuthResult{Token: token, User: user.Summary()}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		user.Email = validation.NormalizeEmail(*in.Email)
	}
	if in.Age != nil {
		user.Age = *in.Age
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.Weight != nil {
		user.Weight = *in.Weight
	}
	if in.Height != nil {
		user.Height = *in.Height
	}
	if in.FitnessLevel != nil {
		user.FitnessLevel = *in.FitnessLevel
	}
	if in.Goals != nil {
		user.Goals = *in.Goals
	}
	if in.HealthConditions != nil {
		user.HealthConditions = *in.HealthConditions
	}
	if in.WorkoutPreferences != nil {
		user.WorkoutPreferences = *in.WorkoutPreferences
	}
	if in.TimeAvailability != nil {
		user.TimeAvailability = *in.TimeAvailability
	}

	if err := validation.ValidateProfile(user); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfileImage records the URL of an already uploaded image.
func (s *UserService) UpdateProfileImage(ctx context.Context, userID uint, imageURL string) (*models.User, error) {
	imageURL = strings.TrimSpace(imageURL)
	u, err := url.Parse(imageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, models.NewValidationError("profileImage must be an absolute http(s) URL")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.ProfileImage = imageURL
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
