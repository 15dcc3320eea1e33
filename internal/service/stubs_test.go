package service

import (
	"context"
	"testing"
	"time"

	"smartlife/internal/models"

	"github.com/stretchr/testify/assert"
)

type userRepoStub struct {
	getByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	createFn     func(ctx context.Context, user *models.User) error
	updateFn     func(ctx context.Context, user *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		},
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
	}
}

type workoutRepoStub struct {
	listFn    func(ctx context.Context, userID uint, limit, offset int) ([]models.Workout, error)
	betweenFn func(ctx context.Context, userID uint, from, to time.Time) ([]models.Workout, error)
	getFn     func(ctx context.Context, id, userID uint) (*models.Workout, error)
	createFn  func(ctx context.Context, w *models.Workout) error
	updateFn  func(ctx context.Context, w *models.Workout) error
	deleteFn  func(ctx context.Context, id, userID uint) error
}

func (s *workoutRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Workout, error) {
	return s.listFn(ctx, userID, limit, offset)
}

func (s *workoutRepoStub) ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.Workout, error) {
	return s.betweenFn(ctx, userID, from, to)
}

func (s *workoutRepoStub) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Workout, error) {
	return s.getFn(ctx, id, userID)
}

func (s *workoutRepoStub) Create(ctx context.Context, w *models.Workout) error {
	return s.createFn(ctx, w)
}

func (s *workoutRepoStub) Update(ctx context.Context, w *models.Workout) error {
	return s.updateFn(ctx, w)
}

func (s *workoutRepoStub) DeleteForUser(ctx context.Context, id, userID uint) error {
	return s.deleteFn(ctx, id, userID)
}

func noopWorkoutRepo() *workoutRepoStub {
	return &workoutRepoStub{
		listFn: func(context.Context, uint, int, int) ([]models.Workout, error) { return []models.Workout{}, nil },
		betweenFn: func(context.Context, uint, time.Time, time.Time) ([]models.Workout, error) {
			return []models.Workout{}, nil
		},
		getFn: func(_ context.Context, id, _ uint) (*models.Workout, error) {
			return nil, models.NewNotFoundError("Workout", id)
		},
		createFn: func(context.Context, *models.Workout) error { return nil },
		updateFn: func(context.Context, *models.Workout) error { return nil },
		deleteFn: func(context.Context, uint, uint) error { return nil },
	}
}

type progressRepoStub struct {
	listFn   func(ctx context.Context, userID uint, limit, offset int) ([]models.Progress, error)
	getFn    func(ctx context.Context, id, userID uint) (*models.Progress, error)
	createFn func(ctx context.Context, p *models.Progress) error
	updateFn func(ctx context.Context, p *models.Progress) error
	deleteFn func(ctx context.Context, id, userID uint) error
}

func (s *progressRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Progress, error) {
	return s.listFn(ctx, userID, limit, offset)
}

func (s *progressRepoStub) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Progress, error) {
	return s.getFn(ctx, id, userID)
}

func (s *progressRepoStub) Create(ctx context.Context, p *models.Progress) error {
	return s.createFn(ctx, p)
}

func (s *progressRepoStub) Update(ctx context.Context, p *models.Progress) error {
	return s.updateFn(ctx, p)
}

func (s *progressRepoStub) DeleteForUser(ctx context.Context, id, userID uint) error {
	return s.deleteFn(ctx, id, userID)
}

func noopProgressRepo() *progressRepoStub {
	return &progressRepoStub{
		listFn: func(context.Context, uint, int, int) ([]models.Progress, error) { return []models.Progress{}, nil },
		getFn: func(_ context.Context, id, _ uint) (*models.Progress, error) {
			return nil, models.NewNotFoundError("Progress", id)
		},
		createFn: func(context.Context, *models.Progress) error { return nil },
		updateFn: func(context.Context, *models.Progress) error { return nil },
		deleteFn: func(context.Context, uint, uint) error { return nil },
	}
}

type credsStub struct {
	issued []uint
}

func (c *credsStub) HashPassword(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (c *credsStub) VerifyPassword(plaintext, hash string) bool {
	return hash == "hashed:"+plaintext
}

func (c *credsStub) IssueToken(userID uint) (string, error) {
	c.issued = append(c.issued, userID)
	return "token", nil
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, models.HasCode(err, code), "expected %s, got %v", code, err)
	}
}

func ptr[T any](v T) *T {
	return &v
}
