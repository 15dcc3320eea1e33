package service

import (
	"context"
	"time"

	"smartlife/internal/cache"
	"smartlife/internal/models"
	"smartlife/internal/observability"
	"smartlife/internal/repository"
	"smartlife/internal/stats"
	"smartlife/internal/validation"
)

type ProgressService struct {
	repo repository.ProgressRepository
	now  func() time.Time
}

// ProgressInput is the client-supplied body of a progress entry. A nil Date means now.
type ProgressInput struct {
	Date             *time.Time              `json:"date"`
	Weight           float64                 `json:"weight"`
	BodyMeasurements models.BodyMeasurements `json:"bodyMeasurements"`
	WorkoutStats     models.WorkoutStats     `json:"workoutStats"`
	WaterIntake      float64                 `json:"waterIntake"`
	SleepQuality     float64                 `json:"sleepQuality"`
	SleepDuration    float64                 `json:"sleepDuration"`
	Notes            string                  `json:"notes"`
	Photos           []string                `json:"photos"`
}

// ProgressPatch carries a partial update of a progress entry. Nil fields are
// left unchanged; nested measurements, stats and photos are replaced whole.
type ProgressPatch struct {
	Date             *time.Time               `json:"date"`
	Weight           *float64                 `json:"weight"`
	BodyMeasurements *models.BodyMeasurements `json:"bodyMeasurements"`
	WorkoutStats     *models.WorkoutStats     `json:"workoutStats"`
	WaterIntake      *float64                 `json:"waterIntake"`
	SleepQuality     *float64                 `json:"sleepQuality"`
	SleepDuration    *float64                 `json:"sleepDuration"`
	Notes            *string                  `json:"notes"`
	Photos           *[]string                `json:"photos"`
}

func NewProgressService(repo repository.ProgressRepository) *ProgressService {
	return &ProgressService{repo: repo, now: time.Now}
}

func (s *ProgressService) List(ctx context.Context, userID uint, limit, offset int) ([]models.Progress, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

func (s *ProgressService) Get(ctx context.Context, userID, id uint) (*models.Progress, error) {
	return s.repo.GetByIDForUser(ctx, id, userID)
}

func (s *ProgressService) Create(ctx context.Context, userID uint, in ProgressInput) (*models.Progress, error) {
	p := &models.Progress{UserID: userID}
	s.apply(p, in)

	if err := validation.ValidateProgress(p); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	cache.InvalidateProgressStats(ctx, userID)
	return p, nil
}

// Update changes only the fields present in patch.
func (s *ProgressService) Update(ctx context.Context, userID, id uint, patch ProgressPatch) (*models.Progress, error) {
	p, err := s.repo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	patch.applyTo(p)

	if err := validation.ValidateProgress(p); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	cache.InvalidateProgressStats(ctx, userID)
	return p, nil
}

func (s *ProgressService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
		return err
	}
	cache.InvalidateProgressStats(ctx, userID)
	return nil
}

// Summary averages and totals all of the user's progress entries.
func (s *ProgressService) Summary(ctx context.Context, userID uint) (summary stats.ProgressSummary, err error) {
	ctx, span := observability.StartSpan(ctx, "ProgressService.Summary", userID)
	defer func() { observability.EndSpan(span, err) }()

	err = cache.Aside(ctx, cache.ProgressSummaryKey(userID), &summary, cache.StatsTTL, func() error {
		entries, err := s.repo.ListByUser(ctx, userID, 0, 0)
		if err != nil {
			return err
		}
		summary = stats.SummarizeProgress(entries)
		return nil
	})
	return summary, err
}

// Trends returns up to twelve monthly buckets, most recent first.
func (s *ProgressService) Trends(ctx context.Context, userID uint) (trends []stats.MonthlyTrend, err error) {
	ctx, span := observability.StartSpan(ctx, "ProgressService.Trends", userID)
	defer func() { observability.EndSpan(span, err) }()

	err = cache.Aside(ctx, cache.ProgressTrendsKey(userID), &trends, cache.StatsTTL, func() error {
		entries, err := s.repo.ListByUser(ctx, userID, 0, 0)
		if err != nil {
			return err
		}
		trends = stats.MonthlyTrends(entries)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if trends == nil {
		trends = []stats.MonthlyTrend{}
	}
	return trends, nil
}

func (s *ProgressService) apply(p *models.Progress, in ProgressInput) {
	date := s.now().UTC()
	if in.Date != nil {
		date = in.Date.UTC()
	}

	p.Date = date
	p.Weight = in.Weight
	p.BodyMeasurements = in.BodyMeasurements
	p.WorkoutStats = in.WorkoutStats
	p.WaterIntake = in.WaterIntake
	p.SleepQuality = in.SleepQuality
	p.SleepDuration = in.SleepDuration
	p.Notes = in.Notes
	p.Photos = in.Photos
}

func (patch ProgressPatch) applyTo(p *models.Progress) {
	if patch.Date != nil {
		p.Date = patch.Date.UTC()
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.BodyMeasurements != nil {
		p.BodyMeasurements = *patch.BodyMeasurements
	}
	if patch.WorkoutStats != nil {
		p.WorkoutStats = *patch.WorkoutStats
	}
	if patch.WaterIntake != nil {
		p.WaterIntake = *patch.WaterIntake
	}
	if patch.SleepQuality != nil {
		p.SleepQuality = *patch.SleepQuality
	}
	if patch.SleepDuration != nil {
		p.SleepDuration = *patch.SleepDuration
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	if patch.Photos != nil {
		p.Photos = *patch.Photos
	}
}
