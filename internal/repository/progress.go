package repository

import (
	"context"
	"errors"

	"smartlife/internal/models"

	"gorm.io/gorm"
)

// ProgressRepository defines data access methods for progress entries. Every method
// is scoped to the owning user.
type ProgressRepository interface {
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Progress, error)
	GetByIDForUser(ctx context.Context, id, userID uint) (*models.Progress, error)
	Create(ctx context.Context, entry *models.Progress) error
	Update(ctx context.Context, entry *models.Progress) error
	DeleteForUser(ctx context.Context, id, userID uint) error
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository returns a new ProgressRepository implementation.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// ListByUser returns the user's entries, newest first. A non-positive limit returns all of them.
func (r *progressRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Progress, error) {
	entries := []models.Progress{}
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *progressRepository) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Progress, error) {
	var entry models.Progress
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Progress", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &entry, nil
}

func (r *progressRepository) Create(ctx context.Context, entry *models.Progress) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update writes the whole entry, measurements included, if it belongs to entry.UserID.
func (r *progressRepository) Update(ctx context.Context, entry *models.Progress) error {
	res := r.db.WithContext(ctx).
		Model(&models.Progress{}).
		Where("id = ? AND user_id = ?", entry.ID, entry.UserID).
		Select("*").
		Omit("ID", "UserID", "CreatedAt").
		Updates(entry)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Progress", entry.ID)
	}
	return nil
}

func (r *progressRepository) DeleteForUser(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Progress{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Progress", id)
	}
	return nil
}
