package repository

import (
	"context"
	"errors"
	"time"

	"gentlecare/internal/domain"

	"gorm.io/gorm"
)

type MealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) Create(ctx context.Context, m *domain.Meal) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MealRepository) GetByID(ctx context.Context, id int64) (*domain.Meal, error) {
	var m domain.Meal
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByElder returns the elder's meals, optionally scoped to the calendar
// day of `day` (server-local time).
func (r *MealRepository) ListByElder(ctx context.Context, elderID int64, day *time.Time) ([]domain.Meal, error) {
	q := r.db.WithContext(ctx).Where("elder_id = ?", elderID)

	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.Add(24 * time.Hour)
		q = q.Where("created_at >= ? AND created_at < ?", start, end)
	}

	var out []domain.Meal
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *MealRepository) MarkConsumed(ctx context.Context, id int64, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Meal{}).
		Where("id = ?", id).
		Updates(map[string]any{"consumed": true, "consumed_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
