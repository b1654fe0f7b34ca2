package repository

import (
	"context"
	"errors"

	"gentlecare/internal/domain"

	"gorm.io/gorm"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, l *domain.LocationLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LocationRepository) Latest(ctx context.Context, elderID int64) (*domain.LocationLog, error) {
	var l domain.LocationLog
	err := r.db.WithContext(ctx).
		Where("elder_id = ?", elderID).
		Order("recorded_at DESC").
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}
