package repository

import (
	"context"
	"errors"

	"gentlecare/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.EmergencyContact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*domain.EmergencyContact, error) {
	var c domain.EmergencyContact
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByElder returns contacts with the primary contact first.
func (r *ContactRepository) ListByElder(ctx context.Context, elderID int64) ([]domain.EmergencyContact, error) {
	var out []domain.EmergencyContact
	err := r.db.WithContext(ctx).
		Where("elder_id = ?", elderID).
		Order("is_primary DESC, name ASC").
		Find(&out).Error
	return out, err
}

func (r *ContactRepository) Update(ctx context.Context, c *domain.EmergencyContact) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.EmergencyContact{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
