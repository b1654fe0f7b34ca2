package repository

import (
	"context"
	"errors"

	"gentlecare/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) CreateElder(ctx context.Context, p *domain.ElderProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) CreateCaretaker(ctx context.Context, p *domain.CaretakerProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) GetElderByUserID(ctx context.Context, userID int64) (*domain.ElderProfile, error) {
	var p domain.ElderProfile
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetElderByID(ctx context.Context, id int64) (*domain.ElderProfile, error) {
	var p domain.ElderProfile
	err := r.db.WithContext(ctx).Preload("User").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetCaretakerByUserID(ctx context.Context, userID int64) (*domain.CaretakerProfile, error) {
	var p domain.CaretakerProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AllElders returns every elder profile. The notifier walks this list once
// per tick.
func (r *ProfileRepository) AllElders(ctx context.Context) ([]domain.ElderProfile, error) {
	var out []domain.ElderProfile
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

// EldersOfCaretaker returns every elder profile linked to the given
// caretaker user.
func (r *ProfileRepository) EldersOfCaretaker(ctx context.Context, caretakerUserID int64) ([]domain.ElderProfile, error) {
	var out []domain.ElderProfile
	err := r.db.WithContext(ctx).Preload("User").Where("caretaker_id = ?", caretakerUserID).Find(&out).Error
	return out, err
}

func (r *ProfileRepository) SetCaretaker(ctx context.Context, elderProfileID, caretakerUserID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.ElderProfile{}).
		Where("id = ?", elderProfileID).
		Update("caretaker_id", caretakerUserID).Error
}
