package repository

import (
	"context"
	"errors"
	"time"

	"gentlecare/internal/domain"

	"gorm.io/gorm"
)

type MedicationRepository struct {
	db *gorm.DB
}

func NewMedicationRepository(db *gorm.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

func (r *MedicationRepository) Create(ctx context.Context, m *domain.Medication) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MedicationRepository) GetByID(ctx context.Context, id int64) (*domain.Medication, error) {
	var m domain.Medication
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListActiveByElders returns active medications across the given elder
// profiles, newest first.
func (r *MedicationRepository) ListActiveByElders(ctx context.Context, elderIDs []int64) ([]domain.Medication, error) {
	if len(elderIDs) == 0 {
		return []domain.Medication{}, nil
	}

	var out []domain.Medication
	err := r.db.WithContext(ctx).
		Where("elder_id IN ? AND is_active = ?", elderIDs, true).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *MedicationRepository) Update(ctx context.Context, m *domain.Medication) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// Deactivate soft-deletes a medication; the row stays for history.
func (r *MedicationRepository) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Medication{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MedicationRepository) CreateLog(ctx context.Context, l *domain.MedicationLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// LastTaken returns the most recent log timestamp for a medication, or nil
// when it has never been logged.
func (r *MedicationRepository) LastTaken(ctx context.Context, medicationID int64) (*time.Time, error) {
	var l domain.MedicationLog
	err := r.db.WithContext(ctx).
		Where("medication_id = ?", medicationID).
		Order("taken_at DESC").
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t := l.TakenAt
	return &t, nil
}
