package repository

import (
	"context"
	"time"

	"gentlecare/internal/domain"

	"gorm.io/gorm"
)

type HealthRecordRepository struct {
	db *gorm.DB
}

func NewHealthRecordRepository(db *gorm.DB) *HealthRecordRepository {
	return &HealthRecordRepository{db: db}
}

func (r *HealthRecordRepository) Create(ctx context.Context, rec *domain.HealthRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// List returns records for an elder within the last `days` days, newest
// first, optionally filtered by record type.
func (r *HealthRecordRepository) List(ctx context.Context, elderID int64, recordType string, days int) ([]domain.HealthRecord, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	q := r.db.WithContext(ctx).
		Where("elder_id = ? AND recorded_at >= ?", elderID, cutoff)
	if recordType != "" {
		q = q.Where("record_type = ?", recordType)
	}

	var out []domain.HealthRecord
	err := q.Order("recorded_at DESC").Find(&out).Error
	return out, err
}
