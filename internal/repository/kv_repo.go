package repository

import (
	"context"
	"errors"

	"gentlecare/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository is a fixed-key blob store. The notifier keeps its rolling
// notification log and the device push token here, always writing the full
// value in one statement so readers never observe a partial log.
type KVRepository struct {
	db *gorm.DB
}

func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get returns (nil, nil) for a missing key; absence is not an error.
func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var e domain.KVEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&domain.KVEntry{Key: key, Value: value}).Error
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&domain.KVEntry{}).Error
}
