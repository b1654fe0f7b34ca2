package health

import (
	"context"

	"gentlecare/internal/domain"
)

type HealthRecordRepository interface {
	Create(ctx context.Context, rec *domain.HealthRecord) error
	List(ctx context.Context, elderID int64, recordType string, days int) ([]domain.HealthRecord, error)
}

type NotificationCreator interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type Events interface {
	HealthRecordAdded(caretakerUserID, elderProfileID int64, elderName, recordType, value, unit string)
}
