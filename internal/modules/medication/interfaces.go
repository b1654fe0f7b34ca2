package medication

import (
	"context"
	"time"

	"gentlecare/internal/domain"
)

type MedicationRepository interface {
	Create(ctx context.Context, m *domain.Medication) error
	GetByID(ctx context.Context, id int64) (*domain.Medication, error)
	ListActiveByElders(ctx context.Context, elderIDs []int64) ([]domain.Medication, error)
	Update(ctx context.Context, m *domain.Medication) error
	Deactivate(ctx context.Context, id int64) error
	CreateLog(ctx context.Context, l *domain.MedicationLog) error
	LastTaken(ctx context.Context, medicationID int64) (*time.Time, error)
}

// NotificationCreator appends to the server-side notification feed.
type NotificationCreator interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type Events interface {
	MedicationAdded(caretakerUserID, medicationID, elderProfileID int64, name string)
	MedicationLogged(caretakerUserID, medicationID, elderProfileID int64, elderName, medicationName, status string, takenAt time.Time)
}
