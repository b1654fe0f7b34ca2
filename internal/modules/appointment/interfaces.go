package appointment

import (
	"context"
	"time"

	"gentlecare/internal/domain"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByElders(ctx context.Context, elderIDs []int64) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

type NotificationCreator interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type Events interface {
	AppointmentAdded(caretakerUserID, appointmentID, elderProfileID int64, title string, date time.Time)
}
