package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gentlecare/internal/domain"
	"gentlecare/internal/modules/access"
)

type Service struct {
	appointments AppointmentRepository
	scope        *access.Resolver
	notifs       NotificationCreator
	events       Events
}

func NewService(appointments AppointmentRepository, scope *access.Resolver, notifs NotificationCreator, events Events) *Service {
	return &Service{appointments: appointments, scope: scope, notifs: notifs, events: events}
}

func (s *Service) List(ctx context.Context, userID int64, role domain.UserRole) ([]Response, error) {
	elders, err := s.scope.Scope(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(elders))
	ids := make([]int64, 0, len(elders))
	for _, e := range elders {
		ids = append(ids, e.ID)
		if e.User != nil {
			names[e.ID] = e.User.FullName
		}
	}

	apts, err := s.appointments.ListByElders(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]Response, 0, len(apts))
	for _, a := range apts {
		out = append(out, Response{
			ID:              a.ID,
			ElderID:         a.ElderID,
			ElderName:       names[a.ElderID],
			Title:           a.Title,
			DoctorName:      a.DoctorName,
			Location:        a.Location,
			AppointmentDate: a.AppointmentDate,
			DurationMinutes: a.DurationMinutes,
			Notes:           a.Notes,
			Status:          string(a.Status),
		})
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, userID int64, role domain.UserRole, req CreateRequest) (*domain.Appointment, error) {
	if role == domain.RoleCaretaker && req.ElderID == 0 {
		return nil, ErrValidation
	}
	target, err := s.scope.Target(ctx, userID, role, req.ElderID)
	if err != nil {
		return nil, mapAccessErr(err)
	}

	date, err := parseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return nil, ErrValidation
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = 30
	}

	a := &domain.Appointment{
		ElderID:         target.ID,
		Title:           req.Title,
		DoctorName:      req.DoctorName,
		Location:        req.Location,
		AppointmentDate: date,
		DurationMinutes: duration,
		Notes:           req.Notes,
		Status:          domain.AppointmentScheduled,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}

	// When the elder books their own appointment, the caretaker gets a
	// feed entry and a live event.
	if caretakerID, elderName := s.scope.CaretakerOf(ctx, target.ID); caretakerID != nil && *caretakerID != userID {
		elderID := target.ID
		_ = s.notifs.Create(ctx, &domain.Notification{
			ElderID:         &elderID,
			RecipientUserID: *caretakerID,
			Title:           "New Appointment",
			Message:         fmt.Sprintf("%s: %s on %s", elderName, a.Title, date.Format("Jan 2, 3:04 PM")),
			Type:            "appointment",
		})
		s.events.AppointmentAdded(*caretakerID, a.ID, target.ID, a.Title, date)
	}

	return a, nil
}

func (s *Service) UpdateStatus(ctx context.Context, userID int64, role domain.UserRole, appointmentID int64, status string) (*domain.Appointment, error) {
	a, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.scope.Authorize(ctx, userID, role, a.ElderID); err != nil {
		return nil, mapAccessErr(err)
	}

	newStatus := domain.AppointmentStatus(status)
	if err := s.appointments.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		return nil, err
	}
	a.Status = newStatus
	return a, nil
}

func parseAppointmentDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

func mapAccessErr(err error) error {
	if errors.Is(err, access.ErrForbidden) {
		return ErrForbidden
	}
	return err
}
