package medication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gentlecare/internal/domain"
	"gentlecare/internal/modules/access"
)

type Service struct {
	medications MedicationRepository
	scope       *access.Resolver
	notifs      NotificationCreator
	events      Events
}

func NewService(medications MedicationRepository, scope *access.Resolver, notifs NotificationCreator, events Events) *Service {
	return &Service{
		medications: medications,
		scope:       scope,
		notifs:      notifs,
		events:      events,
	}
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

	meds, err := s.medications.ListActiveByElders(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]Response, 0, len(meds))
	for _, m := range meds {
		lastTaken, err := s.medications.LastTaken(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, Response{
			ID:           m.ID,
			ElderID:      m.ElderID,
			ElderName:    names[m.ElderID],
			Name:         m.Name,
			Dosage:       m.Dosage,
			Frequency:    m.Frequency,
			Time:         m.Time,
			Instructions: m.Instructions,
			IsActive:     m.IsActive,
			StartDate:    m.StartDate,
			EndDate:      m.EndDate,
			LastTaken:    lastTaken,
		})
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, userID int64, role domain.UserRole, req CreateRequest) (*domain.Medication, error) {
	if role == domain.RoleCaretaker && req.ElderID == 0 {
		return nil, ErrValidation
	}
	target, err := s.scope.Target(ctx, userID, role, req.ElderID)
	if err != nil {
		return nil, mapAccessErr(err)
	}

	m := &domain.Medication{
		ElderID:      target.ID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Time:         req.Time,
		Instructions: req.Instructions,
		IsActive:     true,
		StartDate:    parseDate(req.StartDate),
		EndDate:      parseDate(req.EndDate),
	}

	if err := s.medications.Create(ctx, m); err != nil {
		return nil, err
	}

	if caretakerID, _ := s.scope.CaretakerOf(ctx, target.ID); caretakerID != nil {
		s.events.MedicationAdded(*caretakerID, m.ID, target.ID, m.Name)
	}

	return m, nil
}

func (s *Service) Update(ctx context.Context, userID int64, role domain.UserRole, medicationID int64, req UpdateRequest) (*domain.Medication, error) {
	m, err := s.medications.GetByID(ctx, medicationID)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.scope.Authorize(ctx, userID, role, m.ElderID); err != nil {
		return nil, mapAccessErr(err)
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Dosage != nil {
		m.Dosage = *req.Dosage
	}
	if req.Frequency != nil {
		m.Frequency = *req.Frequency
	}
	if req.Time != nil {
		m.Time = *req.Time
	}
	if req.Instructions != nil {
		m.Instructions = *req.Instructions
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if err := s.medications.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Deactivate(ctx context.Context, userID int64, role domain.UserRole, medicationID int64) error {
	m, err := s.medications.GetByID(ctx, medicationID)
	if err != nil {
		return ErrNotFound
	}
	if err := s.scope.Authorize(ctx, userID, role, m.ElderID); err != nil {
		return mapAccessErr(err)
	}
	return s.medications.Deactivate(ctx, medicationID)
}

// LogTaken records a dose and tells the linked caretaker, both through the
// server feed and the live channel.
func (s *Service) LogTaken(ctx context.Context, userID int64, role domain.UserRole, medicationID int64, req LogRequest) (*domain.MedicationLog, error) {
	m, err := s.medications.GetByID(ctx, medicationID)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.scope.Authorize(ctx, userID, role, m.ElderID); err != nil {
		return nil, mapAccessErr(err)
	}

	status := domain.MedicationLogStatus(req.Status)
	if status == "" {
		status = domain.MedicationTaken
	}

	l := &domain.MedicationLog{
		MedicationID: medicationID,
		Status:       status,
		Notes:        req.Notes,
		TakenAt:      time.Now(),
	}
	if err := s.medications.CreateLog(ctx, l); err != nil {
		return nil, err
	}

	caretakerID, elderName := s.scope.CaretakerOf(ctx, m.ElderID)
	if caretakerID == nil {
		return l, nil
	}

	elderID := m.ElderID
	// Feed write is best-effort; the log row is the record.
	_ = s.notifs.Create(ctx, &domain.Notification{
		ElderID:         &elderID,
		RecipientUserID: *caretakerID,
		Title:           "Medication Taken",
		Message:         fmt.Sprintf("%s took %s", elderName, m.Name),
		Type:            "medication",
	})

	s.events.MedicationLogged(*caretakerID, medicationID, m.ElderID, elderName, m.Name, string(status), l.TakenAt)

	return l, nil
}

func mapAccessErr(err error) error {
	if errors.Is(err, access.ErrForbidden) {
		return ErrForbidden
	}
	return err
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
