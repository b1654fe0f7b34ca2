package health

import (
	"context"
	"errors"
	"fmt"

	"gentlecare/internal/domain"
	"gentlecare/internal/modules/access"
)

type Service struct {
	records HealthRecordRepository
	scope   *access.Resolver
	notifs  NotificationCreator
	events  Events
}

func NewService(records HealthRecordRepository, scope *access.Resolver, notifs NotificationCreator, events Events) *Service {
	return &Service{records: records, scope: scope, notifs: notifs, events: events}
}

func (s *Service) List(ctx context.Context, userID int64, role domain.UserRole, q ListQuery) ([]domain.HealthRecord, error) {
	target, err := s.scope.Target(ctx, userID, role, q.ElderID)
	if err != nil {
		return nil, mapAccessErr(err)
	}
	return s.records.List(ctx, target.ID, q.Type, q.Days)
}

func (s *Service) Create(ctx context.Context, userID int64, role domain.UserRole, req CreateRequest) (*domain.HealthRecord, error) {
	if role == domain.RoleCaretaker && req.ElderID == 0 {
		return nil, ErrValidation
	}
	target, err := s.scope.Target(ctx, userID, role, req.ElderID)
	if err != nil {
		return nil, mapAccessErr(err)
	}

	rec := &domain.HealthRecord{
		ElderID:    target.ID,
		RecordType: req.Type,
		Value:      req.Value,
		Unit:       req.Unit,
		Notes:      req.Notes,
	}
	if err := s.records.Create(ctx, rec); err != nil {
		return nil, err
	}

	if caretakerID, elderName := s.scope.CaretakerOf(ctx, target.ID); caretakerID != nil && *caretakerID != userID {
		elderID := target.ID
		_ = s.notifs.Create(ctx, &domain.Notification{
			ElderID:         &elderID,
			RecipientUserID: *caretakerID,
			Title:           "Health Record",
			Message:         fmt.Sprintf("%s logged %s: %s %s", elderName, rec.RecordType, rec.Value, rec.Unit),
			Type:            "health",
		})
		s.events.HealthRecordAdded(*caretakerID, target.ID, elderName, rec.RecordType, rec.Value, rec.Unit)
	}

	return rec, nil
}

func mapAccessErr(err error) error {
	if errors.Is(err, access.ErrForbidden) {
		return ErrForbidden
	}
	return err
}
