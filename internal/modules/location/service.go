package location

import (
	"context"
	"errors"

	"gentlecare/internal/domain"
	"gentlecare/internal/modules/access"
)

type Service struct {
	locations LocationRepository
	scope     *access.Resolver
	events    Events
}

func NewService(locations LocationRepository, scope *access.Resolver, events Events) *Service {
	return &Service{locations: locations, scope: scope, events: events}
}

// Update records the elder's position and pushes it to the caretaker.
// The route is elder-only; Target resolves the caller's own profile.
func (s *Service) Update(ctx context.Context, userID int64, role domain.UserRole, req UpdateRequest) (*domain.LocationLog, error) {
	target, err := s.scope.Target(ctx, userID, role, 0)
	if err != nil {
		if errors.Is(err, access.ErrForbidden) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	l := &domain.LocationLog{
		ElderID:   target.ID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
	}
	if err := s.locations.Create(ctx, l); err != nil {
		return nil, err
	}

	if caretakerID, elderName := s.scope.CaretakerOf(ctx, target.ID); caretakerID != nil {
		s.events.LocationUpdated(*caretakerID, target.ID, elderName, l.Latitude, l.Longitude, l.Accuracy, l.RecordedAt)
	}

	return l, nil
}

// Latest returns the most recent position for an elder in the caller's scope.
func (s *Service) Latest(ctx context.Context, userID int64, role domain.UserRole, elderID int64) (*domain.LocationLog, error) {
	target, err := s.scope.Target(ctx, userID, role, elderID)
	if err != nil {
		if errors.Is(err, access.ErrForbidden) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	l, err := s.locations.Latest(ctx, target.ID)
	if err != nil {
		return nil, ErrNotFound
	}
	return l, nil
}
