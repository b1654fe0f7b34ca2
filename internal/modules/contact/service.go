package contact

import (
	"context"
	"errors"

	"gentlecare/internal/domain"
	"gentlecare/internal/modules/access"
)

type Service struct {
	contacts ContactRepository
	scope    *access.Resolver
}

func NewService(contacts ContactRepository, scope *access.Resolver) *Service {
	return &Service{contacts: contacts, scope: scope}
}

func (s *Service) List(ctx context.Context, userID int64, role domain.UserRole, elderID int64) ([]domain.EmergencyContact, error) {
	target, err := s.scope.Target(ctx, userID, role, elderID)
	if err != nil {
		return nil, mapAccessErr(err)
	}
	return s.contacts.ListByElder(ctx, target.ID)
}

func (s *Service) Create(ctx context.Context, userID int64, role domain.UserRole, req CreateRequest) (*domain.EmergencyContact, error) {
	if role == domain.RoleCaretaker && req.ElderID == 0 {
		return nil, ErrValidation
	}
	target, err := s.scope.Target(ctx, userID, role, req.ElderID)
	if err != nil {
		return nil, mapAccessErr(err)
	}

	c := &domain.EmergencyContact{
		ElderID:      target.ID,
		Name:         req.Name,
		Relationship: req.Relationship,
		Phone:        req.Phone,
		Email:        req.Email,
		IsPrimary:    req.IsPrimary,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, userID int64, role domain.UserRole, contactID int64, req UpdateRequest) (*domain.EmergencyContact, error) {
	c, err := s.contacts.GetByID(ctx, contactID)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.scope.Authorize(ctx, userID, role, c.ElderID); err != nil {
		return nil, mapAccessErr(err)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Relationship != nil {
		c.Relationship = *req.Relationship
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.IsPrimary != nil {
		c.IsPrimary = *req.IsPrimary
	}

	if err := s.contacts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, userID int64, role domain.UserRole, contactID int64) error {
	c, err := s.contacts.GetByID(ctx, contactID)
	if err != nil {
		return ErrNotFound
	}
	if err := s.scope.Authorize(ctx, userID, role, c.ElderID); err != nil {
		return mapAccessErr(err)
	}
	return s.contacts.Delete(ctx, contactID)
}

func mapAccessErr(err error) error {
	if errors.Is(err, access.ErrForbidden) {
		return ErrForbidden
	}
	return err
}
