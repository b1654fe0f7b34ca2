// Package access centralizes the elder/caretaker scoping rules shared by
// the care modules: an elder acts on their own profile, a caretaker on any
// linked elder.
package access

import (
	"context"
	"errors"

	"gentlecare/internal/domain"
)

var ErrForbidden = errors.New("elder is not in the caller's scope")

type ProfileRepository interface {
	GetElderByUserID(ctx context.Context, userID int64) (*domain.ElderProfile, error)
	GetElderByID(ctx context.Context, id int64) (*domain.ElderProfile, error)
	EldersOfCaretaker(ctx context.Context, caretakerUserID int64) ([]domain.ElderProfile, error)
}

type Resolver struct {
	profiles ProfileRepository
}

func NewResolver(profiles ProfileRepository) *Resolver {
	return &Resolver{profiles: profiles}
}

// Scope lists the elder profiles the caller may read or write.
func (r *Resolver) Scope(ctx context.Context, userID int64, role domain.UserRole) ([]domain.ElderProfile, error) {
	if role == domain.RoleElder {
		p, err := r.profiles.GetElderByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return []domain.ElderProfile{*p}, nil
	}
	return r.profiles.EldersOfCaretaker(ctx, userID)
}

// Target resolves the elder profile a write should land on. Elders always
// target themselves; caretakers must name a linked elder (requested == 0
// means they named none).
func (r *Resolver) Target(ctx context.Context, userID int64, role domain.UserRole, requested int64) (*domain.ElderProfile, error) {
	if role == domain.RoleElder {
		return r.profiles.GetElderByUserID(ctx, userID)
	}

	if requested == 0 {
		return nil, ErrForbidden
	}
	elders, err := r.profiles.EldersOfCaretaker(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range elders {
		if elders[i].ID == requested {
			return &elders[i], nil
		}
	}
	return nil, ErrForbidden
}

// Authorize checks that elderID is within the caller's scope.
func (r *Resolver) Authorize(ctx context.Context, userID int64, role domain.UserRole, elderID int64) error {
	elders, err := r.Scope(ctx, userID, role)
	if err != nil {
		return err
	}
	for _, e := range elders {
		if e.ID == elderID {
			return nil
		}
	}
	return ErrForbidden
}

// CaretakerOf returns the linked caretaker's user ID and the elder's display
// name, or (nil, "") when the elder is unlinked.
func (r *Resolver) CaretakerOf(ctx context.Context, elderProfileID int64) (*int64, string) {
	p, err := r.profiles.GetElderByID(ctx, elderProfileID)
	if err != nil {
		return nil, ""
	}
	name := ""
	if p.User != nil {
		name = p.User.FullName
	}
	return p.CaretakerID, name
}
