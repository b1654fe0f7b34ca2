package contact

import (
	"context"

	"gentlecare/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, c *domain.EmergencyContact) error
	GetByID(ctx context.Context, id int64) (*domain.EmergencyContact, error)
	ListByElder(ctx context.Context, elderID int64) ([]domain.EmergencyContact, error)
	Update(ctx context.Context, c *domain.EmergencyContact) error
	Delete(ctx context.Context, id int64) error
}
