package auth

import (
	"context"

	"gentlecare/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type ProfileRepository interface {
	CreateElder(ctx context.Context, p *domain.ElderProfile) error
	CreateCaretaker(ctx context.Context, p *domain.CaretakerProfile) error
	GetElderByUserID(ctx context.Context, userID int64) (*domain.ElderProfile, error)
	GetCaretakerByUserID(ctx context.Context, userID int64) (*domain.CaretakerProfile, error)
	EldersOfCaretaker(ctx context.Context, caretakerUserID int64) ([]domain.ElderProfile, error)
	SetCaretaker(ctx context.Context, elderProfileID, caretakerUserID int64) error
}

// Events is the real-time surface this module emits on; implemented by
// realtime.Publisher.
type Events interface {
	ElderLinked(caretakerUserID, elderProfileID int64, elderName string)
}
