package meal

import (
	"context"
	"time"

	"gentlecare/internal/domain"
)

type MealRepository interface {
	Create(ctx context.Context, m *domain.Meal) error
	GetByID(ctx context.Context, id int64) (*domain.Meal, error)
	ListByElder(ctx context.Context, elderID int64, day *time.Time) ([]domain.Meal, error)
	MarkConsumed(ctx context.Context, id int64, at time.Time) error
}

type NotificationCreator interface {
	Create(ctx context.Context, n *domain.Notification) error
}

type Events interface {
	MealConsumed(caretakerUserID, mealID, elderProfileID int64, elderName, mealType, mealName string)
}
