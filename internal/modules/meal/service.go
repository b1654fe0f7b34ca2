package meal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gentlecare/internal/domain"
	"gentlecare/internal/modules/access"
)

type Service struct {
	meals  MealRepository
	scope  *access.Resolver
	notifs NotificationCreator
	events Events
}

func NewService(meals MealRepository, scope *access.Resolver, notifs NotificationCreator, events Events) *Service {
	return &Service{meals: meals, scope: scope, notifs: notifs, events: events}
}

// List returns the meals for one elder on one calendar day, plus the
// consumed totals for that day. An empty date means today.
func (s *Service) List(ctx context.Context, userID int64, role domain.UserRole, q ListQuery) ([]domain.Meal, *DaySummary, error) {
	target, err := s.scope.Target(ctx, userID, role, q.ElderID)
	if err != nil {
		return nil, nil, mapAccessErr(err)
	}

	day := time.Now()
	if q.Date != "" {
		parsed, err := time.Parse("2006-01-02", q.Date)
		if err != nil {
			return nil, nil, ErrValidation
		}
		day = parsed
	}

	meals, err := s.meals.ListByElder(ctx, target.ID, &day)
	if err != nil {
		return nil, nil, err
	}

	summary := &DaySummary{}
	for _, m := range meals {
		if !m.Consumed {
			continue
		}
		summary.TotalCalories += m.Calories
		summary.TotalProtein += m.Protein
		summary.TotalCarbs += m.Carbs
		summary.TotalFats += m.Fats
		summary.MealsConsumed++
	}

	return meals, summary, nil
}

func (s *Service) Create(ctx context.Context, userID int64, role domain.UserRole, req CreateRequest) (*domain.Meal, error) {
	if role == domain.RoleCaretaker && req.ElderID == 0 {
		return nil, ErrValidation
	}
	target, err := s.scope.Target(ctx, userID, role, req.ElderID)
	if err != nil {
		return nil, mapAccessErr(err)
	}

	m := &domain.Meal{
		ElderID:  target.ID,
		MealType: domain.MealType(req.MealType),
		MealName: req.MealName,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
		Notes:    req.Notes,
	}
	if err := s.meals.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Consume marks a meal eaten and tells the linked caretaker.
func (s *Service) Consume(ctx context.Context, userID int64, role domain.UserRole, mealID int64) (*domain.Meal, error) {
	m, err := s.meals.GetByID(ctx, mealID)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.scope.Authorize(ctx, userID, role, m.ElderID); err != nil {
		return nil, mapAccessErr(err)
	}

	now := time.Now()
	if err := s.meals.MarkConsumed(ctx, mealID, now); err != nil {
		return nil, err
	}
	m.Consumed = true
	m.ConsumedAt = &now

	caretakerID, elderName := s.scope.CaretakerOf(ctx, m.ElderID)
	if caretakerID == nil {
		return m, nil
	}

	elderID := m.ElderID
	_ = s.notifs.Create(ctx, &domain.Notification{
		ElderID:         &elderID,
		RecipientUserID: *caretakerID,
		Title:           "Meal Logged",
		Message:         fmt.Sprintf("%s had %s", elderName, mealLabel(m)),
		Type:            "meal",
	})

	s.events.MealConsumed(*caretakerID, m.ID, m.ElderID, elderName, string(m.MealType), m.MealName)

	return m, nil
}

func mealLabel(m *domain.Meal) string {
	if m.MealName != "" {
		return m.MealName
	}
	return string(m.MealType)
}

func mapAccessErr(err error) error {
	if errors.Is(err, access.ErrForbidden) {
		return ErrForbidden
	}
	return err
}
