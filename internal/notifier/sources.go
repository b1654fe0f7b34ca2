package notifier

import (
	"context"
	"time"

	"gentlecare/internal/repository"
)

// Elder identifies one elder the engine evaluates, with the users who
// should receive the resulting notifications.
type Elder struct {
	ProfileID       int64
	UserID          int64
	CaretakerUserID *int64
}

// Snapshot types carry only the fields the rules read, so tests and
// alternative sources stay small.

type MedicationSnapshot struct {
	ID        int64
	Name      string
	Dosage    string
	Time      string
	IsActive  bool
	LastTaken *time.Time
}

type MealSnapshot struct {
	MealType string
	Calories int
}

type AppointmentSnapshot struct {
	ID       int64
	Title    string
	Location string
	Date     time.Time
	Status   string
}

type HealthRecordSnapshot struct {
	RecordedAt time.Time
}

// Source supplies point-in-time resource snapshots for evaluation. Each
// method is fetched independently per tick; a failure in one must not stop
// the others (the engine isolates them).
type Source interface {
	Elders(ctx context.Context) ([]Elder, error)
	Medications(ctx context.Context, elderID int64) ([]MedicationSnapshot, error)
	MealsForDay(ctx context.Context, elderID int64, day time.Time) ([]MealSnapshot, error)
	Appointments(ctx context.Context, elderID int64) ([]AppointmentSnapshot, error)
	HealthRecordsSince(ctx context.Context, elderID int64, since time.Time) ([]HealthRecordSnapshot, error)
}

// RepoSource adapts the gorm repositories to the Source interface.
type RepoSource struct {
	profiles     *repository.ProfileRepository
	medications  *repository.MedicationRepository
	meals        *repository.MealRepository
	appointments *repository.AppointmentRepository
	health       *repository.HealthRecordRepository
}

func NewRepoSource(
	profiles *repository.ProfileRepository,
	medications *repository.MedicationRepository,
	meals *repository.MealRepository,
	appointments *repository.AppointmentRepository,
	health *repository.HealthRecordRepository,
) *RepoSource {
	return &RepoSource{
		profiles:     profiles,
		medications:  medications,
		meals:        meals,
		appointments: appointments,
		health:       health,
	}
}

func (s *RepoSource) Elders(ctx context.Context) ([]Elder, error) {
	profiles, err := s.profiles.AllElders(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Elder, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, Elder{
			ProfileID:       p.ID,
			UserID:          p.UserID,
			CaretakerUserID: p.CaretakerID,
		})
	}
	return out, nil
}

func (s *RepoSource) Medications(ctx context.Context, elderID int64) ([]MedicationSnapshot, error) {
	meds, err := s.medications.ListActiveByElders(ctx, []int64{elderID})
	if err != nil {
		return nil, err
	}

	out := make([]MedicationSnapshot, 0, len(meds))
	for _, m := range meds {
		lastTaken, err := s.medications.LastTaken(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, MedicationSnapshot{
			ID:        m.ID,
			Name:      m.Name,
			Dosage:    m.Dosage,
			Time:      m.Time,
			IsActive:  m.IsActive,
			LastTaken: lastTaken,
		})
	}
	return out, nil
}

func (s *RepoSource) MealsForDay(ctx context.Context, elderID int64, day time.Time) ([]MealSnapshot, error) {
	meals, err := s.meals.ListByElder(ctx, elderID, &day)
	if err != nil {
		return nil, err
	}

	out := make([]MealSnapshot, 0, len(meals))
	for _, m := range meals {
		out = append(out, MealSnapshot{
			MealType: string(m.MealType),
			Calories: m.Calories,
		})
	}
	return out, nil
}

func (s *RepoSource) Appointments(ctx context.Context, elderID int64) ([]AppointmentSnapshot, error) {
	apts, err := s.appointments.ListByElders(ctx, []int64{elderID})
	if err != nil {
		return nil, err
	}

	out := make([]AppointmentSnapshot, 0, len(apts))
	for _, a := range apts {
		out = append(out, AppointmentSnapshot{
			ID:       a.ID,
			Title:    a.Title,
			Location: a.Location,
			Date:     a.AppointmentDate,
			Status:   string(a.Status),
		})
	}
	return out, nil
}

func (s *RepoSource) HealthRecordsSince(ctx context.Context, elderID int64, since time.Time) ([]HealthRecordSnapshot, error) {
	days := int(time.Since(since).Hours()/24) + 1
	records, err := s.health.List(ctx, elderID, "", days)
	if err != nil {
		return nil, err
	}

	out := make([]HealthRecordSnapshot, 0, len(records))
	for _, r := range records {
		if r.RecordedAt.Before(since) {
			continue
		}
		out = append(out, HealthRecordSnapshot{RecordedAt: r.RecordedAt})
	}
	return out, nil
}

var _ Source = (*RepoSource)(nil)
