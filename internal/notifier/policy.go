package notifier

import "time"

// MealSlot pairs a meal type with the hour of day after which it counts as
// due.
type MealSlot struct {
	Type  string
	Label string
	Hour  int
}

// Policy holds the reminder thresholds. The defaults reproduce the
// behaviour the mobile app shipped with; env config may override the
// tunable ones (see config.Load).
type Policy struct {
	// CheckInterval is the scheduler period.
	CheckInterval time.Duration

	// UpcomingWindow is how far ahead of a scheduled dose the reminder
	// fires.
	UpcomingWindow time.Duration

	// MissedGrace is how far past a scheduled dose counts as missed when
	// no dose was logged today.
	MissedGrace time.Duration

	// CalorieFloor is the daily intake below which the evening nutrition
	// alert fires.
	CalorieFloor int

	// NutritionCheckHour is the hour of day from which the calorie total
	// is checked.
	NutritionCheckHour int

	// MealSlots lists the fixed meal schedule, in slot order.
	MealSlots []MealSlot

	// HealthCheckHours are the hours at which a vitals-logging reminder
	// fires when nothing was recorded in the last day.
	HealthCheckHours []int
}

func DefaultPolicy() Policy {
	return Policy{
		CheckInterval:      15 * time.Minute,
		UpcomingWindow:     15 * time.Minute,
		MissedGrace:        2 * time.Hour,
		CalorieFloor:       1500,
		NutritionCheckHour: 20,
		MealSlots: []MealSlot{
			{Type: "breakfast", Label: "Breakfast", Hour: 8},
			{Type: "lunch", Label: "Lunch", Hour: 13},
			{Type: "snack", Label: "Snack", Hour: 16},
			{Type: "dinner", Label: "Dinner", Hour: 19},
		},
		HealthCheckHours: []int{8, 20},
	}
}
