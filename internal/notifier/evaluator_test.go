package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
}

func TestEvaluateMedications_UpcomingWindow(t *testing.T) {
	p := DefaultPolicy()
	med := MedicationSnapshot{ID: 1, Name: "Lisinopril", Dosage: "10mg", Time: "10:00 AM", IsActive: true}

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"10 minutes before", at(9, 50), true},
		{"exactly at window edge", at(9, 45), true},
		{"16 minutes before", at(9, 44), false},
		{"exactly due", at(10, 0), false}, // diff == 0 does not fire
		{"1 minute after", at(10, 1), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := EvaluateMedications([]MedicationSnapshot{med}, tc.now, p)
			if tc.want {
				require.Len(t, out, 1)
				assert.Equal(t, "💊 Medication Reminder", out[0].Title)
				assert.Contains(t, out[0].Body, "Lisinopril")
				assert.Contains(t, out[0].Body, "10mg")
			} else {
				assert.Empty(t, out)
			}
		})
	}
}

func TestEvaluateMedications_Missed(t *testing.T) {
	p := DefaultPolicy()
	med := MedicationSnapshot{ID: 1, Name: "Metformin", Time: "8:00 AM", IsActive: true}

	t.Run("exactly at grace boundary does not fire", func(t *testing.T) {
		out := EvaluateMedications([]MedicationSnapshot{med}, at(10, 0), p)
		assert.Empty(t, out)
	})

	t.Run("one minute past grace fires", func(t *testing.T) {
		out := EvaluateMedications([]MedicationSnapshot{med}, at(10, 1), p)
		require.Len(t, out, 1)
		assert.Equal(t, "⚠️ Missed Medication", out[0].Title)
		payload := out[0].Payload.(MedicationPayload)
		assert.True(t, payload.Urgent)
	})

	t.Run("taken today suppresses the alert", func(t *testing.T) {
		taken := at(8, 5)
		m := med
		m.LastTaken = &taken
		out := EvaluateMedications([]MedicationSnapshot{m}, at(11, 0), p)
		assert.Empty(t, out)
	})

	t.Run("taken yesterday still fires", func(t *testing.T) {
		taken := at(8, 5).AddDate(0, 0, -1)
		m := med
		m.LastTaken = &taken
		out := EvaluateMedications([]MedicationSnapshot{m}, at(11, 0), p)
		require.Len(t, out, 1)
		assert.Equal(t, "⚠️ Missed Medication", out[0].Title)
	})

	t.Run("inactive medication is skipped", func(t *testing.T) {
		m := med
		m.IsActive = false
		out := EvaluateMedications([]MedicationSnapshot{m}, at(11, 0), p)
		assert.Empty(t, out)
	})
}

func TestEvaluateMedications_UnparsableTime(t *testing.T) {
	p := DefaultPolicy()
	med := MedicationSnapshot{ID: 1, Name: "Vitamin D", Time: "Morning", IsActive: true}

	// "Morning" parses as 00:00, so past the grace period it reads as missed.
	out := EvaluateMedications([]MedicationSnapshot{med}, at(3, 0), p)
	require.Len(t, out, 1)
	assert.Equal(t, "⚠️ Missed Medication", out[0].Title)

	// Shortly after midnight nothing fires.
	out = EvaluateMedications([]MedicationSnapshot{med}, at(1, 0), p)
	assert.Empty(t, out)
}

func TestEvaluateMeals_SlotReminders(t *testing.T) {
	p := DefaultPolicy()

	t.Run("before breakfast nothing fires", func(t *testing.T) {
		out := EvaluateMeals(nil, at(7, 30), p)
		assert.Empty(t, out)
	})

	t.Run("mid afternoon reminds all passed slots", func(t *testing.T) {
		out := EvaluateMeals(nil, at(16, 30), p)
		require.Len(t, out, 3) // breakfast, lunch, snack
		assert.Equal(t, "🍽️ Breakfast Time", out[0].Title)
		assert.Equal(t, "🍽️ Lunch Time", out[1].Title)
		assert.Equal(t, "🍽️ Snack Time", out[2].Title)
	})

	t.Run("logged meal types are skipped", func(t *testing.T) {
		meals := []MealSnapshot{
			{MealType: "breakfast", Calories: 300},
			{MealType: "lunch", Calories: 500},
		}
		out := EvaluateMeals(meals, at(16, 30), p)
		require.Len(t, out, 1)
		assert.Equal(t, MealPayload{MealType: "snack"}, out[0].Payload)
	})
}

func TestEvaluateMeals_NutritionAlert(t *testing.T) {
	p := DefaultPolicy()
	meals := []MealSnapshot{
		{MealType: "breakfast", Calories: 300},
		{MealType: "lunch", Calories: 400},
		{MealType: "snack", Calories: 100},
		{MealType: "dinner", Calories: 400},
	}

	t.Run("under floor in the evening", func(t *testing.T) {
		out := EvaluateMeals(meals, at(20, 0), p)
		require.Len(t, out, 1)
		assert.Equal(t, "📊 Nutrition Alert", out[0].Title)
		assert.Contains(t, out[0].Body, "1200 calories")
		assert.Equal(t, HealthPayload{Subtype: "nutrition"}, out[0].Payload)
	})

	t.Run("under floor before the evening check stays quiet", func(t *testing.T) {
		out := EvaluateMeals(meals, at(19, 59), p)
		assert.Empty(t, out)
	})

	t.Run("at the floor no alert", func(t *testing.T) {
		enough := append(meals[:len(meals)-1:len(meals)-1], MealSnapshot{MealType: "dinner", Calories: 700})
		out := EvaluateMeals(enough, at(20, 0), p)
		assert.Empty(t, out)
	})
}

func TestEvaluateAppointments(t *testing.T) {
	now := at(10, 0)

	t.Run("next-day window", func(t *testing.T) {
		apt := AppointmentSnapshot{ID: 1, Title: "Cardiology", Date: now.Add(23*time.Hour + 30*time.Minute), Status: "scheduled"}
		out := EvaluateAppointments([]AppointmentSnapshot{apt}, now)
		require.Len(t, out, 1)
		assert.Equal(t, "📅 Upcoming Appointment", out[0].Title)
		assert.Contains(t, out[0].Body, "Tomorrow: Cardiology")
	})

	t.Run("exactly 24 hours is inside the window", func(t *testing.T) {
		apt := AppointmentSnapshot{ID: 1, Title: "Cardiology", Date: now.Add(24 * time.Hour), Status: "scheduled"}
		out := EvaluateAppointments([]AppointmentSnapshot{apt}, now)
		require.Len(t, out, 1)
	})

	t.Run("exactly 23 hours is outside", func(t *testing.T) {
		apt := AppointmentSnapshot{ID: 1, Title: "Cardiology", Date: now.Add(23 * time.Hour), Status: "scheduled"}
		out := EvaluateAppointments([]AppointmentSnapshot{apt}, now)
		assert.Empty(t, out)
	})

	t.Run("urgent window includes location", func(t *testing.T) {
		apt := AppointmentSnapshot{ID: 2, Title: "Dentist", Location: "Clinic B", Date: now.Add(45 * time.Minute), Status: "scheduled"}
		out := EvaluateAppointments([]AppointmentSnapshot{apt}, now)
		require.Len(t, out, 1)
		assert.Equal(t, "⏰ Appointment Soon", out[0].Title)
		assert.Equal(t, "Dentist is in 1 hour at Clinic B", out[0].Body)
		assert.True(t, out[0].Payload.(AppointmentPayload).Urgent)
	})

	t.Run("exactly 30 minutes is outside the urgent window", func(t *testing.T) {
		apt := AppointmentSnapshot{ID: 2, Title: "Dentist", Date: now.Add(30 * time.Minute), Status: "scheduled"}
		out := EvaluateAppointments([]AppointmentSnapshot{apt}, now)
		assert.Empty(t, out)
	})

	t.Run("cancelled appointments are ignored", func(t *testing.T) {
		apt := AppointmentSnapshot{ID: 3, Title: "Checkup", Date: now.Add(45 * time.Minute), Status: "cancelled"}
		out := EvaluateAppointments([]AppointmentSnapshot{apt}, now)
		assert.Empty(t, out)
	})

	t.Run("past appointments never fire", func(t *testing.T) {
		apt := AppointmentSnapshot{ID: 4, Title: "Checkup", Date: now.Add(-1 * time.Hour), Status: "scheduled"}
		out := EvaluateAppointments([]AppointmentSnapshot{apt}, now)
		assert.Empty(t, out)
	})
}

func TestEvaluateHealth(t *testing.T) {
	p := DefaultPolicy()

	t.Run("fires at check hours with no records", func(t *testing.T) {
		for _, hour := range []int{8, 20} {
			out := EvaluateHealth(nil, at(hour, 30), p)
			require.Len(t, out, 1, "hour %d", hour)
			assert.Equal(t, "❤️ Health Check", out[0].Title)
			assert.Equal(t, HealthPayload{Subtype: "vitals"}, out[0].Payload)
		}
	})

	t.Run("quiet outside check hours", func(t *testing.T) {
		out := EvaluateHealth(nil, at(12, 0), p)
		assert.Empty(t, out)
	})

	t.Run("any recent record suppresses it", func(t *testing.T) {
		records := []HealthRecordSnapshot{{RecordedAt: at(7, 0)}}
		out := EvaluateHealth(records, at(8, 0), p)
		assert.Empty(t, out)
	})
}
