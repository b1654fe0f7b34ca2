package notifier

import (
	"fmt"
	"time"
)

// The evaluators are pure: snapshot + clock in, candidates out. No I/O,
// no ordering dependency between categories.

// EvaluateMedications emits an upcoming-dose reminder when a dose is due
// within the policy window, and a missed-dose alert when a dose is more
// than the grace period overdue with nothing logged today. Inactive
// medications are skipped. Unparsable time strings evaluate as 00:00;
// such medications look "missed" shortly after midnight, which matches the
// behaviour the app always had.
func EvaluateMedications(meds []MedicationSnapshot, now time.Time, p Policy) []Candidate {
	nowMinutes := now.Hour()*60 + now.Minute()
	window := int(p.UpcomingWindow.Minutes())
	grace := int(p.MissedGrace.Minutes())

	var out []Candidate
	for _, med := range meds {
		if !med.IsActive {
			continue
		}

		hour, minute := ParseClockTime(med.Time)
		medMinutes := hour*60 + minute

		diff := medMinutes - nowMinutes
		if diff < 0 {
			diff = -diff
		}

		if diff > 0 && diff <= window {
			out = append(out, Candidate{
				Title: "💊 Medication Reminder",
				Body:  fmt.Sprintf("Time to take %s (%s)", med.Name, med.Dosage),
				Payload: MedicationPayload{
					MedicationID: med.ID,
					Name:         med.Name,
				},
			})
		}

		if medMinutes < nowMinutes && nowMinutes-medMinutes > grace {
			if med.LastTaken == nil || !sameDay(*med.LastTaken, now) {
				out = append(out, Candidate{
					Title: "⚠️ Missed Medication",
					Body:  fmt.Sprintf("You haven't taken %s today. Please take it soon.", med.Name),
					Payload: MedicationPayload{
						MedicationID: med.ID,
						Urgent:       true,
					},
				})
			}
		}
	}
	return out
}

// EvaluateMeals reminds about every meal slot whose hour has passed without
// a logged meal of that type, and raises a nutrition alert in the evening
// when the calorie total is under the floor.
func EvaluateMeals(meals []MealSnapshot, now time.Time, p Policy) []Candidate {
	currentHour := now.Hour()

	logged := make(map[string]bool, len(meals))
	totalCalories := 0
	for _, m := range meals {
		logged[m.MealType] = true
		totalCalories += m.Calories
	}

	var out []Candidate
	for _, slot := range p.MealSlots {
		if currentHour >= slot.Hour && !logged[slot.Type] {
			out = append(out, Candidate{
				Title:   fmt.Sprintf("🍽️ %s Time", slot.Label),
				Body:    fmt.Sprintf("Don't forget to log your %s!", slot.Type),
				Payload: MealPayload{MealType: slot.Type},
			})
		}
	}

	if currentHour >= p.NutritionCheckHour && totalCalories < p.CalorieFloor {
		out = append(out, Candidate{
			Title:   "📊 Nutrition Alert",
			Body:    fmt.Sprintf("You've consumed %d calories today. Try to reach your daily goal!", totalCalories),
			Payload: HealthPayload{Subtype: "nutrition"},
		})
	}

	return out
}

// EvaluateAppointments emits a next-day reminder in the (23h, 24h] window
// before a scheduled appointment and an urgent reminder in the (30m, 1h]
// window. Completed and cancelled appointments are ignored.
func EvaluateAppointments(apts []AppointmentSnapshot, now time.Time) []Candidate {
	var out []Candidate
	for _, apt := range apts {
		if apt.Status != "scheduled" {
			continue
		}

		hoursDiff := apt.Date.Sub(now).Hours()

		if hoursDiff > 23 && hoursDiff <= 24 {
			out = append(out, Candidate{
				Title:   "📅 Upcoming Appointment",
				Body:    fmt.Sprintf("Tomorrow: %s at %s", apt.Title, apt.Date.Format("3:04 PM")),
				Payload: AppointmentPayload{AppointmentID: apt.ID},
			})
		}

		if hoursDiff > 0.5 && hoursDiff <= 1 {
			body := fmt.Sprintf("%s is in 1 hour", apt.Title)
			if apt.Location != "" {
				body += " at " + apt.Location
			}
			out = append(out, Candidate{
				Title:   "⏰ Appointment Soon",
				Body:    body,
				Payload: AppointmentPayload{AppointmentID: apt.ID, Urgent: true},
			})
		}
	}
	return out
}

// EvaluateHealth reminds about logging vitals at the configured hours when
// nothing was recorded in the last day.
func EvaluateHealth(records []HealthRecordSnapshot, now time.Time, p Policy) []Candidate {
	if len(records) > 0 {
		return nil
	}

	currentHour := now.Hour()
	for _, h := range p.HealthCheckHours {
		if currentHour == h {
			return []Candidate{{
				Title:   "❤️ Health Check",
				Body:    "Time to log your health vitals (blood pressure, heart rate, etc.)",
				Payload: HealthPayload{Subtype: "vitals"},
			}}
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
