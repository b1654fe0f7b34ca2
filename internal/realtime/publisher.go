package realtime

import "time"

// Publisher exposes typed emit methods for the CRUD services, so they do
// not build Event structs by hand. All pushes are fire-and-forget: an
// offline recipient just misses the live update and sees the state on the
// next fetch.
type Publisher struct {
	hub *Hub
}

func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub}
}

func (p *Publisher) ElderLinked(caretakerUserID, elderProfileID int64, elderName string) {
	p.hub.PushToUser(caretakerUserID, &Event{
		Type: EventElderLinked,
		Payload: map[string]any{
			"elder_id":   elderProfileID,
			"elder_name": elderName,
		},
	})
}

func (p *Publisher) MedicationAdded(caretakerUserID, medicationID, elderProfileID int64, name string) {
	p.hub.PushToUser(caretakerUserID, &Event{
		Type: EventMedicationAdded,
		Payload: map[string]any{
			"medication_id": medicationID,
			"elder_id":      elderProfileID,
			"name":          name,
		},
	})
}

func (p *Publisher) MedicationLogged(caretakerUserID, medicationID, elderProfileID int64, elderName, medicationName, status string, takenAt time.Time) {
	p.hub.PushToUser(caretakerUserID, &Event{
		Type: EventMedicationLogged,
		Payload: map[string]any{
			"medication_id":   medicationID,
			"elder_id":        elderProfileID,
			"elder_name":      elderName,
			"medication_name": medicationName,
			"status":          status,
			"time":            takenAt.Format(time.RFC3339),
		},
	})
}

func (p *Publisher) MealConsumed(caretakerUserID, mealID, elderProfileID int64, elderName, mealType, mealName string) {
	p.hub.PushToUser(caretakerUserID, &Event{
		Type: EventMealConsumed,
		Payload: map[string]any{
			"meal_id":    mealID,
			"elder_id":   elderProfileID,
			"elder_name": elderName,
			"meal_type":  mealType,
			"meal_name":  mealName,
		},
	})
}

func (p *Publisher) AppointmentAdded(caretakerUserID, appointmentID, elderProfileID int64, title string, date time.Time) {
	p.hub.PushToUser(caretakerUserID, &Event{
		Type: EventAppointmentAdded,
		Payload: map[string]any{
			"appointment_id": appointmentID,
			"elder_id":       elderProfileID,
			"title":          title,
			"date":           date.Format(time.RFC3339),
		},
	})
}

func (p *Publisher) HealthRecordAdded(caretakerUserID, elderProfileID int64, elderName, recordType, value, unit string) {
	p.hub.PushToUser(caretakerUserID, &Event{
		Type: EventHealthRecordAdded,
		Payload: map[string]any{
			"elder_id":   elderProfileID,
			"elder_name": elderName,
			"type":       recordType,
			"value":      value,
			"unit":       unit,
		},
	})
}

func (p *Publisher) LocationUpdated(caretakerUserID, elderProfileID int64, elderName string, lat, lng, accuracy float64, at time.Time) {
	p.hub.PushToUser(caretakerUserID, &Event{
		Type: EventLocationUpdated,
		Payload: map[string]any{
			"elder_id":   elderProfileID,
			"elder_name": elderName,
			"latitude":   lat,
			"longitude":  lng,
			"accuracy":   accuracy,
			"timestamp":  at.Format(time.RFC3339),
		},
	})
}
