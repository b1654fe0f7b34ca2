package notifier

import "time"

// Category tags the rule that produced a notification.
type Category string

const (
	CategoryMedication  Category = "medication"
	CategoryMeal        Category = "meal"
	CategoryAppointment Category = "appointment"
	CategoryHealth      Category = "health"
	CategoryReminder    Category = "reminder"
)

// Payload is the typed metadata attached to a candidate. One shape per
// rule category, so consumers can switch on the concrete type instead of
// digging through an untyped map.
type Payload interface {
	Category() Category
}

type MedicationPayload struct {
	MedicationID int64  `json:"medication_id"`
	Name         string `json:"name,omitempty"`
	Urgent       bool   `json:"urgent,omitempty"`
}

func (MedicationPayload) Category() Category { return CategoryMedication }

type MealPayload struct {
	MealType string `json:"meal_type"`
}

func (MealPayload) Category() Category { return CategoryMeal }

type AppointmentPayload struct {
	AppointmentID int64 `json:"appointment_id"`
	Urgent        bool  `json:"urgent,omitempty"`
}

func (AppointmentPayload) Category() Category { return CategoryAppointment }

type HealthPayload struct {
	Subtype string `json:"subtype"`
}

func (HealthPayload) Category() Category { return CategoryHealth }

// Candidate is a notification a rule proposes; it has not been delivered
// or stored yet.
type Candidate struct {
	Title   string
	Body    string
	Payload Payload
}

// PayloadData is the wire form of a Payload inside a stored notification.
// Which fields are set depends on the notification type.
type PayloadData struct {
	MedicationID  int64  `json:"medication_id,omitempty"`
	AppointmentID int64  `json:"appointment_id,omitempty"`
	MealType      string `json:"meal_type,omitempty"`
	Subtype       string `json:"subtype,omitempty"`
	Name          string `json:"name,omitempty"`
	Urgent        bool   `json:"urgent,omitempty"`
}

func encodePayload(p Payload) PayloadData {
	switch v := p.(type) {
	case MedicationPayload:
		return PayloadData{MedicationID: v.MedicationID, Name: v.Name, Urgent: v.Urgent}
	case MealPayload:
		return PayloadData{MealType: v.MealType}
	case AppointmentPayload:
		return PayloadData{AppointmentID: v.AppointmentID, Urgent: v.Urgent}
	case HealthPayload:
		return PayloadData{Subtype: v.Subtype}
	default:
		return PayloadData{}
	}
}

// Notification is an entry in the local rolling log. Distinct from
// domain.Notification, which is the server-side per-user feed.
type Notification struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	Type      Category    `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	IsRead    bool        `json:"is_read"`
	Data      PayloadData `json:"data,omitempty"`
}
