package appointment

import "time"

type CreateRequest struct {
	ElderID         int64  `json:"elder_id"` // required for caretakers, ignored for elders
	Title           string `json:"title" binding:"required"`
	DoctorName      string `json:"doctor_name"`
	Location        string `json:"location"`
	AppointmentDate string `json:"appointment_date" binding:"required"` // RFC3339
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled completed cancelled"`
}

type Response struct {
	ID              int64     `json:"id"`
	ElderID         int64     `json:"elder_id"`
	ElderName       string    `json:"elder_name,omitempty"`
	Title           string    `json:"title"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	Location        string    `json:"location,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
}
