package medication

import "time"

type CreateRequest struct {
	ElderID      int64  `json:"elder_id"` // required for caretakers, ignored for elders
	Name         string `json:"name" binding:"required"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Time         string `json:"time"`
	Instructions string `json:"instructions"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

type UpdateRequest struct {
	Name         *string `json:"name"`
	Dosage       *string `json:"dosage"`
	Frequency    *string `json:"frequency"`
	Time         *string `json:"time"`
	Instructions *string `json:"instructions"`
	IsActive     *bool   `json:"is_active"`
}

type LogRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type Response struct {
	ID           int64      `json:"id"`
	ElderID      int64      `json:"elder_id"`
	ElderName    string     `json:"elder_name,omitempty"`
	Name         string     `json:"name"`
	Dosage       string     `json:"dosage,omitempty"`
	Frequency    string     `json:"frequency,omitempty"`
	Time         string     `json:"time,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
	IsActive     bool       `json:"is_active"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	LastTaken    *time.Time `json:"last_taken,omitempty"`
}
