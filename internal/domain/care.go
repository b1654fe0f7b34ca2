package domain

import "time"

type MedicationLogStatus string

const (
	MedicationTaken   MedicationLogStatus = "taken"
	MedicationMissed  MedicationLogStatus = "missed"
	MedicationSkipped MedicationLogStatus = "skipped"
)

// Medication keeps Time as free-form text ("8:00 AM", "20:30", "Morning")
// because that is what caretakers type in. The notifier parses it on a
// best-effort basis; see notifier.ParseClockTime.
type Medication struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	ElderID      int64      `json:"elder_id" gorm:"index;not null"`
	Name         string     `json:"name" gorm:"size:100;not null"`
	Dosage       string     `json:"dosage,omitempty" gorm:"size:50"`
	Frequency    string     `json:"frequency,omitempty" gorm:"size:50"`
	Time         string     `json:"time,omitempty" gorm:"size:50"`
	Instructions string     `json:"instructions,omitempty" gorm:"type:text"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at"`

	Logs []MedicationLog `json:"logs,omitempty" gorm:"foreignKey:MedicationID"`
}

func (Medication) TableName() string { return "medications" }

type MedicationLog struct {
	ID           int64               `json:"id" gorm:"primaryKey"`
	MedicationID int64               `json:"medication_id" gorm:"index;not null"`
	TakenAt      time.Time           `json:"taken_at" gorm:"autoCreateTime"`
	Status       MedicationLogStatus `json:"status" gorm:"size:20"`
	Notes        string              `json:"notes,omitempty" gorm:"type:text"`
}

func (MedicationLog) TableName() string { return "medication_logs" }

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnack     MealType = "snack"
	MealDinner    MealType = "dinner"
)

type Meal struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	ElderID       int64      `json:"elder_id" gorm:"index;not null"`
	MealType      MealType   `json:"meal_type" gorm:"size:20"`
	MealName      string     `json:"meal_name,omitempty" gorm:"size:100"`
	Calories      int        `json:"calories,omitempty"`
	Protein       float64    `json:"protein,omitempty"`
	Carbs         float64    `json:"carbs,omitempty"`
	Fats          float64    `json:"fats,omitempty"`
	Consumed      bool       `json:"consumed" gorm:"default:false"`
	ConsumedAt    *time.Time `json:"consumed_at,omitempty"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Notes         string     `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (Meal) TableName() string { return "meals" }

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID              int64             `json:"id" gorm:"primaryKey"`
	ElderID         int64             `json:"elder_id" gorm:"index;not null"`
	Title           string            `json:"title" gorm:"size:100;not null"`
	DoctorName      string            `json:"doctor_name,omitempty" gorm:"size:100"`
	Location        string            `json:"location,omitempty" gorm:"size:255"`
	AppointmentDate time.Time         `json:"appointment_date" gorm:"not null"`
	DurationMinutes int               `json:"duration_minutes" gorm:"default:30"`
	Notes           string            `json:"notes,omitempty" gorm:"type:text"`
	Status          AppointmentStatus `json:"status" gorm:"size:20;default:scheduled"`
	CreatedAt       time.Time         `json:"created_at"`
}

func (Appointment) TableName() string { return "appointments" }

type HealthRecord struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	ElderID    int64     `json:"elder_id" gorm:"index;not null"`
	RecordType string    `json:"type" gorm:"size:50"`
	Value      string    `json:"value" gorm:"size:50"`
	Unit       string    `json:"unit,omitempty" gorm:"size:20"`
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
	RecordedAt time.Time `json:"recorded_at" gorm:"index;autoCreateTime"`
}

func (HealthRecord) TableName() string { return "health_records" }

type EmergencyContact struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	ElderID      int64  `json:"elder_id" gorm:"index;not null"`
	Name         string `json:"name" gorm:"size:100;not null"`
	Relationship string `json:"relationship,omitempty" gorm:"size:50"`
	Phone        string `json:"phone" gorm:"size:20;not null"`
	Email        string `json:"email,omitempty" gorm:"size:120"`
	IsPrimary    bool   `json:"is_primary" gorm:"default:false"`
}

func (EmergencyContact) TableName() string { return "emergency_contacts" }

type LocationLog struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	ElderID    int64     `json:"elder_id" gorm:"index;not null"`
	Latitude   float64   `json:"latitude" gorm:"not null"`
	Longitude  float64   `json:"longitude" gorm:"not null"`
	Accuracy   float64   `json:"accuracy,omitempty"`
	RecordedAt time.Time `json:"recorded_at" gorm:"index;autoCreateTime"`
}

func (LocationLog) TableName() string { return "location_logs" }
