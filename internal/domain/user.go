package domain

import "time"

type UserRole string

const (
	RoleElder     UserRole = "elder"
	RoleCaretaker UserRole = "caretaker"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FullName     string    `json:"full_name" gorm:"size:100;not null"`
	Phone        string    `json:"phone,omitempty" gorm:"size:20"`
	Role         UserRole  `json:"user_type" gorm:"column:user_type;size:20;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// ElderProfile holds elder-specific data and the link to a caretaker.
// CaretakerID references users.id and stays nil until the elder links one.
type ElderProfile struct {
	ID                int64      `json:"id" gorm:"primaryKey"`
	UserID            int64      `json:"user_id" gorm:"index;not null"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Address           string     `json:"address,omitempty" gorm:"size:255"`
	EmergencyContact  string     `json:"emergency_contact,omitempty" gorm:"size:20"`
	MedicalConditions string     `json:"medical_conditions,omitempty" gorm:"type:text"`
	CaretakerID       *int64     `json:"caretaker_id,omitempty" gorm:"index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (ElderProfile) TableName() string { return "elder_profiles" }

type CaretakerProfile struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	UserID          int64  `json:"user_id" gorm:"index;not null"`
	Specialization  string `json:"specialization,omitempty" gorm:"size:100"`
	ExperienceYears int    `json:"experience_years,omitempty"`
	Certification   string `json:"certification,omitempty" gorm:"size:100"`
}

func (CaretakerProfile) TableName() string { return "caretaker_profiles" }
