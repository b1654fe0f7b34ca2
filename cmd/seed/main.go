package main

import (
	"log"
	"os"
	"time"

	"gentlecare/internal/database"
	"gentlecare/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a local database with a linked elder/caretaker pair and enough care
// data to exercise every screen and the notification engine.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "gentlecare.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.ElderProfile{},
		&domain.CaretakerProfile{},
		&domain.Medication{},
		&domain.MedicationLog{},
		&domain.Meal{},
		&domain.Appointment{},
		&domain.HealthRecord{},
		&domain.EmergencyContact{},
		&domain.LocationLog{},
		&domain.Notification{},
		&domain.KVEntry{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM app_kv")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM location_logs")
	db.Exec("DELETE FROM emergency_contacts")
	db.Exec("DELETE FROM health_records")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM meals")
	db.Exec("DELETE FROM medication_logs")
	db.Exec("DELETE FROM medications")
	db.Exec("DELETE FROM elder_profiles")
	db.Exec("DELETE FROM caretaker_profiles")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	elderHash, _ := bcrypt.GenerateFromPassword([]byte("elder123"), bcrypt.DefaultCost)
	elderUser := domain.User{
		Email:        "grandma@gentlecare.app",
		PasswordHash: string(elderHash),
		FullName:     "Rose Thompson",
		Phone:        "+1 555 010 0001",
		Role:         domain.RoleElder,
	}
	db.Create(&elderUser)
	log.Println("Elder created: grandma@gentlecare.app / elder123")

	caretakerHash, _ := bcrypt.GenerateFromPassword([]byte("care123"), bcrypt.DefaultCost)
	caretakerUser := domain.User{
		Email:        "maria@gentlecare.app",
		PasswordHash: string(caretakerHash),
		FullName:     "Maria Thompson",
		Phone:        "+1 555 010 0002",
		Role:         domain.RoleCaretaker,
	}
	db.Create(&caretakerUser)
	log.Println("Caretaker created: maria@gentlecare.app / care123")

	caretakerProfile := domain.CaretakerProfile{UserID: caretakerUser.ID}
	db.Create(&caretakerProfile)

	elderProfile := domain.ElderProfile{
		UserID:      elderUser.ID,
		CaretakerID: &caretakerUser.ID,
	}
	db.Create(&elderProfile)

	log.Println("Creating care data...")

	medications := []domain.Medication{
		{ElderID: elderProfile.ID, Name: "Lisinopril", Dosage: "10mg", Frequency: "daily", Time: "8:00 AM", IsActive: true},
		{ElderID: elderProfile.ID, Name: "Metformin", Dosage: "500mg", Frequency: "twice daily", Time: "8:00 AM", IsActive: true},
		{ElderID: elderProfile.ID, Name: "Atorvastatin", Dosage: "20mg", Frequency: "daily", Time: "9:00 PM", IsActive: true},
	}
	for i := range medications {
		db.Create(&medications[i])
	}

	meals := []domain.Meal{
		{ElderID: elderProfile.ID, MealType: domain.MealBreakfast, MealName: "Oatmeal with berries", Calories: 320},
		{ElderID: elderProfile.ID, MealType: domain.MealLunch, MealName: "Chicken soup", Calories: 450},
		{ElderID: elderProfile.ID, MealType: domain.MealDinner, MealName: "Baked salmon", Calories: 550},
	}
	for i := range meals {
		db.Create(&meals[i])
	}

	db.Create(&domain.Appointment{
		ElderID:         elderProfile.ID,
		Title:           "Cardiology Checkup",
		DoctorName:      "Dr. Patel",
		Location:        "City Medical Center",
		AppointmentDate: time.Now().Add(26 * time.Hour),
		DurationMinutes: 45,
		Status:          domain.AppointmentScheduled,
	})

	db.Create(&domain.HealthRecord{
		ElderID:    elderProfile.ID,
		RecordType: "blood_pressure",
		Value:      "128/82",
		Unit:       "mmHg",
	})

	db.Create(&domain.EmergencyContact{
		ElderID:      elderProfile.ID,
		Name:         "Maria Thompson",
		Relationship: "daughter",
		Phone:        "+1 555 010 0002",
		IsPrimary:    true,
	})

	log.Println("Seed complete.")
}
