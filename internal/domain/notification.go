package domain

import "time"

// Notification is the server-side feed entry a caretaker or elder sees in
// their notification list. The notifier engine keeps its own bounded local
// log separately (notifier.Store); entries here are created by CRUD
// services when one party should hear about the other's activity.
type Notification struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	ElderID         *int64    `json:"elder_id,omitempty" gorm:"index"`
	RecipientUserID int64     `json:"recipient_user_id" gorm:"index;not null"`
	Title           string    `json:"title" gorm:"size:100;not null"`
	Message         string    `json:"message" gorm:"type:text;not null"`
	Type            string    `json:"type" gorm:"column:notification_type;size:50"`
	IsRead          bool      `json:"is_read" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// KVEntry is a small fixed-key blob table. The notifier persists its
// rolling notification log and the device push token through it.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Value     []byte    `gorm:"type:blob"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KVEntry) TableName() string { return "app_kv" }
