package models

import "time"

// Appointment is the persisted row. (date, time) carries a unique index so
// the database rejects a double booking even if two processes share it.
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_appointments_slot" json:"date"`
	Time string `gorm:"size:20;not null;uniqueIndex:idx_appointments_slot" json:"time"`

	ServiceType string `gorm:"size:30;not null;index" json:"service_type"`
	ServiceName string `gorm:"size:120;not null" json:"service_name"`

	Location   string `gorm:"size:120" json:"location"`
	ClientName string `gorm:"size:120" json:"client_name"`
	Notes      string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
