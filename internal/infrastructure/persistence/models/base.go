package models

import "time"

// TimestampModel provides the audit timestamps shared by every hostel table
type TimestampModel struct {
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
