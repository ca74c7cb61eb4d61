package models

import "time"

type Venue struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Capacity    int     `json:"capacity"`
	HourlyRate  float64 `gorm:"type:decimal(10,2)" json:"hourly_rate"`

	// Manual value only (available or maintenance). "booked" is derived on read.
	Availability string `gorm:"size:20;default:'available'" json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
