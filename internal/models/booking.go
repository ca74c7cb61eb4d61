package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	VenueID uint  `gorm:"index" json:"venue_id"`
	Venue   Venue `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"venue"`

	EventName string `gorm:"size:150" json:"event_name"`

	StartDate time.Time  `gorm:"index" json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	GuestCount int    `json:"guest_count"`
	Status     string `gorm:"size:20;default:'pending';index" json:"status"`

	TotalAmount   float64 `gorm:"type:decimal(10,2)" json:"total_amount"`
	DepositAmount float64 `gorm:"type:decimal(10,2)" json:"deposit_amount"`
	DepositPaid   bool    `gorm:"default:false" json:"deposit_paid"`

	Notes       string     `gorm:"size:255" json:"notes"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
