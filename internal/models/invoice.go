package models

import "time"

type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Optional: invoices can exist without a booking.
	BookingID *uint    `gorm:"index" json:"booking_id"`
	Booking   *Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"booking,omitempty"`

	ClientID *uint   `gorm:"index" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	InvoiceNumber string `gorm:"size:40;uniqueIndex" json:"invoice_number"`

	Amount      float64 `gorm:"type:decimal(10,2)" json:"amount"`
	TaxRate     float64 `gorm:"type:decimal(5,2)" json:"tax_rate"`
	TaxAmount   float64 `gorm:"type:decimal(10,2)" json:"tax_amount"`
	TotalAmount float64 `gorm:"type:decimal(10,2)" json:"total_amount"`

	DueDate *time.Time `json:"due_date"`
	Status  string     `gorm:"size:20;default:'draft';index" json:"status"`
	PaidAt  *time.Time `json:"paid_at"`
	Notes   string     `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
