package invoice

import (
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

type Status string

const (
	StatusDraft   Status = "draft"
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusDraft, StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// EffectiveStatus reports a pending invoice past its due date as overdue.
func EffectiveStatus(inv *models.Invoice, today string, loc *time.Location) Status {
	s := Status(inv.Status)
	if s != StatusPending || inv.DueDate == nil {
		return s
	}
	if inv.DueDate.In(loc).Format("2006-01-02") < today {
		return StatusOverdue
	}
	return s
}

// ApplyStatus sets PaidAt when an invoice becomes paid and clears it otherwise.
func ApplyStatus(inv *models.Invoice, s Status, now time.Time) {
	if s == StatusPaid && inv.Status != string(StatusPaid) {
		inv.PaidAt = &now
	}
	if s != StatusPaid {
		inv.PaidAt = nil
	}
	inv.Status = string(s)
}
