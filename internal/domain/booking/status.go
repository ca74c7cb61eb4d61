package booking

import "github.com/BruksfildServices01/banquet-admin/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanConfirm: only pending bookings can be confirmed.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus applies the default for an empty status.
func InitialStatus(requested string) (Status, error) {
	if requested == "" {
		return StatusPending, nil
	}
	if !IsValidStatus(requested) {
		return "", httperr.ErrValidation("status", "invalid_status")
	}
	return Status(requested), nil
}
