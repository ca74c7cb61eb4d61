package booking

import (
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(b *models.Booking, now time.Time) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// BillableHours rounds partial hours up. A missing end means the start day.
// An end at midnight in loc is a date-only value and bills through the end of
// that day, so 2025-04-05..2025-04-05 is 24 hours. Ends before the start bill
// zero hours.
func BillableHours(start time.Time, end *time.Time, loc *time.Location) int {
	e := start
	if end != nil && !end.IsZero() {
		e = *end
	}
	if e.Before(start) {
		return 0
	}

	e = e.In(loc)
	if isMidnight(e) {
		e = time.Date(e.Year(), e.Month(), e.Day()+1, 0, 0, 0, 0, loc)
	}

	d := e.Sub(start)
	if d <= 0 {
		return 0
	}
	hours := int(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return hours
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}
