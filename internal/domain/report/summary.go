package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

type Summary struct {
	From string `json:"from"`
	To   string `json:"to"`

	BookingsByStatus map[string]int `json:"bookings_by_status"`
	TotalBookings    int            `json:"total_bookings"`
	GuestsExpected   int            `json:"guests_expected"`

	Revenue           float64 `json:"revenue"`
	Outstanding       float64 `json:"outstanding"`
	DepositsCollected float64 `json:"deposits_collected"`
	BookedValue       float64 `json:"booked_value"`
}

// Summarize aggregates bookings touching [from, to] and invoices as given.
// Invoice selection is the caller's job.
func Summarize(
	bookings []models.Booking,
	invoices []models.Invoice,
	from string,
	to string,
	today string,
	loc *time.Location,
) Summary {

	s := Summary{
		From: from,
		To:   to,
		BookingsByStatus: map[string]int{
			string(booking.StatusPending):   0,
			string(booking.StatusConfirmed): 0,
			string(booking.StatusCancelled): 0,
		},
	}

	deposits := decimal.Zero
	booked := decimal.Zero

	for _, b := range booking.InRange(bookings, from, to, loc) {
		s.BookingsByStatus[b.Status]++
		s.TotalBookings++

		if booking.Status(b.Status) == booking.StatusCancelled {
			continue
		}
		if booking.Status(b.Status) == booking.StatusConfirmed {
			s.GuestsExpected += b.GuestCount
			booked = booked.Add(decimal.NewFromFloat(b.TotalAmount))
		}
		if b.DepositPaid {
			deposits = deposits.Add(decimal.NewFromFloat(b.DepositAmount))
		}
	}

	revenue := decimal.Zero
	outstanding := decimal.Zero

	for i := range invoices {
		inv := &invoices[i]
		total := decimal.NewFromFloat(inv.TotalAmount)

		switch invoice.EffectiveStatus(inv, today, loc) {
		case invoice.StatusPaid:
			revenue = revenue.Add(total)
		case invoice.StatusPending, invoice.StatusOverdue:
			outstanding = outstanding.Add(total)
		}
	}

	s.Revenue = revenue.Round(2).InexactFloat64()
	s.Outstanding = outstanding.Round(2).InexactFloat64()
	s.DepositsCollected = deposits.Round(2).InexactFloat64()
	s.BookedValue = booked.Round(2).InexactFloat64()

	return s
}
