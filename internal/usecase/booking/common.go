package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/domain/billing"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/domain/venue"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

// Result carries non-blocking warnings next to the saved booking.
type Result struct {
	Booking  *models.Booking `json:"booking"`
	Warnings []string        `json:"warnings"`
}

// searchWindow widens the day span by a day on each side so the SQL
// prefilter never misses a booking because of timezone offsets.
func searchWindow(b *models.Booking) (time.Time, time.Time) {
	end := b.StartDate
	if b.EndDate != nil && b.EndDate.After(end) {
		end = *b.EndDate
	}
	return b.StartDate.Add(-24 * time.Hour), end.Add(48 * time.Hour)
}

// assertVenueFree runs the availability check for a booking that is about to
// be saved as pending or confirmed. Call it inside WithinTx so the venue lock
// holds until the write commits.
func assertVenueFree(
	ctx context.Context,
	repo domain.Repository,
	b *models.Booking,
	loc *time.Location,
) error {

	v, err := repo.LockVenue(ctx, b.VenueID)
	if err != nil {
		return httperr.OrNotFound(err, "venue_not_found")
	}

	if venue.Availability(v.Availability) == venue.Maintenance {
		return httperr.ErrBusiness("venue_in_maintenance")
	}

	from, to := searchWindow(b)
	existing, err := repo.ListConfirmedForVenue(ctx, v.ID, from, to)
	if err != nil {
		return err
	}

	if len(domain.Conflicts(domain.SpanOf(b, loc), existing, loc, b.ID)) > 0 {
		return httperr.ErrBusiness("venue_unavailable")
	}
	return nil
}

// derivedTotal prices the booking at the venue's hourly rate.
func derivedTotal(v *models.Venue, b *models.Booking, loc *time.Location) float64 {
	return billing.Multiply(v.HourlyRate, domain.BillableHours(b.StartDate, b.EndDate, loc))
}

func validateSchedule(start time.Time, end *time.Time) error {
	if start.IsZero() {
		return httperr.ErrValidation("start_date", "required")
	}
	if end != nil && end.Before(start) {
		return httperr.ErrValidation("end_date", "before_start_date")
	}
	return nil
}

func validateGuests(v *models.Venue, guests int) error {
	if guests < 0 {
		return httperr.ErrValidation("guest_count", "must_not_be_negative")
	}
	if v.Capacity > 0 && guests > v.Capacity {
		return httperr.ErrBusiness("guest_count_exceeds_capacity")
	}
	return nil
}
