package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	"github.com/BruksfildServices01/banquet-admin/internal/domain/billing"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

// UpdateBookingInput is a partial update; nil fields stay untouched. Status
// changes go through ConfirmBooking and CancelBooking.
type UpdateBookingInput struct {
	UserID    uint
	BookingID uint

	ClientID  *uint
	VenueID   *uint
	EventName *string

	StartDate *time.Time
	EndDate   *time.Time
	ClearEnd  bool

	GuestCount    *int
	TotalAmount   *float64
	DepositAmount *float64
	DepositPaid   *bool
	Notes         *string
}

type UpdateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *UpdateBooking {
	return &UpdateBooking{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*Result, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.OrNotFound(err, "booking_not_found")
	}

	if in.ClientID != nil && *in.ClientID != b.ClientID {
		if _, err := uc.repo.GetClient(ctx, *in.ClientID); err != nil {
			return nil, httperr.OrNotFound(err, "client_not_found")
		}
		b.ClientID = *in.ClientID
	}

	scheduleChanged := false
	if in.VenueID != nil && *in.VenueID != b.VenueID {
		b.VenueID = *in.VenueID
		scheduleChanged = true
	}

	v, err := uc.repo.GetVenue(ctx, b.VenueID)
	if err != nil {
		return nil, httperr.OrNotFound(err, "venue_not_found")
	}

	if in.EventName != nil {
		b.EventName = *in.EventName
	}
	if in.StartDate != nil && !in.StartDate.Equal(b.StartDate) {
		b.StartDate = *in.StartDate
		scheduleChanged = true
	}
	if in.ClearEnd {
		scheduleChanged = scheduleChanged || b.EndDate != nil
		b.EndDate = nil
	} else if in.EndDate != nil {
		end := *in.EndDate
		scheduleChanged = scheduleChanged || b.EndDate == nil || !b.EndDate.Equal(end)
		b.EndDate = &end
	}
	if in.GuestCount != nil {
		b.GuestCount = *in.GuestCount
	}

	loc := timezone.Location(uc.timezone)

	// an explicit total wins; otherwise a new venue or schedule reprices
	if in.TotalAmount != nil {
		b.TotalAmount = *in.TotalAmount
	} else if scheduleChanged {
		b.TotalAmount = derivedTotal(v, b, loc)
	}
	if in.DepositAmount != nil {
		b.DepositAmount = *in.DepositAmount
	}
	if in.DepositPaid != nil {
		b.DepositPaid = *in.DepositPaid
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}

	if err := validateSchedule(b.StartDate, b.EndDate); err != nil {
		return nil, err
	}
	if err := validateGuests(v, b.GuestCount); err != nil {
		return nil, err
	}

	deposit, warnings, err := billing.CheckDeposit(b.DepositAmount, b.TotalAmount)
	if err != nil {
		return nil, err
	}
	b.DepositAmount = deposit

	// last write wins
	err = uc.repo.WithinTx(ctx, func(repo domain.Repository) error {
		if domain.Status(b.Status) != domain.StatusCancelled {
			if err := assertVenueFree(ctx, repo, b, loc); err != nil {
				return err
			}
		}
		return repo.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"warnings": warnings},
	})

	return &Result{Booking: b, Warnings: nonNil(warnings)}, nil
}
