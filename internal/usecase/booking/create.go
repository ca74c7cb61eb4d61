package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	"github.com/BruksfildServices01/banquet-admin/internal/domain/billing"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint

	ClientID  uint
	VenueID   uint
	EventName string

	StartDate time.Time
	EndDate   *time.Time

	GuestCount int
	Status     string

	// nil derives hourly_rate * billable hours
	TotalAmount   *float64
	DepositAmount float64
	DepositPaid   bool

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*Result, error) {

	// --------------------------------------------------
	// 1. Schedule and status
	// --------------------------------------------------
	if err := validateSchedule(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	status, err := domain.InitialStatus(in.Status)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. References
	// --------------------------------------------------
	v, err := uc.repo.GetVenue(ctx, in.VenueID)
	if err != nil {
		return nil, httperr.OrNotFound(err, "venue_not_found")
	}

	if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
		return nil, httperr.OrNotFound(err, "client_not_found")
	}

	if err := validateGuests(v, in.GuestCount); err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.timezone)

	b := &models.Booking{
		ClientID:    in.ClientID,
		VenueID:     in.VenueID,
		EventName:   in.EventName,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		GuestCount:  in.GuestCount,
		Status:      string(status),
		DepositPaid: in.DepositPaid,
		Notes:       in.Notes,
	}

	// --------------------------------------------------
	// 3. Financials
	// --------------------------------------------------
	b.TotalAmount = derivedTotal(v, b, loc)
	if in.TotalAmount != nil {
		b.TotalAmount = *in.TotalAmount
	}

	deposit, warnings, err := billing.CheckDeposit(in.DepositAmount, b.TotalAmount)
	if err != nil {
		return nil, err
	}
	b.DepositAmount = deposit

	if status == domain.StatusConfirmed {
		now := timezone.NowIn(uc.timezone)
		b.ConfirmedAt = &now
	}

	// --------------------------------------------------
	// 4. Availability + write
	// --------------------------------------------------
	err = uc.repo.WithinTx(ctx, func(repo domain.Repository) error {
		if status != domain.StatusCancelled {
			if err := assertVenueFree(ctx, repo, b, loc); err != nil {
				return err
			}
		}
		return repo.CreateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"status": b.Status, "warnings": warnings},
	})

	return &Result{Booking: b, Warnings: nonNil(warnings)}, nil
}

func nonNil(w []string) []string {
	if w == nil {
		return []string{}
	}
	return w
}
