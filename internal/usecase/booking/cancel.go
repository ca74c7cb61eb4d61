package booking

import (
	"context"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

type CancelBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CancelBooking {
	return &CancelBooking{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.OrNotFound(err, "booking_not_found")
	}

	if err := domain.Cancel(b, timezone.NowIn(uc.timezone)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
