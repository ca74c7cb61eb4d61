package booking

import (
	"context"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

type ConfirmBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewConfirmBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.OrNotFound(err, "booking_not_found")
	}

	if err := domain.Confirm(b, timezone.NowIn(uc.timezone)); err != nil {
		return nil, err
	}

	err = uc.repo.WithinTx(ctx, func(repo domain.Repository) error {
		if err := assertVenueFree(ctx, repo, b, timezone.Location(uc.timezone)); err != nil {
			return err
		}
		return repo.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
