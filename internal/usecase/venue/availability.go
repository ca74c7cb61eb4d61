package venue

import (
	"context"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/venue"
	"github.com/BruksfildServices01/banquet-admin/internal/dto"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

// CheckAvailability answers whether a venue is free for a day or an
// inclusive day range, with the confirmed bookings in the way.
type CheckAvailability struct {
	repo     domain.Repository
	timezone string
}

func NewCheckAvailability(repo domain.Repository, tz string) *CheckAvailability {
	return &CheckAvailability{repo: repo, timezone: tz}
}

func (uc *CheckAvailability) Execute(
	ctx context.Context,
	venueID uint,
	from string,
	to string,
) (*dto.VenueAvailabilityDTO, error) {

	if from == "" {
		from = timezone.Today(uc.timezone)
	}
	if to == "" {
		to = from
	}

	fromDay, err := timezone.ParseDate(uc.timezone, from)
	if err != nil {
		return nil, httperr.ErrValidation("from", "invalid_date")
	}
	toDay, err := timezone.ParseDate(uc.timezone, to)
	if err != nil {
		return nil, httperr.ErrValidation("to", "invalid_date")
	}
	if toDay.Before(fromDay) {
		return nil, httperr.ErrValidation("to", "before_from")
	}

	v, err := uc.repo.GetVenue(ctx, venueID)
	if err != nil {
		return nil, httperr.OrNotFound(err, "venue_not_found")
	}

	lookFrom, lookTo := dayWindow(fromDay, toDay)
	bookings, err := uc.repo.ListConfirmedForVenues(ctx, []uint{v.ID}, lookFrom, lookTo)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.timezone)
	a, conflicts := domain.Resolve(v.Availability, bookings, from, to, loc)

	return &dto.VenueAvailabilityDTO{
		VenueID:      v.ID,
		From:         from,
		To:           to,
		Availability: string(a),
		Conflicts:    toEntries(conflicts, loc),
	}, nil
}
