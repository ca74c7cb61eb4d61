package venue

import (
	"context"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/venue"
	"github.com/BruksfildServices01/banquet-admin/internal/dto"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

// ListVenues reports every venue with its availability for today.
type ListVenues struct {
	repo     domain.Repository
	timezone string
}

func NewListVenues(repo domain.Repository, tz string) *ListVenues {
	return &ListVenues{repo: repo, timezone: tz}
}

func (uc *ListVenues) Execute(ctx context.Context, query string) ([]dto.VenueDTO, error) {
	venues, err := uc.repo.ListVenues(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(venues) == 0 {
		return []dto.VenueDTO{}, nil
	}

	ids := make([]uint, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}

	today := timezone.Today(uc.timezone)
	day, err := timezone.ParseDate(uc.timezone, today)
	if err != nil {
		return nil, err
	}
	from, to := dayWindow(day, day)

	bookings, err := uc.repo.ListConfirmedForVenues(ctx, ids, from, to)
	if err != nil {
		return nil, err
	}
	byVenue := groupByVenue(bookings)
	loc := timezone.Location(uc.timezone)

	out := make([]dto.VenueDTO, 0, len(venues))
	for _, v := range venues {
		out = append(out, toDTO(v, domain.ResolveOn(v.Availability, byVenue[v.ID], today, loc)))
	}
	return out, nil
}
