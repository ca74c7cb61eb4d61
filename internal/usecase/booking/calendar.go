package booking

import (
	"context"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/dto"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

type CalendarQuery struct {
	From    string
	To      string
	VenueID uint
}

// Calendar lists the bookings whose day span intersects [From, To].
type Calendar struct {
	repo     domain.Repository
	timezone string
}

func NewCalendar(repo domain.Repository, tz string) *Calendar {
	return &Calendar{repo: repo, timezone: tz}
}

func (uc *Calendar) Execute(ctx context.Context, q CalendarQuery) ([]dto.CalendarEntryDTO, error) {
	if q.To == "" {
		q.To = q.From
	}

	from, err := timezone.ParseDate(uc.timezone, q.From)
	if err != nil {
		return nil, httperr.ErrValidation("from", "invalid_date")
	}
	to, err := timezone.ParseDate(uc.timezone, q.To)
	if err != nil {
		return nil, httperr.ErrValidation("to", "invalid_date")
	}
	if to.Before(from) {
		return nil, httperr.ErrValidation("to", "before_from")
	}

	// one day of slack on each side for timezone offsets; InRange decides
	lookFrom := from.AddDate(0, 0, -1)
	lookTo := to.AddDate(0, 0, 2)

	bookings, err := uc.repo.ListBookings(ctx, domain.ListFilter{
		VenueID: q.VenueID,
		From:    &lookFrom,
		To:      &lookTo,
	})
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.timezone)
	matched := domain.InRange(bookings, q.From, q.To, loc)

	out := make([]dto.CalendarEntryDTO, 0, len(matched))
	for i := range matched {
		b := &matched[i]
		span := domain.SpanOf(b, loc)
		out = append(out, dto.CalendarEntryDTO{
			ID:         b.ID,
			EventName:  b.EventName,
			VenueID:    b.VenueID,
			VenueName:  b.Venue.Name,
			ClientID:   b.ClientID,
			ClientName: b.Client.Name,
			StartDay:   span.Start,
			EndDay:     span.End,
			Status:     b.Status,
			GuestCount: b.GuestCount,
		})
	}
	return out, nil
}
