package venue

import (
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/venue"
	"github.com/BruksfildServices01/banquet-admin/internal/dto"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

// dayWindow widens [from, to] by a day on each side for the SQL prefilter.
func dayWindow(from, to time.Time) (time.Time, time.Time) {
	return from.AddDate(0, 0, -1), to.AddDate(0, 0, 2)
}

func groupByVenue(bookings []models.Booking) map[uint][]models.Booking {
	out := make(map[uint][]models.Booking)
	for _, b := range bookings {
		out[b.VenueID] = append(out[b.VenueID], b)
	}
	return out
}

func toDTO(v models.Venue, effective domain.Availability) dto.VenueDTO {
	return dto.VenueDTO{
		Venue:              v,
		Availability:       string(effective),
		ManualAvailability: v.Availability,
	}
}

func toEntries(bookings []models.Booking, loc *time.Location) []dto.CalendarEntryDTO {
	out := make([]dto.CalendarEntryDTO, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		span := booking.SpanOf(b, loc)
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
	return out
}

func validateFields(name string, capacity int, hourlyRate float64) error {
	if name == "" {
		return httperr.ErrValidation("name", "required")
	}
	if capacity < 0 {
		return httperr.ErrValidation("capacity", "must_not_be_negative")
	}
	if hourlyRate < 0 {
		return httperr.ErrValidation("hourly_rate", "must_not_be_negative")
	}
	return nil
}
