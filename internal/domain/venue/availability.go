package venue

import (
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

type Availability string

const (
	Available   Availability = "available"
	Booked      Availability = "booked"
	Maintenance Availability = "maintenance"
)

// ValidateManual accepts the values an admin may store. "booked" always
// comes from confirmed bookings.
func ValidateManual(v string) (Availability, error) {
	switch Availability(v) {
	case "":
		return Available, nil
	case Available, Maintenance:
		return Availability(v), nil
	case Booked:
		return "", httperr.ErrValidation("availability", "availability_is_derived")
	}
	return "", httperr.ErrValidation("availability", "invalid_availability")
}

// Resolve: maintenance wins, then any confirmed booking touching [from, to]
// makes the venue booked.
func Resolve(
	manual string,
	bookings []models.Booking,
	from string,
	to string,
	loc *time.Location,
) (Availability, []models.Booking) {

	if Availability(manual) == Maintenance {
		return Maintenance, []models.Booking{}
	}

	conflicts := booking.Conflicts(booking.Span{Start: from, End: to}, bookings, loc, 0)
	if len(conflicts) > 0 {
		return Booked, conflicts
	}
	return Available, conflicts
}

func ResolveOn(manual string, bookings []models.Booking, day string, loc *time.Location) Availability {
	a, _ := Resolve(manual, bookings, day, day, loc)
	return a
}
