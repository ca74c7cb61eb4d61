package booking

import (
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

// DayLayout is the calendar-day key used for every overlap comparison.
const DayLayout = "2006-01-02"

// Span is the closed day range [Start, End] a booking occupies.
type Span struct {
	Start string
	End   string
}

func DayKey(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DayLayout)
}

func validDay(day string) bool {
	if len(day) != len(DayLayout) {
		return false
	}
	_, err := time.Parse(DayLayout, day)
	return err == nil
}

// SpanOf turns booking timestamps into day keys in loc. A booking without an
// end date is a single-day event.
func SpanOf(b *models.Booking, loc *time.Location) Span {
	if b.StartDate.IsZero() {
		return Span{}
	}
	start := DayKey(b.StartDate.In(loc))
	end := start
	if b.EndDate != nil && !b.EndDate.IsZero() {
		end = DayKey(b.EndDate.In(loc))
	}
	return Span{Start: start, End: end}
}

// normalized fills a missing end and reports whether both keys are usable.
func (s Span) normalized() (Span, bool) {
	if s.End == "" {
		s.End = s.Start
	}
	if !validDay(s.Start) || !validDay(s.End) {
		return s, false
	}
	return s, true
}

// Covers reports Start <= day <= End. Malformed keys never match.
func (s Span) Covers(day string) bool {
	return s.Intersects(day, day)
}

// Intersects reports whether [Start, End] and [from, to] share at least one day.
func (s Span) Intersects(from, to string) bool {
	n, ok := s.normalized()
	if !ok || !validDay(from) || !validDay(to) {
		return false
	}
	return n.Start <= to && n.End >= from
}

func OnDay(bookings []models.Booking, day string, loc *time.Location) []models.Booking {
	return InRange(bookings, day, day, loc)
}

// InRange keeps the input order.
func InRange(bookings []models.Booking, from, to string, loc *time.Location) []models.Booking {
	out := make([]models.Booking, 0)
	for i := range bookings {
		if SpanOf(&bookings[i], loc).Intersects(from, to) {
			out = append(out, bookings[i])
		}
	}
	return out
}

// Conflicts returns the confirmed bookings, other than excludeID, that share a
// day with candidate.
func Conflicts(
	candidate Span,
	existing []models.Booking,
	loc *time.Location,
	excludeID uint,
) []models.Booking {

	c, ok := candidate.normalized()
	if !ok {
		return []models.Booking{}
	}

	out := make([]models.Booking, 0)
	for i := range existing {
		b := existing[i]
		if b.ID == excludeID && excludeID != 0 {
			continue
		}
		if Status(b.Status) != StatusConfirmed {
			continue
		}
		if SpanOf(&b, loc).Intersects(c.Start, c.End) {
			out = append(out, b)
		}
	}
	return out
}
