package handlers

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

// parseDateOrTime accepts a YYYY-MM-DD day, read as midnight in the
// business timezone, or a full RFC 3339 timestamp.
func parseDateOrTime(tz, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) == len("2006-01-02") {
		return timezone.ParseDate(tz, s)
	}
	return time.Parse(time.RFC3339, s)
}

func parseOptionalDateOrTime(tz string, s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := parseDateOrTime(tz, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// dayBounds turns an inclusive day range into [from, to+1d).
func dayBounds(tz, from, to string) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if from != "" {
		t, err := timezone.ParseDate(tz, from)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if to != "" {
		t, err := timezone.ParseDate(tz, to)
		if err != nil {
			return nil, nil, err
		}
		t = t.AddDate(0, 0, 1)
		end = &t
	}
	return start, end, nil
}
