package dateutil

import (
	"time"

	"rolloff-core/internal/pkg/errs"
)

const dayLayout = "2006-01-02"

// MidnightUTC re-derives midnight UTC from t's calendar fields as read in
// t's own location. Two times on the same local day normalize to the same
// instant regardless of their zone offsets.
func MidnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from dropoff to
// pickup, clamped to zero. Same calendar day yields 0.
func DaysBetween(dropoff, pickup time.Time) int {
	days := int(MidnightUTC(pickup).Sub(MidnightUTC(dropoff)) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}

// ParseDate parses a YYYY-MM-DD string into midnight local time. Malformed
// strings and out-of-range components such as "2025-13-40" are rejected
// rather than normalized.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, errs.Wrapf(errs.ErrMalformedDate, "parse date %q: %v", s, err)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
}
