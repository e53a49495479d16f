//go:build unit

package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rolloff-core/internal/pkg/dateutil"
	"rolloff-core/internal/pkg/errs"
)

func TestMidnightUTC(t *testing.T) {
	t.Run("strips time of day", func(t *testing.T) {
		in := time.Date(2025, time.June, 1, 17, 45, 12, 999, time.UTC)
		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), dateutil.MidnightUTC(in))
	})

	t.Run("uses the calendar fields of the value's own zone", func(t *testing.T) {
		// 2025-06-01 23:00 -07:00 is 2025-06-02 06:00 UTC as an instant, but
		// its calendar date reads June 1.
		in := time.Date(2025, time.June, 1, 23, 0, 0, 0, time.FixedZone("PDT", -7*3600))
		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), dateutil.MidnightUTC(in))
	})
}

func TestDaysBetween(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 0, dateutil.DaysBetween(day(1), day(1)))
	assert.Equal(t, 6, dateutil.DaysBetween(day(1), day(7)))
	assert.Equal(t, 0, dateutil.DaysBetween(day(7), day(1)))
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := dateutil.ParseDate("2025-06-01")
		require.NoError(t, err)

		y, m, d := got.Date()
		assert.Equal(t, 2025, y)
		assert.Equal(t, time.June, m)
		assert.Equal(t, 1, d)
		assert.Equal(t, time.Local, got.Location())

		hh, mm, ss := got.Clock()
		assert.Zero(t, hh)
		assert.Zero(t, mm)
		assert.Zero(t, ss)
	})

	t.Run("malformed inputs are rejected", func(t *testing.T) {
		for _, s := range []string{
			"2025-13-40", // out-of-range month and day
			"2025-02-30", // impossible day for the month
			"06/01/2025", // wrong layout
			"2025-6-1",   // missing zero padding
			"not-a-date",
			"",
		} {
			_, err := dateutil.ParseDate(s)
			require.ErrorIs(t, err, errs.ErrMalformedDate, s)
		}
	})
}
