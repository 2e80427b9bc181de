package booking_test

import (
	"testing"
	"time"

	bk "github.com/hanksha/appointment-booking-backend/booking"
	"github.com/stretchr/testify/require"
)

func chicago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	return loc
}

func midnight(t *testing.T, loc *time.Location, value string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", value, loc)
	require.NoError(t, err)
	return d
}

func window(t *testing.T, loc *time.Location, date, start, end string) bk.TimeWindow {
	t.Helper()

	startMin, err := bk.ParseMinute(start)
	require.NoError(t, err)
	endMin, err := bk.ParseMinute(end)
	require.NoError(t, err)

	return bk.TimeWindow{Date: midnight(t, loc, date), StartMinute: startMin, EndMinute: endMin}
}

func TestParseMinute(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
	}

	for _, c := range cases {
		got, err := bk.ParseMinute(c.in)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}

	for _, bad := range []string{"", "25:00", "12:60", "ab:cd"} {
		_, err := bk.ParseMinute(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestFormatMinute(t *testing.T) {
	require.Equal(t, "00:00", bk.FormatMinute(0))
	require.Equal(t, "09:05", bk.FormatMinute(545))
	require.Equal(t, "23:59", bk.FormatMinute(1439))
}

func TestNormalizeToMidnight(t *testing.T) {
	loc := chicago(t)

	// 02:30 UTC on June 13 is still June 12 in Chicago
	instant := time.Date(2025, 6, 13, 2, 30, 0, 0, time.UTC)
	got := bk.NormalizeToMidnight(instant, loc)

	require.True(t, got.Equal(midnight(t, loc, "2025-06-12")))
}

func TestOverlaps(t *testing.T) {
	loc := chicago(t)

	t.Run("partial overlap", func(t *testing.T) {
		a := window(t, loc, "2025-06-12", "09:00", "10:00")
		b := window(t, loc, "2025-06-12", "09:30", "10:30")

		require.True(t, a.Overlaps(b))
		require.True(t, b.Overlaps(a))
	})

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		a := window(t, loc, "2025-06-12", "09:00", "10:00")
		b := window(t, loc, "2025-06-12", "10:00", "11:00")

		require.False(t, a.Overlaps(b))
		require.False(t, b.Overlaps(a))
	})

	t.Run("containment overlaps", func(t *testing.T) {
		a := window(t, loc, "2025-06-12", "09:00", "12:00")
		b := window(t, loc, "2025-06-12", "10:00", "11:00")

		require.True(t, a.Overlaps(b))
		require.True(t, b.Overlaps(a))
	})

	t.Run("different dates never overlap", func(t *testing.T) {
		a := window(t, loc, "2025-06-12", "09:00", "10:00")
		b := window(t, loc, "2025-06-13", "09:00", "10:00")

		require.False(t, a.Overlaps(b))
	})
}

func TestBefore(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2025, 6, 12, 10, 0, 0, 0, loc)

	t.Run("previous day", func(t *testing.T) {
		w := window(t, loc, "2025-06-11", "09:00", "10:00")
		require.True(t, w.Before(now, loc))
	})

	t.Run("today ended earlier", func(t *testing.T) {
		w := window(t, loc, "2025-06-12", "08:00", "09:00")
		require.True(t, w.Before(now, loc))
	})

	t.Run("today ending exactly now counts as elapsed", func(t *testing.T) {
		w := window(t, loc, "2025-06-12", "09:00", "10:00")
		require.True(t, w.Before(now, loc))
	})

	t.Run("today still running", func(t *testing.T) {
		w := window(t, loc, "2025-06-12", "09:30", "10:30")
		require.False(t, w.Before(now, loc))
	})

	t.Run("next day", func(t *testing.T) {
		w := window(t, loc, "2025-06-13", "09:00", "10:00")
		require.False(t, w.Before(now, loc))
	})
}

func TestDisplayStatusAt(t *testing.T) {
	loc := chicago(t)
	now := time.Date(2025, 6, 12, 10, 0, 0, 0, loc)

	mk := func(date, start, end string) bk.Booking {
		return bk.Booking{Date: midnight(t, loc, date), StartTime: start, EndTime: end}
	}

	cases := []struct {
		name    string
		booking bk.Booking
		want    bk.DisplayStatus
	}{
		{"yesterday", mk("2025-06-11", "09:00", "10:00"), bk.StatusComplete},
		{"today already ended", mk("2025-06-12", "08:00", "09:00"), bk.StatusComplete},
		{"today ending exactly now", mk("2025-06-12", "09:00", "10:00"), bk.StatusComplete},
		{"today in progress", mk("2025-06-12", "09:30", "11:00"), bk.StatusOngoing},
		{"today starting exactly now", mk("2025-06-12", "10:00", "11:00"), bk.StatusOngoing},
		{"today later", mk("2025-06-12", "10:01", "11:00"), bk.StatusUpcoming},
		{"tomorrow", mk("2025-06-13", "09:00", "10:00"), bk.StatusUpcoming},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, bk.DisplayStatusAt(c.booking, now, loc))

			// pure function: recomputing gives the same answer
			require.Equal(t, c.want, bk.DisplayStatusAt(c.booking, now, loc))
		})
	}
}
