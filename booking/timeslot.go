package booking

import (
	"fmt"
	"time"
)

// TimeWindow is one appointment's occupancy: a calendar date plus a
// half-open [start, end) time-of-day interval. Times are minute-of-day
// integers internally and only formatted to zero-padded HH:MM strings at
// the storage and API boundary.
type TimeWindow struct {
	Date        time.Time // reference-midnight of the day
	StartMinute int
	EndMinute   int
}

// ParseMinute converts a zero-padded 24-hour "HH:MM" string to a
// minute-of-day integer.
func ParseMinute(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinute renders a minute-of-day integer as a zero-padded "HH:MM"
// string.
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// NormalizeToMidnight truncates an instant to midnight of its calendar date
// in the reference timezone.
func NormalizeToMidnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// MinuteOfDay returns the minute-of-day of an instant in the reference
// timezone.
func MinuteOfDay(t time.Time, loc *time.Location) int {
	t = t.In(loc)
	return t.Hour()*60 + t.Minute()
}

// Overlaps reports whether two windows on the same date have intersecting
// half-open intervals. Touching endpoints do not count as overlap.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	if !w.Date.Equal(o.Date) {
		return false
	}
	return w.StartMinute < o.EndMinute && o.StartMinute < w.EndMinute
}

// Before reports whether the window has fully elapsed at the given instant:
// its date is strictly before the instant's reference-midnight, or the dates
// match and the window ends at or before the instant's minute of day.
func (w TimeWindow) Before(instant time.Time, loc *time.Location) bool {
	midnight := NormalizeToMidnight(instant, loc)

	if w.Date.Before(midnight) {
		return true
	}

	return w.Date.Equal(midnight) && w.EndMinute <= MinuteOfDay(instant, loc)
}

// WindowOf builds the time window of a stored booking. Stored time strings
// are validated at write time, so parse failures collapse to minute zero.
func WindowOf(b Booking, loc *time.Location) TimeWindow {
	startMin, _ := ParseMinute(b.StartTime)
	endMin, _ := ParseMinute(b.EndTime)

	return TimeWindow{
		Date:        NormalizeToMidnight(b.Date, loc),
		StartMinute: startMin,
		EndMinute:   endMin,
	}
}
