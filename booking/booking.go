package booking

import "time"

type Booking struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Details   string    `json:"details"`
	Status    string    `json:"status"` // pending, confirmed, cancelled, completed
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayStatus is derived from the booking's timeslot and the current time.
// It is distinct from the persisted Status lifecycle tag and is recomputed on
// every read, never stored.
type DisplayStatus string

const (
	StatusComplete DisplayStatus = "Complete"
	StatusOngoing  DisplayStatus = "Ongoing"
	StatusUpcoming DisplayStatus = "Upcoming"
)

// BookingView is a booking annotated with its display status for a single
// clock snapshot.
type BookingView struct {
	Booking
	DisplayStatus DisplayStatus `json:"displayStatus"`
}

// DisplayStatusAt classifies a booking relative to now. A booking on a past
// day, or on today with its end time already reached, is Complete; one whose
// window contains the current minute is Ongoing; everything later is
// Upcoming.
func DisplayStatusAt(b Booking, now time.Time, loc *time.Location) DisplayStatus {
	day := NormalizeToMidnight(b.Date, loc)
	today := NormalizeToMidnight(now, loc)

	if day.Before(today) {
		return StatusComplete
	}

	if day.After(today) {
		return StatusUpcoming
	}

	nowMin := MinuteOfDay(now, loc)
	startMin, _ := ParseMinute(b.StartTime)
	endMin, _ := ParseMinute(b.EndTime)

	switch {
	case endMin <= nowMin:
		return StatusComplete
	case startMin <= nowMin:
		return StatusOngoing
	default:
		return StatusUpcoming
	}
}
