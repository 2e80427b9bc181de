package booking

import (
	"context"
	"fmt"
	"time"
)

type BookingRepository interface {
	GetBookingsByDate(ctx context.Context, date time.Time) ([]Booking, error)
	GetBookingsByOwner(ctx context.Context, ownerID string) ([]Booking, error)
	InsertBooking(ctx context.Context, booking Booking) (Booking, error)
	UpdateBookingTimes(ctx context.Context, id, ownerID string, in UpdateInput) error
	DeleteBooking(ctx context.Context, id, ownerID string) error
	DeletePastBookings(ctx context.Context, todayMidnight, tomorrowMidnight time.Time, nowTime string) (int64, error)
	GetBookedDates(ctx context.Context) ([]time.Time, error)
}

type Service struct {
	repo  BookingRepository
	clock Clock
	loc   *time.Location
}

func NewService(repo BookingRepository, clock Clock, loc *time.Location) *Service {
	return &Service{repo: repo, clock: clock, loc: loc}
}

// CreateBooking validates the candidate, rejects it if its timeslot
// overlaps any existing booking on the same date regardless of owner, and
// persists it. The check-then-insert sequence is not serialized; the
// storage layer's unique index on exact slots narrows the race window.
func (s *Service) CreateBooking(ctx context.Context, ownerID string, in DraftInput) (Booking, error) {
	now := s.clock.Now()

	draft, fieldErrs := ValidateDraft(in, now, s.loc)

	if fieldErrs != nil {
		return Booking{}, &ValidationError{Fields: fieldErrs}
	}

	existing, err := s.repo.GetBookingsByDate(ctx, draft.Date)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to check for conflicting bookings: %w", err)
	}

	candidate := TimeWindow{Date: draft.Date}
	candidate.StartMinute, _ = ParseMinute(draft.StartTime)
	candidate.EndMinute, _ = ParseMinute(draft.EndTime)

	for _, b := range existing {
		if candidate.Overlaps(WindowOf(b, s.loc)) {
			return Booking{}, ErrSlotConflict
		}
	}

	return s.repo.InsertBooking(ctx, Booking{
		OwnerID:   ownerID,
		Date:      draft.Date,
		StartTime: draft.StartTime,
		EndTime:   draft.EndTime,
		Details:   draft.Details,
		Status:    "pending",
	})
}

// ListBookings returns the owner's bookings sorted by date and start time,
// each classified against a single clock snapshot.
func (s *Service) ListBookings(ctx context.Context, ownerID string) ([]BookingView, error) {
	bookings, err := s.repo.GetBookingsByOwner(ctx, ownerID)

	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	views := make([]BookingView, 0, len(bookings))

	for _, b := range bookings {
		views = append(views, BookingView{
			Booking:       b,
			DisplayStatus: DisplayStatusAt(b, now, s.loc),
		})
	}

	return views, nil
}

// ModifyBooking changes the start time, end time and details of a booking
// owned by the caller. Date and owner are immutable.
func (s *Service) ModifyBooking(ctx context.Context, ownerID, id string, in UpdateInput) error {
	normalized, fieldErrs := ValidateUpdate(in)

	if fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}

	return s.repo.UpdateBookingTimes(ctx, id, ownerID, normalized)
}

func (s *Service) DeleteBooking(ctx context.Context, ownerID, id string) error {
	return s.repo.DeleteBooking(ctx, id, ownerID)
}

// ClearPastBookings bulk-deletes every booking whose day has passed, or
// whose day is today and whose end time is strictly before the current
// minute. A booking ending exactly at the current minute is retained.
// Idempotent: a second run with no newly elapsed bookings removes zero.
func (s *Service) ClearPastBookings(ctx context.Context) (int64, error) {
	now := s.clock.Now()
	today := NormalizeToMidnight(now, s.loc)
	tomorrow := today.AddDate(0, 0, 1)
	nowTime := FormatMinute(MinuteOfDay(now, s.loc))

	count, err := s.repo.DeletePastBookings(ctx, today, tomorrow, nowTime)

	if err != nil {
		return 0, fmt.Errorf("failed to clear past bookings: %w", err)
	}

	return count, nil
}

// BookedDates returns every calendar date with at least one booking, as
// "YYYY-MM-DD" strings in the reference timezone.
func (s *Service) BookedDates(ctx context.Context) ([]string, error) {
	dates, err := s.repo.GetBookedDates(ctx)

	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(dates))

	for _, d := range dates {
		out = append(out, NormalizeToMidnight(d, s.loc).Format("2006-01-02"))
	}

	return out, nil
}
