package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	bk "github.com/hanksha/appointment-booking-backend/booking"
	bk_mocks "github.com/hanksha/appointment-booking-backend/booking/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type testDeps struct {
	repo    *bk_mocks.MockBookingRepository
	service *bk.Service
	loc     *time.Location
	now     time.Time
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	loc := chicago(t)
	now := time.Date(2025, 6, 12, 10, 0, 0, 0, loc)

	repo := bk_mocks.NewMockBookingRepository(ctrl)
	svc := bk.NewService(repo, fixedClock{t: now}, loc)

	return ctrl, testDeps{
		repo: repo, service: svc, loc: loc, now: now, ctx: context.Background(),
	}
}

func TestCreateBooking(t *testing.T) {
	input := bk.DraftInput{
		Date:      "2025-06-13",
		StartTime: "09:00",
		EndTime:   "10:00",
		Details:   "meeting with client",
	}

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		date := midnight(t, deps.loc, "2025-06-13")

		toInsert := bk.Booking{
			OwnerID:   "user1",
			Date:      date,
			StartTime: "09:00",
			EndTime:   "10:00",
			Details:   "meeting with client",
			Status:    "pending",
		}
		inserted := toInsert
		inserted.ID = "b1"

		deps.repo.EXPECT().GetBookingsByDate(deps.ctx, date).Return(nil, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, toInsert).Return(inserted, nil).Times(1)

		got, err := deps.service.CreateBooking(deps.ctx, "user1", input)

		require.Nil(t, err)
		require.Equal(t, inserted, got)
	})

	t.Run("overlap with existing booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		date := midnight(t, deps.loc, "2025-06-13")
		existing := []bk.Booking{{
			ID:        "b2",
			OwnerID:   "someone-else",
			Date:      date,
			StartTime: "09:30",
			EndTime:   "10:30",
			Status:    "pending",
		}}

		deps.repo.EXPECT().GetBookingsByDate(deps.ctx, date).Return(existing, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, "user1", input)

		require.ErrorIs(t, err, bk.ErrSlotConflict)
	})

	t.Run("touching slots are approved", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		date := midnight(t, deps.loc, "2025-06-13")
		existing := []bk.Booking{{
			ID:        "b2",
			Date:      date,
			StartTime: "10:00",
			EndTime:   "11:00",
			Status:    "pending",
		}}

		deps.repo.EXPECT().GetBookingsByDate(deps.ctx, date).Return(existing, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b bk.Booking) (bk.Booking, error) {
				b.ID = "b3"
				return b, nil
			}).Times(1)

		got, err := deps.service.CreateBooking(deps.ctx, "user1", input)

		require.Nil(t, err)
		require.Equal(t, "b3", got.ID)
	})

	t.Run("validation failure skips the repository", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingsByDate(gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, "user1", bk.DraftInput{
			Date:      "2025-06-13",
			StartTime: "10:00",
			EndTime:   "09:00",
		})

		var validationErr *bk.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, []string{"End time must be after start time."}, validationErr.Fields["endTime"])
	})

	t.Run("repo error on conflict check", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		date := midnight(t, deps.loc, "2025-06-13")
		deps.repo.EXPECT().GetBookingsByDate(deps.ctx, date).Return(nil, errors.New("repo error")).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, "user1", input)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to check for conflicting bookings")
	})

	t.Run("duplicate slot detected at insert", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		date := midnight(t, deps.loc, "2025-06-13")
		deps.repo.EXPECT().GetBookingsByDate(deps.ctx, date).Return(nil, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).Return(bk.Booking{}, bk.ErrSlotConflict).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, "user1", input)

		require.ErrorIs(t, err, bk.ErrSlotConflict)
	})
}

func TestListBookings(t *testing.T) {
	t.Run("success with display statuses", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		bookings := []bk.Booking{
			{ID: "b1", OwnerID: "user1", Date: midnight(t, deps.loc, "2025-06-11"), StartTime: "09:00", EndTime: "10:00"},
			{ID: "b2", OwnerID: "user1", Date: midnight(t, deps.loc, "2025-06-12"), StartTime: "09:30", EndTime: "11:00"},
			{ID: "b3", OwnerID: "user1", Date: midnight(t, deps.loc, "2025-06-13"), StartTime: "09:00", EndTime: "10:00"},
		}

		deps.repo.EXPECT().GetBookingsByOwner(deps.ctx, "user1").Return(bookings, nil).Times(1)

		views, err := deps.service.ListBookings(deps.ctx, "user1")

		require.Nil(t, err)
		require.Len(t, views, 3)
		require.Equal(t, bk.StatusComplete, views[0].DisplayStatus)
		require.Equal(t, bk.StatusOngoing, views[1].DisplayStatus)
		require.Equal(t, bk.StatusUpcoming, views[2].DisplayStatus)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingsByOwner(deps.ctx, "user1").Return(nil, errors.New("repo error")).Times(1)

		views, err := deps.service.ListBookings(deps.ctx, "user1")

		require.Error(t, err)
		require.Equal(t, 0, len(views))
	})
}

func TestModifyBooking(t *testing.T) {
	t.Run("success with normalized times", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		normalized := bk.UpdateInput{StartTime: "09:00", EndTime: "10:30", Details: "moved"}
		deps.repo.EXPECT().UpdateBookingTimes(deps.ctx, "b1", "user1", normalized).Return(nil).Times(1)

		err := deps.service.ModifyBooking(deps.ctx, "user1", "b1", bk.UpdateInput{
			StartTime: "9:00", EndTime: "10:30", Details: "moved",
		})

		require.Nil(t, err)
	})

	t.Run("validation failure skips the repository", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().UpdateBookingTimes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.ModifyBooking(deps.ctx, "user1", "b1", bk.UpdateInput{})

		var validationErr *bk.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		in := bk.UpdateInput{StartTime: "09:00", EndTime: "10:00"}
		deps.repo.EXPECT().UpdateBookingTimes(deps.ctx, "b1", "user1", in).Return(bk.ErrBookingNotFound).Times(1)

		err := deps.service.ModifyBooking(deps.ctx, "user1", "b1", in)

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestDeleteBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().DeleteBooking(deps.ctx, "b1", "user1").Return(nil).Times(1)

		require.Nil(t, deps.service.DeleteBooking(deps.ctx, "user1", "b1"))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().DeleteBooking(deps.ctx, "b1", "user1").Return(bk.ErrBookingNotFound).Times(1)

		err := deps.service.DeleteBooking(deps.ctx, "user1", "b1")

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestClearPastBookings(t *testing.T) {
	t.Run("passes one clock snapshot to the repository", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		today := midnight(t, deps.loc, "2025-06-12")
		tomorrow := midnight(t, deps.loc, "2025-06-13")

		// current minute is excluded: strictly less-than, so a booking
		// ending exactly at 10:00 survives this sweep
		deps.repo.EXPECT().DeletePastBookings(deps.ctx, today, tomorrow, "10:00").Return(int64(3), nil).Times(1)

		count, err := deps.service.ClearPastBookings(deps.ctx)

		require.Nil(t, err)
		require.Equal(t, int64(3), count)
	})

	t.Run("idempotent when nothing newly elapsed", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		today := midnight(t, deps.loc, "2025-06-12")
		tomorrow := midnight(t, deps.loc, "2025-06-13")

		gomock.InOrder(
			deps.repo.EXPECT().DeletePastBookings(deps.ctx, today, tomorrow, "10:00").Return(int64(2), nil),
			deps.repo.EXPECT().DeletePastBookings(deps.ctx, today, tomorrow, "10:00").Return(int64(0), nil),
		)

		first, err := deps.service.ClearPastBookings(deps.ctx)
		require.Nil(t, err)
		require.Equal(t, int64(2), first)

		second, err := deps.service.ClearPastBookings(deps.ctx)
		require.Nil(t, err)
		require.Equal(t, int64(0), second)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().DeletePastBookings(deps.ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("repo error")).Times(1)

		_, err := deps.service.ClearPastBookings(deps.ctx)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to clear past bookings")
	})
}

func TestBookedDates(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		stored := []time.Time{
			midnight(t, deps.loc, "2025-06-12"),
			midnight(t, deps.loc, "2025-06-14"),
		}

		deps.repo.EXPECT().GetBookedDates(deps.ctx).Return(stored, nil).Times(1)

		dates, err := deps.service.BookedDates(deps.ctx)

		require.Nil(t, err)
		require.Equal(t, []string{"2025-06-12", "2025-06-14"}, dates)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookedDates(deps.ctx).Return(nil, errors.New("repo error")).Times(1)

		dates, err := deps.service.BookedDates(deps.ctx)

		require.Error(t, err)
		require.Equal(t, 0, len(dates))
	})
}
