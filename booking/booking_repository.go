package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetBookingsByDate(ctx context.Context, date time.Time) ([]Booking, error) {
	sql := `SELECT id, owner_id, date, start_time, end_time, details, status, created_at, updated_at
            FROM bookings
            WHERE date = $1;
        `

	rows, err := r.pool.Query(ctx, sql, date)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for date %v: %w", date, err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) GetBookingsByOwner(ctx context.Context, ownerID string) ([]Booking, error) {
	sql := `SELECT id, owner_id, date, start_time, end_time, details, status, created_at, updated_at
            FROM bookings
            WHERE owner_id = $1
            ORDER BY date, start_time;
        `

	rows, err := r.pool.Query(ctx, sql, ownerID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for owner '%v': %w", ownerID, err)
	}

	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	sql := `
			INSERT INTO bookings(id, owner_id, date, start_time, end_time, details, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at, updated_at;
		`

	booking.ID = uuid.NewString()

	err := r.pool.QueryRow(ctx, sql,
		booking.ID,
		booking.OwnerID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Details,
		booking.Status,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	if isUniqueViolation(err) {
		// two requests raced for the same exact slot
		return Booking{}, ErrSlotConflict
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

func (r *Repository) UpdateBookingTimes(ctx context.Context, id, ownerID string, in UpdateInput) error {
	sql := `
			UPDATE bookings
			SET
				start_time=$1,
				end_time=$2,
				details=$3,
				updated_at=now()
			WHERE id=$4 AND owner_id=$5;
		`

	tag, err := r.pool.Exec(ctx, sql, in.StartTime, in.EndTime, in.Details, id, ownerID)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) DeleteBooking(ctx context.Context, id, ownerID string) error {
	sql := `DELETE FROM bookings WHERE id=$1 AND owner_id=$2;`

	tag, err := r.pool.Exec(ctx, sql, id, ownerID)

	if err != nil {
		return fmt.Errorf("failed to delete booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeletePastBookings removes every booking dated before today, plus today's
// bookings whose end time is strictly before the current minute.
func (r *Repository) DeletePastBookings(ctx context.Context, todayMidnight, tomorrowMidnight time.Time, nowTime string) (int64, error) {
	sql := `
            DELETE FROM bookings
            WHERE date < $1
               OR (date >= $1 AND date < $2 AND end_time < $3);
        `

	tag, err := r.pool.Exec(ctx, sql, todayMidnight, tomorrowMidnight, nowTime)

	if err != nil {
		return 0, fmt.Errorf("failed to delete past bookings: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) GetBookedDates(ctx context.Context) ([]time.Time, error) {
	sql := `SELECT DISTINCT date FROM bookings ORDER BY date;`

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked dates: %w", err)
	}

	defer rows.Close()

	var dates []time.Time

	for rows.Next() {
		var d time.Time

		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("error scanning booked date row: %w", err)
		}

		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booked dates rows: %w", err)
	}

	return dates, nil
}

func scanBookings(rows pgx.Rows) ([]Booking, error) {
	var bookings []Booking

	for rows.Next() {
		var booking Booking
		err := rows.Scan(
			&booking.ID,
			&booking.OwnerID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Details,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
