package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// Create persists the booking and the matching seat increment on its
	// flight in one transaction.
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
	ListByAirlineAndDateRange(ctx context.Context, airline string, from, to time.Time) ([]domain.Booking, error)
	// DeleteWithSeatRelease removes the booking and decrements its flight's
	// booked-seat count in one transaction.
	DeleteWithSeatRelease(ctx context.Context, bookingID int64) (domain.SeatRelease, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, reference, flight_id, customer_id, price_cents, booking_date, created_at`

// Create runs the seat increment and the booking insert in a single
// transaction. The conditional UPDATE is the concurrency guard: two requests
// racing for the last seat both reach this point, but only one matches
// booked_seats < total_seats; the other gets ErrCapacityExceeded.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var booked int
	err = tx.QueryRow(ctx, `UPDATE flights SET booked_seats = booked_seats + 1, updated_at = now()
		WHERE id=$1 AND booked_seats < total_seats
		RETURNING booked_seats`, booking.FlightID).Scan(&booked)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id=$1)`, booking.FlightID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrFlightNotFound
		}
		return domain.ErrCapacityExceeded
	}

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (reference, flight_id, customer_id, price_cents, booking_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		booking.Reference, booking.FlightID, booking.CustomerID, booking.PriceCents, booking.BookingDate).
		Scan(&booking.ID, &booking.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.Reference, &b.FlightID, &b.CustomerID, &b.PriceCents, &b.BookingDate, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.queryBookings(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY id`)
}

func (r *PGBookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	return r.queryBookings(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE customer_id=$1 ORDER BY id`, customerID)
}

func (r *PGBookingRepository) ListByAirlineAndDateRange(ctx context.Context, airline string, from, to time.Time) ([]domain.Booking, error) {
	return r.queryBookings(ctx, `SELECT b.id, b.reference, b.flight_id, b.customer_id, b.price_cents, b.booking_date, b.created_at
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE f.airline_name = $1 AND b.booking_date BETWEEN $2 AND $3
		ORDER BY b.booking_date`, airline, from, to)
}

// DeleteWithSeatRelease deletes the booking row and releases its seat. The
// seat decrement is guarded by booked_seats > 0: a flight already at zero
// (seat tracking introduced after the booking) keeps its count and the call
// reports SeatAlreadyFree instead of failing.
func (r *PGBookingRepository) DeleteWithSeatRelease(ctx context.Context, bookingID int64) (domain.SeatRelease, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.SeatAlreadyFree, err
	}
	defer tx.Rollback(ctx)

	var flightID int64
	if err := tx.QueryRow(ctx, `DELETE FROM bookings WHERE id=$1 RETURNING flight_id`, bookingID).Scan(&flightID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SeatAlreadyFree, domain.ErrBookingNotFound
		}
		return domain.SeatAlreadyFree, err
	}

	cmd, err := tx.Exec(ctx, `UPDATE flights SET booked_seats = booked_seats - 1, updated_at = now()
		WHERE id=$1 AND booked_seats > 0`, flightID)
	if err != nil {
		return domain.SeatAlreadyFree, err
	}

	outcome := domain.SeatReleased
	if cmd.RowsAffected() == 0 {
		outcome = domain.SeatAlreadyFree
	}
	return outcome, tx.Commit(ctx)
}

func (r *PGBookingRepository) queryBookings(ctx context.Context, sql string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.FlightID, &b.CustomerID, &b.PriceCents, &b.BookingDate, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
