package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Flight, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.Flight, error)
	ListFrom(ctx context.Context, from time.Time) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, airline_name, total_seats, booked_seats, flight_date, price_cents, created_at, updated_at`

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.AirlineName, &f.TotalSeats, &f.BookedSeats, &f.FlightDate, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	// New flights always start with zero booked seats.
	return r.db.QueryRow(ctx, `INSERT INTO flights (airline_name, total_seats, booked_seats, flight_date, price_cents)
		VALUES ($1, $2, 0, $3, $4)
		RETURNING id, booked_seats, created_at, updated_at`,
		flight.AirlineName, flight.TotalSeats, flight.FlightDate, flight.PriceCents).
		Scan(&flight.ID, &flight.BookedSeats, &flight.CreatedAt, &flight.UpdatedAt)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return f, nil
}

// Update edits airline, capacity, date and price. booked_seats is
// deliberately absent from the SET list: flight edits never touch the seat
// counter, only the booking workflow does. The booked_seats <= $2 guard keeps
// a shrink from leaving the counter above the new capacity.
func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	row := r.db.QueryRow(ctx, `UPDATE flights SET airline_name=$1, total_seats=$2, flight_date=$3, price_cents=$4, updated_at=now()
		WHERE id=$5 AND booked_seats <= $2
		RETURNING booked_seats, updated_at`,
		flight.AirlineName, flight.TotalSeats, flight.FlightDate, flight.PriceCents, flight.ID)
	if err := row.Scan(&flight.BookedSeats, &flight.UpdatedAt); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id=$1)`, flight.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrFlightNotFound
		}
		return domain.ErrCapacityBelowBooked
	}
	return nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	return r.queryFlights(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY flight_date`)
}

func (r *PGFlightRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.Flight, error) {
	return r.queryFlights(ctx, `SELECT `+flightColumns+` FROM flights WHERE flight_date=$1 ORDER BY id`, date)
}

func (r *PGFlightRepository) ListFrom(ctx context.Context, from time.Time) ([]domain.Flight, error) {
	return r.queryFlights(ctx, `SELECT `+flightColumns+` FROM flights WHERE flight_date >= $1 ORDER BY flight_date`, from)
}

func (r *PGFlightRepository) queryFlights(ctx context.Context, sql string, args ...any) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.AirlineName, &f.TotalSeats, &f.BookedSeats, &f.FlightDate, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
