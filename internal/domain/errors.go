package domain

import "errors"

var (
	ErrFlightNotFound   = errors.New("flight not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBookingNotFound  = errors.New("booking not found")

	// ErrCapacityExceeded is returned when a seat reservation is attempted on
	// a flight with no available seats.
	ErrCapacityExceeded = errors.New("no available seats")

	// ErrSeatInvariant signals a booked-seat count outside [0, TotalSeats].
	// Unreachable through the guarded operations; checked anyway.
	ErrSeatInvariant = errors.New("booked seats out of range")

	// ErrCapacityBelowBooked rejects a flight update that would shrink
	// TotalSeats below the seats already booked.
	ErrCapacityBelowBooked = errors.New("total seats below booked seats")
)

// NotFound reports whether err is one of the missing-record errors.
func NotFound(err error) bool {
	return errors.Is(err, ErrFlightNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrBookingNotFound)
}
