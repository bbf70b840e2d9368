package domain

import "time"

// Flight is a scheduled service with a fixed seat capacity. BookedSeats is
// adjusted only through ReserveSeat/ReleaseSeat; flight edits never touch it.
type Flight struct {
	ID          int64
	AirlineName string
	TotalSeats  int
	BookedSeats int
	FlightDate  time.Time
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SeatRelease reports what ReleaseSeat actually did.
type SeatRelease int

const (
	// SeatReleased means the booked-seat count was decremented.
	SeatReleased SeatRelease = iota
	// SeatAlreadyFree means the flight had no booked seats; the release is a
	// no-op, not an error. Happens for bookings that predate seat tracking.
	SeatAlreadyFree
)

func (r SeatRelease) String() string {
	if r == SeatAlreadyFree {
		return "already_free"
	}
	return "released"
}

func (f *Flight) AvailableSeats() int {
	return f.TotalSeats - f.BookedSeats
}

// ReserveSeat increments BookedSeats if the flight is not full. It never
// leaves the flight outside 0 <= BookedSeats <= TotalSeats.
func (f *Flight) ReserveSeat() error {
	if f.BookedSeats < 0 || f.BookedSeats > f.TotalSeats {
		return ErrSeatInvariant
	}
	if f.BookedSeats == f.TotalSeats {
		return ErrCapacityExceeded
	}
	f.BookedSeats++
	return nil
}

// ReleaseSeat decrements BookedSeats. Releasing at zero is tolerated and
// reported as SeatAlreadyFree so callers can log it instead of failing.
func (f *Flight) ReleaseSeat() SeatRelease {
	if f.BookedSeats <= 0 {
		return SeatAlreadyFree
	}
	f.BookedSeats--
	return SeatReleased
}
