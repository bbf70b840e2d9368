package domain

import "time"

// Booking links one customer to one flight at the price charged when the
// booking was made. Each booking represents exactly one reserved seat on its
// flight: creating the booking incremented BookedSeats, deleting it releases
// that seat.
type Booking struct {
	ID          int64
	Reference   string
	FlightID    int64
	CustomerID  int64
	PriceCents  int64
	BookingDate time.Time
	CreatedAt   time.Time
}
