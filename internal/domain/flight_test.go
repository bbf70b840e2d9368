package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlight_ReserveSeat(t *testing.T) {
	f := &Flight{TotalSeats: 2}

	assert.NoError(t, f.ReserveSeat())
	assert.Equal(t, 1, f.BookedSeats)
	assert.Equal(t, 1, f.AvailableSeats())

	assert.NoError(t, f.ReserveSeat())
	assert.Equal(t, 2, f.BookedSeats)
	assert.Equal(t, 0, f.AvailableSeats())

	// Full flight: no mutation, capacity error.
	err := f.ReserveSeat()
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 2, f.BookedSeats)
}

func TestFlight_ReserveSeat_InvariantViolation(t *testing.T) {
	testCases := []struct {
		name   string
		flight Flight
	}{
		{name: "negative booked seats", flight: Flight{TotalSeats: 10, BookedSeats: -1}},
		{name: "booked above capacity", flight: Flight{TotalSeats: 10, BookedSeats: 11}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.flight.BookedSeats
			assert.ErrorIs(t, tc.flight.ReserveSeat(), ErrSeatInvariant)
			assert.Equal(t, before, tc.flight.BookedSeats)
		})
	}
}

func TestFlight_ReleaseSeat(t *testing.T) {
	f := &Flight{TotalSeats: 5, BookedSeats: 1}

	assert.Equal(t, SeatReleased, f.ReleaseSeat())
	assert.Equal(t, 0, f.BookedSeats)

	// Releasing at zero is a tolerated no-op, not an error.
	assert.Equal(t, SeatAlreadyFree, f.ReleaseSeat())
	assert.Equal(t, 0, f.BookedSeats)
}

func TestFlight_ReserveRelease_Conservation(t *testing.T) {
	f := &Flight{TotalSeats: 10, BookedSeats: 3}

	for i := 0; i < 5; i++ {
		assert.NoError(t, f.ReserveSeat())
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, SeatReleased, f.ReleaseSeat())
	}
	assert.Equal(t, 3, f.BookedSeats)
}
