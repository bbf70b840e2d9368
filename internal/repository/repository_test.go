package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewRepositories(t *testing.T) {
	pool := &pgxpool.Pool{}

	tests := []struct {
		name  string
		build func() any
	}{
		{"flights", func() any { return NewFlightRepository(pool) }},
		{"customers", func() any { return NewCustomerRepository(pool) }},
		{"bookings", func() any { return NewBookingRepository(pool) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.build())
		})
	}
}
