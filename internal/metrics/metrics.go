package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the Prometheus collectors used across the service.
type Registry struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal   prometheus.Counter
	BookingsCancelledTotal prometheus.Counter
	CapacityConflictsTotal prometheus.Counter
	SeatAlreadyFreeTotal   prometheus.Counter
}

func NewRegistry() *Registry {
	return &Registry{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airadmin_http_requests_total",
				Help: "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "airadmin_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"route", "method"},
		),
		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "airadmin_bookings_created_total",
			Help: "Bookings successfully created",
		}),
		BookingsCancelledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "airadmin_bookings_cancelled_total",
			Help: "Bookings cancelled",
		}),
		CapacityConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "airadmin_capacity_conflicts_total",
			Help: "Booking attempts rejected because the flight was full",
		}),
		SeatAlreadyFreeTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "airadmin_seat_already_free_total",
			Help: "Cancellations that found the flight's seat counter already at zero",
		}),
	}
}
