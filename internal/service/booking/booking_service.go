package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/Domenick1991/airadmin/internal/kafka"
	"github.com/Domenick1991/airadmin/internal/metrics"
	"github.com/Domenick1991/airadmin/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID int64) error
	List(ctx context.Context) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService is the only component with cross-entity writes: it keeps
// the flight's booked-seat count, the booking records and the published
// events consistent with each other.
type BookingService struct {
	bookings  repository.BookingRepository
	flights   repository.FlightRepository
	customers repository.CustomerRepository
	producer  Producer
	metrics   *metrics.Registry
	log       *zap.SugaredLogger

	bookingTopic string
}

type CreateBookingInput struct {
	FlightID   int64 `json:"flight_id"`
	CustomerID int64 `json:"customer_id"`
	PriceCents int64 `json:"price_cents"`
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = topic
	}
}

func WithMetrics(reg *metrics.Registry) BookingServiceOption {
	return func(s *BookingService) {
		s.metrics = reg
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	customers repository.CustomerRepository,
	log *zap.SugaredLogger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:  bookings,
		flights:   flights,
		customers: customers,
		log:       log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create books one seat on a flight for a customer at the given price. The
// capacity check runs before the customer lookup, so a full flight wins over
// a missing customer. The seat increment and the booking row are committed
// together by the repository; a concurrent create that loses the race on the
// last seat surfaces as ErrCapacityExceeded even after passing the check
// here.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if flight.AvailableSeats() <= 0 {
		s.countCapacityConflict()
		return nil, domain.ErrCapacityExceeded
	}

	customer, err := s.customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	if err := flight.ReserveSeat(); err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			s.countCapacityConflict()
		}
		return nil, err
	}

	b := &domain.Booking{
		Reference:   uuid.NewString(),
		FlightID:    flight.ID,
		CustomerID:  customer.ID,
		PriceCents:  input.PriceCents,
		BookingDate: time.Now(),
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			s.countCapacityConflict()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.BookingsCreatedTotal.Inc()
	}
	s.publish(ctx, "booking_created", b, customer.Email)
	return b, nil
}

// Cancel deletes the booking and releases its seat. A booking can only be
// cancelled once: the second attempt fails with ErrBookingNotFound because
// the record is gone. A seat counter already at zero is logged and tolerated,
// never surfaced as an error.
func (s *BookingService) Cancel(ctx context.Context, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if _, err := s.flights.GetByID(ctx, b.FlightID); err != nil {
		if !errors.Is(err, domain.ErrFlightNotFound) {
			return err
		}
		// Dangling reference: the flight was deleted while the booking still
		// existed. The booking is removed anyway.
		s.log.Warnw("cancelling booking whose flight no longer exists",
			"booking_id", b.ID, "flight_id", b.FlightID)
	}

	// The seat release itself happens inside the delete transaction; the
	// store's outcome is the authoritative one.
	outcome, err := s.bookings.DeleteWithSeatRelease(ctx, b.ID)
	if err != nil {
		return err
	}
	if outcome == domain.SeatAlreadyFree {
		s.log.Warnw("released seat on flight with no booked seats",
			"booking_id", b.ID, "flight_id", b.FlightID)
		if s.metrics != nil {
			s.metrics.SeatAlreadyFreeTotal.Inc()
		}
	}

	if s.metrics != nil {
		s.metrics.BookingsCancelledTotal.Inc()
	}
	if s.producer != nil && s.bookingTopic != "" {
		s.publish(ctx, "booking_cancelled", b, s.customerEmail(ctx, b.CustomerID))
	}
	return nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}

func (s *BookingService) countCapacityConflict() {
	if s.metrics != nil {
		s.metrics.CapacityConflictsTotal.Inc()
	}
}

// customerEmail is best-effort: a cancellation must not fail because the
// notification address could not be resolved.
func (s *BookingService) customerEmail(ctx context.Context, customerID int64) string {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return ""
	}
	return customer.Email
}

func (s *BookingService) publish(ctx context.Context, eventType string, b *domain.Booking, email string) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		Reference:   b.Reference,
		BookingID:   b.ID,
		FlightID:    b.FlightID,
		CustomerID:  b.CustomerID,
		Email:       email,
		PriceCents:  b.PriceCents,
		BookingDate: b.BookingDate,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, b.Reference, event); err != nil {
		s.log.Warnw("publish booking event failed",
			"type", eventType, "reference", b.Reference, "error", err)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
