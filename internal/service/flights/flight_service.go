package flights

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/Domenick1991/airadmin/internal/repository"
)

type FlightUseCase interface {
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
	ByDate(ctx context.Context, date time.Time) ([]domain.Flight, error)
	Upcoming(ctx context.Context, from time.Time) ([]domain.Flight, error)
	Availability(ctx context.Context, id int64) (int, error)
}

// Cache holds the flight list between reads. Booking writes do not touch it;
// staleness is bounded by the configured TTL.
type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

// FlightInput carries the editable flight attributes. The booked-seat count
// is never part of it.
type FlightInput struct {
	AirlineName string    `json:"airline_name"`
	TotalSeats  int       `json:"total_seats"`
	FlightDate  time.Time `json:"flight_date"`
	PriceCents  int64     `json:"price_cents"`
}

func (in FlightInput) validate() error {
	if in.AirlineName == "" {
		return errors.New("airline name is required")
	}
	if in.TotalSeats <= 0 {
		return errors.New("total seats must be positive")
	}
	if in.PriceCents < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		AirlineName: input.AirlineName,
		TotalSeats:  input.TotalSeats,
		FlightDate:  input.FlightDate,
		PriceCents:  input.PriceCents,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		ID:          id,
		AirlineName: input.AirlineName,
		TotalSeats:  input.TotalSeats,
		FlightDate:  input.FlightDate,
		PriceCents:  input.PriceCents,
	}
	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) ByDate(ctx context.Context, date time.Time) ([]domain.Flight, error) {
	return s.repo.ListByDate(ctx, date)
}

func (s *FlightService) Upcoming(ctx context.Context, from time.Time) ([]domain.Flight, error) {
	return s.repo.ListFrom(ctx, from)
}

func (s *FlightService) Availability(ctx context.Context, id int64) (int, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return flight.AvailableSeats(), nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
