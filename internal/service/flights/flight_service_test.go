package flights

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListFrom(ctx context.Context, from time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, from)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestFlightService_Create(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Flight).ID = 1
		}).
		Return(nil).Once()
	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()

	flight, err := service.Create(ctx, FlightInput{
		AirlineName: "Aeroflot",
		TotalSeats:  120,
		FlightDate:  date,
		PriceCents:  15000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), flight.ID)
	assert.Equal(t, 0, flight.BookedSeats)
	assert.Equal(t, 120, flight.AvailableSeats())

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Create_ValidationErrors(t *testing.T) {
	service := NewFlightService(&MockFlightRepository{}, nil)
	ctx := context.Background()

	testCases := []struct {
		name  string
		input FlightInput
	}{
		{name: "empty airline", input: FlightInput{TotalSeats: 10}},
		{name: "zero seats", input: FlightInput{AirlineName: "Aeroflot"}},
		{name: "negative seats", input: FlightInput{AirlineName: "Aeroflot", TotalSeats: -5}},
		{name: "negative price", input: FlightInput{AirlineName: "Aeroflot", TotalSeats: 10, PriceCents: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flight, err := service.Create(ctx, tc.input)
			assert.Error(t, err)
			assert.Nil(t, flight)
		})
	}
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	cached := []domain.Flight{{ID: 1, AirlineName: "Aeroflot", TotalSeats: 100}}
	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	mockRepo.AssertNotCalled(t, "List")
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	stored := []domain.Flight{{ID: 1, AirlineName: "Aeroflot", TotalSeats: 100}}
	mockCache.On("GetFlights", ctx).Return([]domain.Flight(nil), nil).Once()
	mockRepo.On("List", ctx).Return(stored, nil).Once()
	mockCache.On("SetFlights", ctx, stored).Return(nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Update_DoesNotTouchBookedSeats(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// The repository reports the stored seat counter back; the update itself
	// carries no booked-seat value.
	mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Flight")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Flight).BookedSeats = 42
		}).
		Return(nil).Once()

	flight, err := service.Update(ctx, 1, FlightInput{
		AirlineName: "Aeroflot",
		TotalSeats:  200,
		FlightDate:  date,
		PriceCents:  20000,
	})

	assert.NoError(t, err)
	assert.Equal(t, 42, flight.BookedSeats)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_Availability(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(1)).
		Return(&domain.Flight{ID: 1, TotalSeats: 100, BookedSeats: 37}, nil).Once()

	available, err := service.Availability(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, 63, available)
}

func TestFlightService_Availability_NotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrFlightNotFound).Once()

	_, err := service.Availability(ctx, 9)

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}
