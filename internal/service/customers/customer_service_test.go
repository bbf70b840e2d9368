package customers

import (
	"context"
	"testing"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCustomerService_Create(t *testing.T) {
	mockRepo := &MockCustomerRepository{}
	service := NewCustomerService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Customer")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Customer).ID = 7
		}).
		Return(nil).Once()

	customer, err := service.Create(ctx, CustomerInput{Name: "Anna", Email: "anna@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), customer.ID)
	assert.Equal(t, "Anna", customer.Name)
	mockRepo.AssertExpectations(t)
}

func TestCustomerService_Create_ValidationErrors(t *testing.T) {
	mockRepo := &MockCustomerRepository{}
	service := NewCustomerService(mockRepo)
	ctx := context.Background()

	testCases := []struct {
		name  string
		input CustomerInput
	}{
		{name: "empty name", input: CustomerInput{Email: "anna@example.com"}},
		{name: "empty email", input: CustomerInput{Name: "Anna"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			customer, err := service.Create(ctx, tc.input)
			assert.Error(t, err)
			assert.Nil(t, customer)
		})
	}
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCustomerService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockCustomerRepository{}
	service := NewCustomerService(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrCustomerNotFound).Once()

	customer, err := service.GetByID(ctx, 9)

	assert.Nil(t, customer)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
