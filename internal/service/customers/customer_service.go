package customers

import (
	"context"
	"errors"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/Domenick1991/airadmin/internal/repository"
)

type CustomerUseCase interface {
	Create(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CustomerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, input CustomerInput) (*domain.Customer, error) {
	if input.Name == "" {
		return nil, errors.New("name is required")
	}
	if input.Email == "" {
		return nil, errors.New("email is required")
	}

	customer := &domain.Customer{Name: input.Name, Email: input.Email}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var _ CustomerUseCase = (*CustomerService)(nil)
