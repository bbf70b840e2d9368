package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airadmin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type PGCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

func (r *PGCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.QueryRow(ctx, `INSERT INTO customers (name, email) VALUES ($1, $2) RETURNING id, created_at`,
		customer.Name, customer.Email).
		Scan(&customer.ID, &customer.CreatedAt)
}

func (r *PGCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, created_at FROM customers WHERE id=$1`, id)
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, created_at FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PGCustomerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
