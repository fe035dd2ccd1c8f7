package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, email, phone, is_default FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.IsDefault)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: customer %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) FindMatching(ctx context.Context, partial *domain.Customer) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, email, phone, is_default FROM customers
	          WHERE ($1 = '' OR email = $1) AND ($2 = '' OR name = $2) AND ($3 = '' OR phone = $3)
	          ORDER BY id LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, partial.Email, partial.Name, partial.Phone).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.IsDefault)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no customer matching request", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) GetDefault(ctx context.Context) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, email, phone, is_default FROM customers WHERE is_default = true LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.IsDefault)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: default customer is not configured", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
