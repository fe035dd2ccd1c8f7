package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (check_out_date, day_count, discount_percent, status, charge_amount, customer_id, tool_code, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rt.CheckOutDate, rt.DayCount, rt.DiscountPercent, rt.Status, rt.ChargeAmount, rt.CustomerID, rt.ToolCode,
		time.Now(), time.Now(),
	).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, check_out_date, day_count, discount_percent, status, charge_amount, customer_id, tool_code FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rt.ID, &rt.CheckOutDate, &rt.DayCount, &rt.DiscountPercent, &rt.Status, &rt.ChargeAmount, &rt.CustomerID, &rt.ToolCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: rental %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, discount_percent=$2, charge_amount=$3, updated_on=$4 WHERE id=$5`
	result, err := r.db.ExecContext(ctx, query, rt.Status, rt.DiscountPercent, rt.ChargeAmount, time.Now(), rt.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: rental %d", domain.ErrNotFound, rt.ID)
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) error {
	// Deleting a rental detaches its agreement first; the rental is the
	// aggregate root.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rental_agreements WHERE rental_id = $1`, id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	return err
}
