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

type rentalAgreementRepository struct {
	db *sql.DB
}

func NewRentalAgreementRepository(db *sql.DB) repository.RentalAgreementRepository {
	return &rentalAgreementRepository{db: db}
}

func (r *rentalAgreementRepository) Create(ctx context.Context, a *domain.RentalAgreement) error {
	query := `INSERT INTO rental_agreements (reference, agreement, status, rental_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Reference, a.Agreement, a.Status, a.RentalID, time.Now(), time.Now()).Scan(&a.ID)
}

func (r *rentalAgreementRepository) GetByID(ctx context.Context, id int64) (*domain.RentalAgreement, error) {
	a := &domain.RentalAgreement{}
	query := `SELECT id, reference, agreement, status, rental_id FROM rental_agreements WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Reference, &a.Agreement, &a.Status, &a.RentalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: rental agreement %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *rentalAgreementRepository) GetByRentalID(ctx context.Context, rentalID int64) (*domain.RentalAgreement, error) {
	a := &domain.RentalAgreement{}
	query := `SELECT id, reference, agreement, status, rental_id FROM rental_agreements WHERE rental_id = $1`
	err := r.db.QueryRowContext(ctx, query, rentalID).Scan(&a.ID, &a.Reference, &a.Agreement, &a.Status, &a.RentalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no agreement for rental %d", domain.ErrNotFound, rentalID)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *rentalAgreementRepository) Update(ctx context.Context, a *domain.RentalAgreement) error {
	query := `UPDATE rental_agreements SET status=$1, updated_on=$2 WHERE id=$3`
	result, err := r.db.ExecContext(ctx, query, a.Status, time.Now(), a.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: rental agreement %d", domain.ErrNotFound, a.ID)
	}
	return nil
}

func (r *rentalAgreementRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rental_agreements WHERE id = $1`, id)
	return err
}
