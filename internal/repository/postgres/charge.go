package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type chargeRepository struct {
	db *sql.DB
}

func NewChargeRepository(db *sql.DB) repository.ChargeRepository {
	return &chargeRepository{db: db}
}

func (r *chargeRepository) GetByToolType(ctx context.Context, toolType domain.ToolType) (*domain.Charge, error) {
	c := &domain.Charge{}
	query := `SELECT id, tool_type, daily_charge, weekday_charge, weekend_charge, holiday_charge FROM charges WHERE tool_type = $1`
	err := r.db.QueryRowContext(ctx, query, toolType).
		Scan(&c.ID, &c.ToolType, &c.DailyCharge, &c.WeekdayCharge, &c.WeekendCharge, &c.HolidayCharge)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no charge for tool type %s", domain.ErrChargeNotFound, toolType)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *chargeRepository) ListAll(ctx context.Context) ([]domain.Charge, error) {
	query := `SELECT id, tool_type, daily_charge, weekday_charge, weekend_charge, holiday_charge FROM charges ORDER BY tool_type`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charges []domain.Charge
	for rows.Next() {
		var c domain.Charge
		if err := rows.Scan(&c.ID, &c.ToolType, &c.DailyCharge, &c.WeekdayCharge, &c.WeekendCharge, &c.HolidayCharge); err != nil {
			return nil, err
		}
		charges = append(charges, c)
	}
	return charges, rows.Err()
}
