package postgres

import (
	"context"
	"database/sql"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type holidayRepository struct {
	db *sql.DB
}

func NewHolidayRepository(db *sql.DB) repository.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) ListAll(ctx context.Context) ([]domain.Holiday, error) {
	query := `SELECT id, name, holiday_type, month_number, day_number, observed_on_closest_weekday FROM holidays ORDER BY month_number, day_number`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.HolidayType, &h.MonthNumber, &h.DayNumber, &h.ObservedOnClosestWeekday); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
