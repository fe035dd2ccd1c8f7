package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) GetByCode(ctx context.Context, code string) (*domain.Tool, error) {
	t := &domain.Tool{}
	query := `SELECT code, tool_type, brand, tool_inventory_id FROM tools WHERE code = $1`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&t.Code, &t.ToolType, &t.Brand, &t.InventoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: tool %s", domain.ErrNotFound, code)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolRepository) GetAvailableByCode(ctx context.Context, code string) (*domain.Tool, error) {
	t := &domain.Tool{}
	query := `SELECT t.code, t.tool_type, t.brand, t.tool_inventory_id
	          FROM tools t
	          JOIN tool_inventories i ON i.id = t.tool_inventory_id
	          WHERE t.code = $1 AND i.stock_count - i.checked_out_count - i.on_hold_count > 0`
	err := r.db.QueryRowContext(ctx, query, code).Scan(&t.Code, &t.ToolType, &t.Brand, &t.InventoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: could not find available tool with code %s", domain.ErrToolUnavailable, code)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
