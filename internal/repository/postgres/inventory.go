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

type toolInventoryRepository struct {
	db *sql.DB
}

func NewToolInventoryRepository(db *sql.DB) repository.ToolInventoryRepository {
	return &toolInventoryRepository{db: db}
}

func (r *toolInventoryRepository) GetByID(ctx context.Context, id int64) (*domain.ToolInventory, error) {
	inv := &domain.ToolInventory{}
	query := `SELECT id, location, stock_count, checked_out_count, on_hold_count FROM tool_inventories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&inv.ID, &inv.Location, &inv.StockCount, &inv.CheckedOutCount, &inv.OnHoldCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: tool inventory %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *toolInventoryRepository) GetByToolCode(ctx context.Context, toolCode string) (*domain.ToolInventory, error) {
	inv := &domain.ToolInventory{}
	query := `SELECT i.id, i.location, i.stock_count, i.checked_out_count, i.on_hold_count
	          FROM tool_inventories i
	          JOIN tools t ON t.tool_inventory_id = i.id
	          WHERE t.code = $1`
	err := r.db.QueryRowContext(ctx, query, toolCode).
		Scan(&inv.ID, &inv.Location, &inv.StockCount, &inv.CheckedOutCount, &inv.OnHoldCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no inventory pool for tool %s", domain.ErrNotFound, toolCode)
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// AdjustCounts is a single guarded UPDATE: the row lock serializes
// concurrent rentals against the same pool, and the predicates reject any
// delta that would drive a counter negative or oversubscribe the stock.
func (r *toolInventoryRepository) AdjustCounts(ctx context.Context, id int64, onHoldDelta, checkedOutDelta int) error {
	query := `UPDATE tool_inventories
	          SET on_hold_count = on_hold_count + $1,
	              checked_out_count = checked_out_count + $2,
	              updated_on = $3
	          WHERE id = $4
	            AND on_hold_count + $1 >= 0
	            AND checked_out_count + $2 >= 0
	            AND on_hold_count + $1 + checked_out_count + $2 <= stock_count`
	result, err := r.db.ExecContext(ctx, query, onHoldDelta, checkedOutDelta, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: pool %d rejected deltas on_hold=%+d checked_out=%+d",
			domain.ErrInventoryConflict, id, onHoldDelta, checkedOutDelta)
	}
	return nil
}
