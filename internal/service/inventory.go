package service

import (
	"context"

	"toolrent-backend/internal/events"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"
)

// InventoryService keeps the per-pool on-hold/checked-out counters in step
// with the rental lifecycle. Each handler loads the pool owning the rental's
// tool and applies a guarded atomic delta; concurrent rentals against the
// same pool serialize on the pool row.
type InventoryService struct {
	inventoryRepo repository.ToolInventoryRepository
	toolRepo      repository.ToolRepository
}

func NewInventoryService(inventoryRepo repository.ToolInventoryRepository, toolRepo repository.ToolRepository) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		toolRepo:      toolRepo,
	}
}

// OnRentalCreated places one unit on hold.
func (s *InventoryService) OnRentalCreated(ctx context.Context, event events.RentalCreated) error {
	return s.adjust(ctx, event.Rental.ToolCode, 1, 0)
}

// OnRentalCanceled releases the hold.
func (s *InventoryService) OnRentalCanceled(ctx context.Context, event events.RentalCanceled) error {
	return s.adjust(ctx, event.Rental.ToolCode, -1, 0)
}

// OnRentalCheckedOut converts the hold into a checked-out unit.
func (s *InventoryService) OnRentalCheckedOut(ctx context.Context, event events.RentalCheckedOut) error {
	return s.adjust(ctx, event.Rental.ToolCode, -1, 1)
}

// OnRentalCheckedIn returns the unit to stock.
func (s *InventoryService) OnRentalCheckedIn(ctx context.Context, event events.RentalCheckedIn) error {
	return s.adjust(ctx, event.Rental.ToolCode, 0, -1)
}

func (s *InventoryService) adjust(ctx context.Context, toolCode string, onHoldDelta, checkedOutDelta int) error {
	inventory, err := s.inventoryRepo.GetByToolCode(ctx, toolCode)
	if err != nil {
		return err
	}
	if err := s.inventoryRepo.AdjustCounts(ctx, inventory.ID, onHoldDelta, checkedOutDelta); err != nil {
		return err
	}
	logger.Debug("Inventory adjusted",
		"inventory_id", inventory.ID,
		"tool_code", toolCode,
		"on_hold_delta", onHoldDelta,
		"checked_out_delta", checkedOutDelta,
	)
	return nil
}
