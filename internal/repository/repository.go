package repository

import (
	"context"

	"toolrent-backend/internal/domain"
)

type HolidayRepository interface {
	ListAll(ctx context.Context) ([]domain.Holiday, error)
}

type ChargeRepository interface {
	GetByToolType(ctx context.Context, toolType domain.ToolType) (*domain.Charge, error)
	ListAll(ctx context.Context) ([]domain.Charge, error)
}

type ToolRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Tool, error)
	// GetAvailableByCode returns the tool only if its pool has free stock
	// (stock - checked out - on hold > 0).
	GetAvailableByCode(ctx context.Context, code string) (*domain.Tool, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	// FindMatching matches on whichever of name/email/phone are set.
	FindMatching(ctx context.Context, partial *domain.Customer) (*domain.Customer, error)
	GetDefault(ctx context.Context) (*domain.Customer, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int64) error
}

type RentalAgreementRepository interface {
	Create(ctx context.Context, agreement *domain.RentalAgreement) error
	GetByID(ctx context.Context, id int64) (*domain.RentalAgreement, error)
	GetByRentalID(ctx context.Context, rentalID int64) (*domain.RentalAgreement, error)
	Update(ctx context.Context, agreement *domain.RentalAgreement) error
	Delete(ctx context.Context, id int64) error
}

type ToolInventoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ToolInventory, error)
	GetByToolCode(ctx context.Context, toolCode string) (*domain.ToolInventory, error)
	// AdjustCounts applies the deltas atomically, guarded so that no counter
	// goes negative and checked_out + on_hold never exceeds stock. A failed
	// guard yields domain.ErrInventoryConflict.
	AdjustCounts(ctx context.Context, id int64, onHoldDelta, checkedOutDelta int) error
}
