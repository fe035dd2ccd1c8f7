package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"toolrent-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.HolidayRepository
	repository.ChargeRepository
	repository.ToolRepository
	repository.CustomerRepository
	repository.RentalRepository
	repository.RentalAgreementRepository
	repository.ToolInventoryRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		HolidayRepository:         NewHolidayRepository(db),
		ChargeRepository:          NewChargeRepository(db),
		ToolRepository:            NewToolRepository(db),
		CustomerRepository:        NewCustomerRepository(db),
		RentalRepository:          NewRentalRepository(db),
		RentalAgreementRepository: NewRentalAgreementRepository(db),
		ToolInventoryRepository:   NewToolInventoryRepository(db),
	}
}
