package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"toolrent-backend/internal/domain"
)

// MockHolidayRepo
type MockHolidayRepo struct {
	mock.Mock
}

func (m *MockHolidayRepo) ListAll(ctx context.Context) ([]domain.Holiday, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Holiday), args.Error(1)
}

// MockChargeRepo
type MockChargeRepo struct {
	mock.Mock
}

func (m *MockChargeRepo) GetByToolType(ctx context.Context, toolType domain.ToolType) (*domain.Charge, error) {
	args := m.Called(ctx, toolType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeRepo) ListAll(ctx context.Context) ([]domain.Charge, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Charge), args.Error(1)
}

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) GetByCode(ctx context.Context, code string) (*domain.Tool, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

func (m *MockToolRepo) GetAvailableByCode(ctx context.Context, code string) (*domain.Tool, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) FindMatching(ctx context.Context, partial *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) GetDefault(ctx context.Context) (*domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAgreementRepo
type MockAgreementRepo struct {
	mock.Mock
}

func (m *MockAgreementRepo) Create(ctx context.Context, agreement *domain.RentalAgreement) error {
	args := m.Called(ctx, agreement)
	return args.Error(0)
}

func (m *MockAgreementRepo) GetByID(ctx context.Context, id int64) (*domain.RentalAgreement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalAgreement), args.Error(1)
}

func (m *MockAgreementRepo) GetByRentalID(ctx context.Context, rentalID int64) (*domain.RentalAgreement, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalAgreement), args.Error(1)
}

func (m *MockAgreementRepo) Update(ctx context.Context, agreement *domain.RentalAgreement) error {
	args := m.Called(ctx, agreement)
	return args.Error(0)
}

func (m *MockAgreementRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) GetByID(ctx context.Context, id int64) (*domain.ToolInventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToolInventory), args.Error(1)
}

func (m *MockInventoryRepo) GetByToolCode(ctx context.Context, toolCode string) (*domain.ToolInventory, error) {
	args := m.Called(ctx, toolCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToolInventory), args.Error(1)
}

func (m *MockInventoryRepo) AdjustCounts(ctx context.Context, id int64, onHoldDelta, checkedOutDelta int) error {
	args := m.Called(ctx, id, onHoldDelta, checkedOutDelta)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendAgreementPending(ctx context.Context, email, name string, agreement *domain.RentalAgreement) error {
	args := m.Called(ctx, email, name, agreement)
	return args.Error(0)
}

func (m *MockEmailService) SendAgreementDecision(ctx context.Context, email, name string, agreement *domain.RentalAgreement) error {
	args := m.Called(ctx, email, name, agreement)
	return args.Error(0)
}
