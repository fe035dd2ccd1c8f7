package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/events"
)

// lifecycleFixture wires the services together over a real bus with mocked
// repositories, so the tests exercise the same event flow the server runs.
type lifecycleFixture struct {
	chargeRepo    *MockChargeRepo
	toolRepo      *MockToolRepo
	customerRepo  *MockCustomerRepo
	rentalRepo    *MockRentalRepo
	agreementRepo *MockAgreementRepo
	inventoryRepo *MockInventoryRepo

	bus        *events.Bus
	rentals    *RentalService
	agreements *RentalAgreementService
}

func newLifecycleFixture(t *testing.T, holidays []domain.Holiday) *lifecycleFixture {
	t.Helper()
	f := &lifecycleFixture{
		chargeRepo:    new(MockChargeRepo),
		toolRepo:      new(MockToolRepo),
		customerRepo:  new(MockCustomerRepo),
		rentalRepo:    new(MockRentalRepo),
		agreementRepo: new(MockAgreementRepo),
		inventoryRepo: new(MockInventoryRepo),
		bus:           events.NewBus(),
	}

	calendar := newCalendarService(t, holidays)
	charges := NewChargeService(f.chargeRepo, calendar)
	f.rentals = NewRentalService(f.rentalRepo, f.toolRepo, f.customerRepo, charges, f.bus)
	f.agreements = NewRentalAgreementService(f.agreementRepo, f.rentalRepo, f.toolRepo, f.customerRepo, NewDocumentGenerator(), nil, f.bus)
	inventory := NewInventoryService(f.inventoryRepo, f.toolRepo)

	RegisterEventHandlers(f.bus, f.rentals, f.agreements, inventory)
	return f
}

func ladder() *domain.Tool {
	return &domain.Tool{Code: "LADW-101", ToolType: domain.ToolTypeLadder, Brand: "Werner", InventoryID: 5}
}

func ladderCharge() *domain.Charge {
	return &domain.Charge{
		ToolType:      domain.ToolTypeLadder,
		DailyCharge:   decimal.RequireFromString("1.99"),
		WeekdayCharge: true,
		WeekendCharge: true,
	}
}

func ladderPool() *domain.ToolInventory {
	return &domain.ToolInventory{ID: 5, Location: "Main St", StockCount: 4}
}

func TestCreateRental(t *testing.T) {
	f := newLifecycleFixture(t, nil)
	ctx := context.Background()

	f.customerRepo.On("GetDefault", mock.Anything).Return(&domain.Customer{ID: 1, Name: "Walk-in", IsDefault: true}, nil)
	f.toolRepo.On("GetAvailableByCode", mock.Anything, "LADW-101").Return(ladder(), nil)
	f.toolRepo.On("GetByCode", mock.Anything, "LADW-101").Return(ladder(), nil)
	f.chargeRepo.On("GetByToolType", mock.Anything, domain.ToolTypeLadder).Return(ladderCharge(), nil)

	var order []string
	f.rentalRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Rental")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Rental).ID = 7
			order = append(order, "rental")
		}).Return(nil)

	var agreement *domain.RentalAgreement
	f.agreementRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.RentalAgreement")).
		Run(func(args mock.Arguments) {
			agreement = args.Get(1).(*domain.RentalAgreement)
			agreement.ID = 3
			order = append(order, "agreement")
		}).Return(nil)

	f.inventoryRepo.On("GetByToolCode", mock.Anything, "LADW-101").Return(ladderPool(), nil)
	f.inventoryRepo.On("AdjustCounts", mock.Anything, int64(5), 1, 0).
		Run(func(args mock.Arguments) { order = append(order, "inventory") }).Return(nil)

	rental, err := f.rentals.Create(ctx, RentalRequest{
		ToolCode:        "LADW-101",
		CheckOutDate:    time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		DayCount:        5,
		DiscountPercent: 10,
	})
	assert.NoError(t, err)

	assert.Equal(t, int64(7), rental.ID)
	assert.Equal(t, domain.RentalStatusCreated, rental.Status)
	assert.Equal(t, int64(1), rental.CustomerID)
	assert.Equal(t, 5, rental.ChargedDaysCount)
	assert.Equal(t, "9.95", rental.ChargeAmount.StringFixed(2))
	assert.Equal(t, "1.00", rental.DiscountAmount().StringFixed(2))
	assert.Equal(t, "8.95", rental.FinalCharge().StringFixed(2))

	if assert.NotNil(t, agreement) {
		assert.Equal(t, domain.RentalAgreementStatusPending, agreement.Status)
		assert.Equal(t, int64(7), agreement.RentalID)
		assert.NotEmpty(t, agreement.Reference)
		assert.Contains(t, agreement.Agreement, "Tool code: LADW-101")
		assert.Contains(t, agreement.Agreement, "Final charge: 8.95")
	}

	// The rental persists first, then the agreement, then the hold.
	assert.Equal(t, []string{"rental", "agreement", "inventory"}, order)
	f.inventoryRepo.AssertExpectations(t)
}

func TestCreateRentalMatchesCustomer(t *testing.T) {
	f := newLifecycleFixture(t, nil)
	requested := &domain.Customer{Name: "Ada", Email: "ada@example.com"}

	f.customerRepo.On("FindMatching", mock.Anything, requested).Return(&domain.Customer{ID: 42, Name: "Ada"}, nil)
	f.toolRepo.On("GetAvailableByCode", mock.Anything, "LADW-101").Return(ladder(), nil)
	f.toolRepo.On("GetByCode", mock.Anything, "LADW-101").Return(ladder(), nil)
	f.chargeRepo.On("GetByToolType", mock.Anything, domain.ToolTypeLadder).Return(ladderCharge(), nil)
	f.rentalRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Rental")).Return(nil)
	f.agreementRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.RentalAgreement")).Return(nil)
	f.inventoryRepo.On("GetByToolCode", mock.Anything, "LADW-101").Return(ladderPool(), nil)
	f.inventoryRepo.On("AdjustCounts", mock.Anything, int64(5), 1, 0).Return(nil)

	rental, err := f.rentals.Create(context.Background(), RentalRequest{
		ToolCode:     "LADW-101",
		CheckOutDate: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		DayCount:     2,
		Customer:     requested,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), rental.CustomerID)
	f.customerRepo.AssertNotCalled(t, "GetDefault", mock.Anything)
}

func TestCreateRentalFallsBackToDefaultCustomer(t *testing.T) {
	f := newLifecycleFixture(t, nil)
	requested := &domain.Customer{Name: "Nobody"}

	f.customerRepo.On("FindMatching", mock.Anything, requested).Return(nil, domain.ErrNotFound)
	f.customerRepo.On("GetDefault", mock.Anything).Return(&domain.Customer{ID: 1, IsDefault: true}, nil)
	f.toolRepo.On("GetAvailableByCode", mock.Anything, "LADW-101").Return(ladder(), nil)
	f.toolRepo.On("GetByCode", mock.Anything, "LADW-101").Return(ladder(), nil)
	f.chargeRepo.On("GetByToolType", mock.Anything, domain.ToolTypeLadder).Return(ladderCharge(), nil)
	f.rentalRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Rental")).Return(nil)
	f.agreementRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.RentalAgreement")).Return(nil)
	f.inventoryRepo.On("GetByToolCode", mock.Anything, "LADW-101").Return(ladderPool(), nil)
	f.inventoryRepo.On("AdjustCounts", mock.Anything, int64(5), 1, 0).Return(nil)

	rental, err := f.rentals.Create(context.Background(), RentalRequest{
		ToolCode:     "LADW-101",
		CheckOutDate: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		DayCount:     2,
		Customer:     requested,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rental.CustomerID)
}

func TestCreateRentalValidation(t *testing.T) {
	f := newLifecycleFixture(t, nil)
	ctx := context.Background()
	checkOut := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.rentals.Create(ctx, RentalRequest{CheckOutDate: checkOut, DayCount: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.rentals.Create(ctx, RentalRequest{ToolCode: "LADW-101", CheckOutDate: checkOut, DayCount: 2, DiscountPercent: 101})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.rentals.Create(ctx, RentalRequest{ToolCode: "LADW-101", CheckOutDate: checkOut, DayCount: 2, DiscountPercent: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f.rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRentalToolUnavailable(t *testing.T) {
	f := newLifecycleFixture(t, nil)

	f.customerRepo.On("GetDefault", mock.Anything).Return(&domain.Customer{ID: 1}, nil)
	f.toolRepo.On("GetAvailableByCode", mock.Anything, "JAKD-201").Return(nil, domain.ErrToolUnavailable)

	_, err := f.rentals.Create(context.Background(), RentalRequest{
		ToolCode:     "JAKD-201",
		CheckOutDate: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		DayCount:     2,
	})
	assert.ErrorIs(t, err, domain.ErrToolUnavailable)
	f.rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRentalInventoryConflict(t *testing.T) {
	f := newLifecycleFixture(t, nil)

	f.customerRepo.On("GetDefault", mock.Anything).Return(&domain.Customer{ID: 1}, nil)
	f.toolRepo.On("GetAvailableByCode", mock.Anything, "LADW-101").Return(ladder(), nil)
	f.toolRepo.On("GetByCode", mock.Anything, "LADW-101").Return(ladder(), nil)
	f.chargeRepo.On("GetByToolType", mock.Anything, domain.ToolTypeLadder).Return(ladderCharge(), nil)
	f.rentalRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Rental")).Return(nil)
	f.agreementRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.RentalAgreement")).Return(nil)
	f.inventoryRepo.On("GetByToolCode", mock.Anything, "LADW-101").Return(ladderPool(), nil)
	f.inventoryRepo.On("AdjustCounts", mock.Anything, int64(5), 1, 0).Return(domain.ErrInventoryConflict)

	_, err := f.rentals.Create(context.Background(), RentalRequest{
		ToolCode:     "LADW-101",
		CheckOutDate: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		DayCount:     2,
	})
	assert.ErrorIs(t, err, domain.ErrInventoryConflict)
}

func TestAcceptAgreementChecksOutRental(t *testing.T) {
	f := newLifecycleFixture(t, nil)
	agreement := &domain.RentalAgreement{ID: 3, Status: domain.RentalAgreementStatusPending, RentalID: 7}
	rental := &domain.Rental{ID: 7, Status: domain.RentalStatusCreated, ToolCode: "LADW-101"}

	f.agreementRepo.On("GetByID", mock.Anything, int64(3)).Return(agreement, nil)
	f.agreementRepo.On("Update", mock.Anything, agreement).Return(nil)
	f.rentalRepo.On("GetByID", mock.Anything, int64(7)).Return(rental, nil)
	f.rentalRepo.On("Update", mock.Anything, rental).Return(nil)
	f.inventoryRepo.On("GetByToolCode", mock.Anything, "LADW-101").Return(ladderPool(), nil)
	f.inventoryRepo.On("AdjustCounts", mock.Anything, int64(5), -1, 1).Return(nil)

	got, err := f.agreements.Accept(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, domain.RentalAgreementStatusAccepted, got.Status)
	assert.Equal(t, domain.RentalStatusCheckedOut, rental.Status)
	f.inventoryRepo.AssertExpectations(t)
}

func TestRejectAgreementCancelsRental(t *testing.T) {
	f := newLifecycleFixture(t, nil)
	agreement := &domain.RentalAgreement{ID: 3, Status: domain.RentalAgreementStatusPending, RentalID: 7}
	rental := &domain.Rental{ID: 7, Status: domain.RentalStatusCreated, ToolCode: "LADW-101"}

	f.agreementRepo.On("GetByID", mock.Anything, int64(3)).Return(agreement, nil)
	f.agreementRepo.On("Update", mock.Anything, agreement).Return(nil)
	f.rentalRepo.On("GetByID", mock.Anything, int64(7)).Return(rental, nil)
	f.rentalRepo.On("Update", mock.Anything, rental).Return(nil)
	f.inventoryRepo.On("GetByToolCode", mock.Anything, "LADW-101").Return(ladderPool(), nil)
	f.inventoryRepo.On("AdjustCounts", mock.Anything, int64(5), -1, 0).Return(nil)

	got, err := f.agreements.Reject(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, domain.RentalAgreementStatusRejected, got.Status)
	assert.Equal(t, domain.RentalStatusCancelled, rental.Status)
	f.inventoryRepo.AssertExpectations(t)
}

func TestAcceptAgreementTwice(t *testing.T) {
	f := newLifecycleFixture(t, nil)
	agreement := &domain.RentalAgreement{ID: 3, Status: domain.RentalAgreementStatusAccepted, RentalID: 7}

	f.agreementRepo.On("GetByID", mock.Anything, int64(3)).Return(agreement, nil)

	_, err := f.agreements.Accept(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Equal(t, domain.RentalAgreementStatusAccepted, agreement.Status)
	f.agreementRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.rentalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRejectAcceptedAgreement(t *testing.T) {
	f := newLifecycleFixture(t, nil)
	agreement := &domain.RentalAgreement{ID: 3, Status: domain.RentalAgreementStatusAccepted, RentalID: 7}

	f.agreementRepo.On("GetByID", mock.Anything, int64(3)).Return(agreement, nil)

	_, err := f.agreements.Reject(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	f.agreementRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCheckInRental(t *testing.T) {
	f := newLifecycleFixture(t, nil)
	rental := &domain.Rental{ID: 7, Status: domain.RentalStatusCheckedOut, ToolCode: "LADW-101"}

	f.rentalRepo.On("GetByID", mock.Anything, int64(7)).Return(rental, nil)
	f.rentalRepo.On("Update", mock.Anything, rental).Return(nil)
	f.inventoryRepo.On("GetByToolCode", mock.Anything, "LADW-101").Return(ladderPool(), nil)
	f.inventoryRepo.On("AdjustCounts", mock.Anything, int64(5), 0, -1).Return(nil)

	got, err := f.rentals.CheckIn(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, domain.RentalStatusCheckedIn, got.Status)
	f.inventoryRepo.AssertExpectations(t)
}

func TestCheckInRentalNotCheckedOut(t *testing.T) {
	f := newLifecycleFixture(t, nil)
	rental := &domain.Rental{ID: 7, Status: domain.RentalStatusCreated, ToolCode: "LADW-101"}

	f.rentalRepo.On("GetByID", mock.Anything, int64(7)).Return(rental, nil)

	_, err := f.rentals.CheckIn(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Equal(t, domain.RentalStatusCreated, rental.Status)
	f.rentalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
