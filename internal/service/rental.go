package service

import (
	"context"
	"fmt"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/events"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"
)

// RentalRequest is the input to rental creation. Customer is optional;
// rentals without one are booked against the default customer.
type RentalRequest struct {
	ToolCode        string
	CheckOutDate    time.Time
	DayCount        int
	DiscountPercent int
	Location        string
	Customer        *domain.Customer
}

// RentalService drives the rental state machine:
// CREATED -> CHECKED_OUT -> CHECKED_IN, or CREATED -> CANCELLED.
type RentalService struct {
	rentalRepo   repository.RentalRepository
	toolRepo     repository.ToolRepository
	customerRepo repository.CustomerRepository
	chargeSvc    *ChargeService
	bus          *events.Bus
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	toolRepo repository.ToolRepository,
	customerRepo repository.CustomerRepository,
	chargeSvc *ChargeService,
	bus *events.Bus,
) *RentalService {
	return &RentalService{
		rentalRepo:   rentalRepo,
		toolRepo:     toolRepo,
		customerRepo: customerRepo,
		chargeSvc:    chargeSvc,
		bus:          bus,
	}
}

// Create books a new rental: resolves the customer and an available tool,
// computes the charge, persists the rental in CREATED status and publishes
// RentalCreated.
func (s *RentalService) Create(ctx context.Context, req RentalRequest) (*domain.Rental, error) {
	if req.ToolCode == "" {
		return nil, fmt.Errorf("%w: tool code is required", domain.ErrInvalidInput)
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: discount percent %d must be between 0 and 100", domain.ErrInvalidInput, req.DiscountPercent)
	}

	customer, err := s.findCustomer(ctx, req.Customer)
	if err != nil {
		return nil, err
	}

	tool, err := s.toolRepo.GetAvailableByCode(ctx, req.ToolCode)
	if err != nil {
		return nil, err
	}

	charges, err := s.chargeSvc.CalculateCharges(ctx, tool.ToolType, req.CheckOutDate, req.DayCount)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		CheckOutDate:    req.CheckOutDate,
		DayCount:        req.DayCount,
		DiscountPercent: req.DiscountPercent,
		Status:          domain.RentalStatusCreated,
		ChargeAmount:    charges.ChargedAmount,
		CustomerID:      customer.ID,
		ToolCode:        tool.Code,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	rental.ChargedDaysCount = charges.ChargedDays
	rental.DailyCharge = charges.DailyCharge

	logger.Info("Rental created", "rental_id", rental.ID, "tool_code", rental.ToolCode, "charge", rental.ChargeAmount)

	if err := s.bus.PublishRentalCreated(ctx, events.RentalCreated{Rental: rental}); err != nil {
		return nil, err
	}
	return rental, nil
}

// Get returns a rental by id.
func (s *RentalService) Get(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

// CheckIn transitions a rental CHECKED_OUT -> CHECKED_IN. This is an
// operator action, not gated by the agreement.
func (s *RentalService) CheckIn(ctx context.Context, rentalID int64) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	return s.changeStatus(ctx, rental, domain.RentalStatusCheckedIn, func(ctx context.Context, r *domain.Rental) error {
		return s.bus.PublishRentalCheckedIn(ctx, events.RentalCheckedIn{Rental: r})
	})
}

// OnRentalAgreementAccepted checks out the rental owning the accepted
// agreement.
func (s *RentalService) OnRentalAgreementAccepted(ctx context.Context, event events.RentalAgreementAccepted) error {
	rental, err := s.rentalRepo.GetByID(ctx, event.Agreement.RentalID)
	if err != nil {
		return err
	}
	_, err = s.changeStatus(ctx, rental, domain.RentalStatusCheckedOut, func(ctx context.Context, r *domain.Rental) error {
		return s.bus.PublishRentalCheckedOut(ctx, events.RentalCheckedOut{Rental: r})
	})
	return err
}

// OnRentalAgreementRejected cancels the rental owning the rejected
// agreement.
func (s *RentalService) OnRentalAgreementRejected(ctx context.Context, event events.RentalAgreementRejected) error {
	rental, err := s.rentalRepo.GetByID(ctx, event.Agreement.RentalID)
	if err != nil {
		return err
	}
	_, err = s.changeStatus(ctx, rental, domain.RentalStatusCancelled, func(ctx context.Context, r *domain.Rental) error {
		return s.bus.PublishRentalCanceled(ctx, events.RentalCanceled{Rental: r})
	})
	return err
}

func (s *RentalService) changeStatus(ctx context.Context, rental *domain.Rental, status domain.RentalStatus, publish func(context.Context, *domain.Rental) error) (*domain.Rental, error) {
	if !rental.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: rental %d cannot move from %s to %s",
			domain.ErrInvalidStateTransition, rental.ID, rental.Status, status)
	}
	rental.Status = status
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	logger.Info("Rental status changed", "rental_id", rental.ID, "status", rental.Status)
	if err := publish(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *RentalService) findCustomer(ctx context.Context, partial *domain.Customer) (*domain.Customer, error) {
	if partial != nil {
		customer, err := s.customerRepo.FindMatching(ctx, partial)
		if err == nil {
			return customer, nil
		}
	}
	return s.customerRepo.GetDefault(ctx)
}
