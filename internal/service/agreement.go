package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/events"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"
)

// RentalAgreementService manages the agreement lifecycle:
// PENDING -> ACCEPTED | REJECTED, both terminal.
type RentalAgreementService struct {
	agreementRepo repository.RentalAgreementRepository
	rentalRepo    repository.RentalRepository
	toolRepo      repository.ToolRepository
	customerRepo  repository.CustomerRepository
	documents     *DocumentGenerator
	emailSvc      EmailService
	bus           *events.Bus
}

func NewRentalAgreementService(
	agreementRepo repository.RentalAgreementRepository,
	rentalRepo repository.RentalRepository,
	toolRepo repository.ToolRepository,
	customerRepo repository.CustomerRepository,
	documents *DocumentGenerator,
	emailSvc EmailService,
	bus *events.Bus,
) *RentalAgreementService {
	return &RentalAgreementService{
		agreementRepo: agreementRepo,
		rentalRepo:    rentalRepo,
		toolRepo:      toolRepo,
		customerRepo:  customerRepo,
		documents:     documents,
		emailSvc:      emailSvc,
		bus:           bus,
	}
}

// Get returns an agreement by id.
func (s *RentalAgreementService) Get(ctx context.Context, id int64) (*domain.RentalAgreement, error) {
	return s.agreementRepo.GetByID(ctx, id)
}

// GetByRentalID returns the agreement owned by a rental.
func (s *RentalAgreementService) GetByRentalID(ctx context.Context, rentalID int64) (*domain.RentalAgreement, error) {
	return s.agreementRepo.GetByRentalID(ctx, rentalID)
}

// Accept transitions the agreement PENDING -> ACCEPTED and notifies
// downstream services.
func (s *RentalAgreementService) Accept(ctx context.Context, agreementID int64) (*domain.RentalAgreement, error) {
	return s.changeStatus(ctx, agreementID, domain.RentalAgreementStatusAccepted, func(ctx context.Context, a *domain.RentalAgreement) error {
		return s.bus.PublishRentalAgreementAccepted(ctx, events.RentalAgreementAccepted{Agreement: a})
	})
}

// Reject transitions the agreement PENDING -> REJECTED and notifies
// downstream services.
func (s *RentalAgreementService) Reject(ctx context.Context, agreementID int64) (*domain.RentalAgreement, error) {
	return s.changeStatus(ctx, agreementID, domain.RentalAgreementStatusRejected, func(ctx context.Context, a *domain.RentalAgreement) error {
		return s.bus.PublishRentalAgreementRejected(ctx, events.RentalAgreementRejected{Agreement: a})
	})
}

func (s *RentalAgreementService) changeStatus(ctx context.Context, agreementID int64, status domain.RentalAgreementStatus, publish func(context.Context, *domain.RentalAgreement) error) (*domain.RentalAgreement, error) {
	agreement, err := s.agreementRepo.GetByID(ctx, agreementID)
	if err != nil {
		return nil, err
	}
	if agreement.Status != domain.RentalAgreementStatusPending {
		return nil, fmt.Errorf("%w: agreement %d is %s, only PENDING agreements can be %s",
			domain.ErrInvalidStateTransition, agreement.ID, agreement.Status, status)
	}

	agreement.Status = status
	if err := s.agreementRepo.Update(ctx, agreement); err != nil {
		return nil, err
	}
	logger.Info("Rental agreement status changed", "agreement_id", agreement.ID, "status", agreement.Status)

	if err := publish(ctx, agreement); err != nil {
		return nil, err
	}
	s.notifyDecision(ctx, agreement)
	return agreement, nil
}

// OnRentalCreated generates the agreement document for a new rental and
// persists it with PENDING status. Runs as its own committed unit of work so
// the agreement is durably visible as soon as the handler returns.
func (s *RentalAgreementService) OnRentalCreated(ctx context.Context, event events.RentalCreated) error {
	tool, err := s.toolRepo.GetByCode(ctx, event.Rental.ToolCode)
	if err != nil {
		return err
	}

	agreement := &domain.RentalAgreement{
		Reference: uuid.NewString(),
		Agreement: s.documents.RentalAgreement(event.Rental, tool),
		Status:    domain.RentalAgreementStatusPending,
		RentalID:  event.Rental.ID,
	}
	if err := s.agreementRepo.Create(ctx, agreement); err != nil {
		return err
	}
	logger.Info("Rental agreement created", "agreement_id", agreement.ID, "rental_id", agreement.RentalID, "reference", agreement.Reference)

	s.notifyPending(ctx, event.Rental, agreement)
	return nil
}

// Email notifications are best effort: failures are logged, never fatal to
// the lifecycle.
func (s *RentalAgreementService) notifyPending(ctx context.Context, rental *domain.Rental, agreement *domain.RentalAgreement) {
	if s.emailSvc == nil {
		return
	}
	customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID)
	if err != nil || customer.Email == "" {
		return
	}
	if err := s.emailSvc.SendAgreementPending(ctx, customer.Email, customer.Name, agreement); err != nil {
		logger.Error("Failed to send agreement notification", "agreement_id", agreement.ID, "error", err)
	}
}

func (s *RentalAgreementService) notifyDecision(ctx context.Context, agreement *domain.RentalAgreement) {
	if s.emailSvc == nil {
		return
	}
	rental, err := s.rentalRepo.GetByID(ctx, agreement.RentalID)
	if err != nil {
		return
	}
	customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID)
	if err != nil || customer.Email == "" {
		return
	}
	if err := s.emailSvc.SendAgreementDecision(ctx, customer.Email, customer.Name, agreement); err != nil {
		logger.Error("Failed to send agreement decision notification", "agreement_id", agreement.ID, "error", err)
	}
}
