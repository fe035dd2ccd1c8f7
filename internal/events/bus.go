package events

import (
	"context"
	"sync"

	"toolrent-backend/internal/domain"
)

// Rental lifecycle events. "Event" here means an in-process notification
// delivered synchronously to registered handlers before the publishing call
// returns; a handler error aborts delivery and propagates to the publisher.

type RentalCreated struct {
	Rental *domain.Rental
}

type RentalCheckedOut struct {
	Rental *domain.Rental
}

type RentalCheckedIn struct {
	Rental *domain.Rental
}

type RentalCanceled struct {
	Rental *domain.Rental
}

type RentalAgreementAccepted struct {
	Agreement *domain.RentalAgreement
}

type RentalAgreementRejected struct {
	Agreement *domain.RentalAgreement
}

// Bus is a synchronous in-process event bus. Handlers run sequentially in
// registration order; the first handler error stops delivery.
type Bus struct {
	mu sync.RWMutex

	rentalCreated     []func(context.Context, RentalCreated) error
	rentalCheckedOut  []func(context.Context, RentalCheckedOut) error
	rentalCheckedIn   []func(context.Context, RentalCheckedIn) error
	rentalCanceled    []func(context.Context, RentalCanceled) error
	agreementAccepted []func(context.Context, RentalAgreementAccepted) error
	agreementRejected []func(context.Context, RentalAgreementRejected) error
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) SubscribeRentalCreated(handler func(context.Context, RentalCreated) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rentalCreated = append(b.rentalCreated, handler)
}

func (b *Bus) PublishRentalCreated(ctx context.Context, event RentalCreated) error {
	b.mu.RLock()
	handlers := append([]func(context.Context, RentalCreated) error(nil), b.rentalCreated...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bus) SubscribeRentalCheckedOut(handler func(context.Context, RentalCheckedOut) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rentalCheckedOut = append(b.rentalCheckedOut, handler)
}

func (b *Bus) PublishRentalCheckedOut(ctx context.Context, event RentalCheckedOut) error {
	b.mu.RLock()
	handlers := append([]func(context.Context, RentalCheckedOut) error(nil), b.rentalCheckedOut...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bus) SubscribeRentalCheckedIn(handler func(context.Context, RentalCheckedIn) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rentalCheckedIn = append(b.rentalCheckedIn, handler)
}

func (b *Bus) PublishRentalCheckedIn(ctx context.Context, event RentalCheckedIn) error {
	b.mu.RLock()
	handlers := append([]func(context.Context, RentalCheckedIn) error(nil), b.rentalCheckedIn...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bus) SubscribeRentalCanceled(handler func(context.Context, RentalCanceled) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rentalCanceled = append(b.rentalCanceled, handler)
}

func (b *Bus) PublishRentalCanceled(ctx context.Context, event RentalCanceled) error {
	b.mu.RLock()
	handlers := append([]func(context.Context, RentalCanceled) error(nil), b.rentalCanceled...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bus) SubscribeRentalAgreementAccepted(handler func(context.Context, RentalAgreementAccepted) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.agreementAccepted = append(b.agreementAccepted, handler)
}

func (b *Bus) PublishRentalAgreementAccepted(ctx context.Context, event RentalAgreementAccepted) error {
	b.mu.RLock()
	handlers := append([]func(context.Context, RentalAgreementAccepted) error(nil), b.agreementAccepted...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bus) SubscribeRentalAgreementRejected(handler func(context.Context, RentalAgreementRejected) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.agreementRejected = append(b.agreementRejected, handler)
}

func (b *Bus) PublishRentalAgreementRejected(ctx context.Context, event RentalAgreementRejected) error {
	b.mu.RLock()
	handlers := append([]func(context.Context, RentalAgreementRejected) error(nil), b.agreementRejected...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
