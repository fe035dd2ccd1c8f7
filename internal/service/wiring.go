package service

import "toolrent-backend/internal/events"

// RegisterEventHandlers subscribes the lifecycle handlers to the bus. The
// agreement handler runs before the inventory handler on RentalCreated so
// the agreement document is durably committed before counters move.
func RegisterEventHandlers(
	bus *events.Bus,
	rentals *RentalService,
	agreements *RentalAgreementService,
	inventory *InventoryService,
) {
	bus.SubscribeRentalCreated(agreements.OnRentalCreated)
	bus.SubscribeRentalCreated(inventory.OnRentalCreated)

	bus.SubscribeRentalAgreementAccepted(rentals.OnRentalAgreementAccepted)
	bus.SubscribeRentalAgreementRejected(rentals.OnRentalAgreementRejected)

	bus.SubscribeRentalCheckedOut(inventory.OnRentalCheckedOut)
	bus.SubscribeRentalCheckedIn(inventory.OnRentalCheckedIn)
	bus.SubscribeRentalCanceled(inventory.OnRentalCanceled)
}
