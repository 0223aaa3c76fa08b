package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler orchestrates order workflow progression.
// Moving an order to delivered also releases the assigned partner's load
// slot and counts the completed delivery; both updates commit atomically.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Picked)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Status update failed: %v", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderPartnerUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update operations.
// Requires an OrderPartnerUoWFactory since delivery touches both aggregates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderPartnerUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Loads the order, progresses it through the aggregate's workflow rules,
// and, when the order reaches delivered status, completes the delivery on
// the assigned partner within the same transaction.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Progress(cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Status() == order.Delivered {
		if err = h.completeDelivery(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// completeDelivery releases the assigned partner's load slot and counts the
// completed delivery. The order's assignee is guaranteed non-nil here: the
// aggregate only allows delivered status on assigned orders.
func (h UpdateOrderStatusCommandHandler) completeDelivery(
	ctx context.Context,
	uow OrderPartnerUoW,
	aggregate *order.Order,
) error {
	partnerRepo := uow.PartnerRepository()

	assigned, err := partnerRepo.Get(ctx, *aggregate.AssignedTo())
	if err != nil {
		return err
	}

	if err = assigned.CompleteDelivery(); err != nil {
		return err
	}

	return partnerRepo.Update(ctx, assigned)
}
