package commands

import (
	"context"
	"errors"
)

// ErrPartnerHasActiveOrders is returned when removing a partner that still
// carries assigned or picked orders.
var ErrPartnerHasActiveOrders = errors.New("partner has active orders")

// DeletePartnerCommandHandler handles partner removal.
// Partners still carrying orders are protected: their load slots refer to
// live assignments that must be delivered first.
type DeletePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewDeletePartnerCommandHandler creates a handler for partner removal.
func NewDeletePartnerCommandHandler(uowFactory PartnerUoWFactory) DeletePartnerCommandHandler {
	return DeletePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner removal command.
// Returns ErrPartnerHasActiveOrders when the partner's load counter is
// above zero; removal succeeds only for idle partners.
func (h DeletePartnerCommandHandler) Handle(ctx context.Context, cmd DeletePartnerCommand) error {
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

	partnerRepo := uow.PartnerRepository()

	aggregate, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if aggregate.CurrentLoad() > 0 {
		return ErrPartnerHasActiveOrders
	}

	if err = partnerRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
