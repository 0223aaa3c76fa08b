package commands

import (
	"context"

	"dispatch/internal/core/domain/model/partner"
)

// CreatePartnerCommandHandler handles the business logic for partner registration.
//
// Example:
//
//	handler := NewCreatePartnerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("partner registration failed: %w", err)
//	}
//	// Partner is now active and part of the dispatch pool
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner registration.
// Requires a PartnerUoWFactory for transactional persistence.
func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner registration command.
// Creates the aggregate in its default active state and persists it within
// a transaction.
func (h CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newPartner, err := partner.NewPartner(
		cmd.PartnerID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Areas(), cmd.Shift(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, newPartner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
