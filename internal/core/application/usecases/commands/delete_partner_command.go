package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeletePartnerCommandIsNotConstructed = errors.New(
	"DeletePartnerCommand must be created via NewDeletePartnerCommand constructor",
)

// DeletePartnerCommand represents a request to remove a partner from the
// system. Partners still carrying orders cannot be removed.
type DeletePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePartnerCommand creates a command to remove a partner.
func NewDeletePartnerCommand(partnerID kernel.UUID) (DeletePartnerCommand, error) {
	command := DeletePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPartnerID(partnerID); err != nil {
		return DeletePartnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeletePartnerCommandIsNotConstructed if validation fails.
func (c DeletePartnerCommand) Validate() error {
	return c.guard.Validate(ErrDeletePartnerCommandIsNotConstructed)
}

// PartnerID returns the partner ID from the command.
func (c DeletePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *DeletePartnerCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.partnerID = id
	return nil
}
