package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand represents a request to change a registered partner's
// profile: contact details, covered areas, shift window, and availability.
// The load counter and performance history are owned by the dispatch and
// delivery workflows and cannot be set from outside.
type UpdatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	name      string
	email     string
	phone     string
	status    partner.Status
	areas     []string
	shift     partner.ShiftWindow

	guard guard.ConstructorGuard
}

// NewUpdatePartnerCommand creates a command to update a partner's profile.
func NewUpdatePartnerCommand(
	partnerID kernel.UUID,
	name string,
	email string,
	phone string,
	status partner.Status,
	areas []string,
	shift partner.ShiftWindow,
) (UpdatePartnerCommand, error) {
	command := UpdatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(partnerID),
		command.setName(name),
		command.setEmail(email),
		command.setPhone(phone),
		command.setStatus(status),
		command.setAreas(areas),
		command.setShift(shift),
	); err != nil {
		return UpdatePartnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePartnerCommandIsNotConstructed if validation fails.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}

// PartnerID returns the partner ID from the command.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner name from the command.
func (c UpdatePartnerCommand) Name() string {
	return c.name
}

// Email returns the partner email from the command.
func (c UpdatePartnerCommand) Email() string {
	return c.email
}

// Phone returns the partner phone from the command.
func (c UpdatePartnerCommand) Phone() string {
	return c.phone
}

// Status returns the requested availability status from the command.
func (c UpdatePartnerCommand) Status() partner.Status {
	return c.status
}

// Areas returns the covered delivery areas from the command.
func (c UpdatePartnerCommand) Areas() []string {
	out := make([]string, len(c.areas))
	copy(out, c.areas)
	return out
}

// Shift returns the partner's shift window from the command.
func (c UpdatePartnerCommand) Shift() partner.ShiftWindow {
	return c.shift
}

func (c *UpdatePartnerCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.partnerID = id
	return nil
}

func (c *UpdatePartnerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdatePartnerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *UpdatePartnerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *UpdatePartnerCommand) setStatus(status partner.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdatePartnerCommand) setAreas(areas []string) error {
	if len(areas) == 0 {
		return ErrAreasAreRequired
	}

	c.areas = make([]string, len(areas))
	copy(c.areas, areas)
	return nil
}

func (c *UpdatePartnerCommand) setShift(shift partner.ShiftWindow) error {
	if err := shift.Validate(); err != nil {
		return err
	}

	c.shift = shift
	return nil
}
