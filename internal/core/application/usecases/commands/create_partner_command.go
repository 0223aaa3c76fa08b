package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreatePartnerCommandIsNotConstructed = errors.New(
		"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrEmailIsRequired = errors.New("email is required")
	ErrPhoneIsRequired = errors.New("phone is required")
	ErrAreasAreRequired = errors.New("at least one delivery area is required")
)

// CreatePartnerCommand represents a request to register a new delivery
// partner. The partner starts active with zero load and default performance.
//
// Example:
//
//	shift, _ := partner.ParseShiftWindow("09:00", "21:00")
//	cmd, err := commands.NewCreatePartnerCommand("Ravi Kumar", "ravi@example.com",
//	    "+91-98200-00000", []string{"Bandra", "Andheri"}, shift)
//	if err != nil {
//	    return fmt.Errorf("invalid partner data: %w", err)
//	}
//
//	handler := commands.NewCreatePartnerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create partner: %w", err)
//	}
//	fmt.Printf("Created partner with ID: %s", cmd.PartnerID())
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	name      string
	email     string
	phone     string
	areas     []string
	shift     partner.ShiftWindow

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to register a new partner.
// Automatically generates a unique ID for the partner.
func NewCreatePartnerCommand(
	name string,
	email string,
	phone string,
	areas []string,
	shift partner.ShiftWindow,
) (CreatePartnerCommand, error) {
	command := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(kernel.NewUUID()),
		command.setName(name),
		command.setEmail(email),
		command.setPhone(phone),
		command.setAreas(areas),
		command.setShift(shift),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePartnerCommandIsNotConstructed if validation fails.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the generated partner ID from the command.
func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner name from the command.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// Email returns the partner email from the command.
func (c CreatePartnerCommand) Email() string {
	return c.email
}

// Phone returns the partner phone from the command.
func (c CreatePartnerCommand) Phone() string {
	return c.phone
}

// Areas returns the covered delivery areas from the command.
func (c CreatePartnerCommand) Areas() []string {
	out := make([]string, len(c.areas))
	copy(out, c.areas)
	return out
}

// Shift returns the partner's shift window from the command.
func (c CreatePartnerCommand) Shift() partner.ShiftWindow {
	return c.shift
}

func (c *CreatePartnerCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.partnerID = id
	return nil
}

func (c *CreatePartnerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreatePartnerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreatePartnerCommand) setAreas(areas []string) error {
	if len(areas) == 0 {
		return ErrAreasAreRequired
	}

	c.areas = make([]string, len(areas))
	copy(c.areas, areas)
	return nil
}

func (c *CreatePartnerCommand) setShift(shift partner.ShiftWindow) error {
	if err := shift.Validate(); err != nil {
		return err
	}

	c.shift = shift
	return nil
}
