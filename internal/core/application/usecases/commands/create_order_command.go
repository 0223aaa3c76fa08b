package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired  = errors.New("order number is required")
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrAreaIsRequired         = errors.New("area is required")
	ErrItemsAreRequired       = errors.New("at least one item is required")
	ErrScheduledForIsRequired = errors.New("scheduled delivery time is required")
)

// OrderItemData carries one line item of an incoming order.
type OrderItemData struct {
	Name     string
	Quantity int
	Price    float64
}

// CreateOrderCommand represents a request to register a new delivery order.
// The order enters the system in pending status and becomes a candidate for
// the next dispatch run.
//
// Example:
//
//	items := []commands.OrderItemData{{Name: "Masala Dosa", Quantity: 2, Price: 120}}
//	cmd, err := commands.NewCreateOrderCommand("ORD-1001", "Asha Rao", "+91-98200-11111",
//	    "14 Hill Road", "Bandra", items, scheduledFor)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := commands.NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Created order with ID: %s", cmd.OrderID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderNumber     string
	customerName    string
	customerPhone   string
	customerAddress string
	area            string
	items           []OrderItemData
	scheduledFor    time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Automatically generates a unique ID for the order.
func NewCreateOrderCommand(
	orderNumber string,
	customerName string,
	customerPhone string,
	customerAddress string,
	area string,
	items []OrderItemData,
	scheduledFor time.Time,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		customerPhone:   customerPhone,
		customerAddress: customerAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setOrderNumber(orderNumber),
		command.setCustomerName(customerName),
		command.setArea(area),
		command.setItems(items),
		command.setScheduledFor(scheduledFor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID from the command.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-readable reference from the command.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerName returns the recipient name from the command.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the recipient phone from the command.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerAddress returns the delivery address from the command.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// Area returns the delivery area tag from the command.
func (c CreateOrderCommand) Area() string {
	return c.area
}

// Items returns the line items from the command.
func (c CreateOrderCommand) Items() []OrderItemData {
	out := make([]OrderItemData, len(c.items))
	copy(out, c.items)
	return out
}

// ScheduledFor returns the requested delivery time from the command.
func (c CreateOrderCommand) ScheduledFor() time.Time {
	return c.scheduledFor
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setArea(area string) error {
	if area == "" {
		return ErrAreaIsRequired
	}

	c.area = area
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemData) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = make([]OrderItemData, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setScheduledFor(scheduledFor time.Time) error {
	if scheduledFor.IsZero() {
		return ErrScheduledForIsRequired
	}

	c.scheduledFor = scheduledFor
	return nil
}
