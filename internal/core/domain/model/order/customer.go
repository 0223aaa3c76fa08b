package order

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a value object holding the recipient details of an order:
// who the delivery is for and where it goes. It is immutable after construction.
type Customer struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	address string
	guard   guard.ConstructorGuard
}

// NewCustomer creates a Customer with the given contact details.
// Name and address are required; phone is required because partners
// call the customer on arrival.
func NewCustomer(name, phone, address string) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
		customer.setAddress(address),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the delivery street address.
func (c Customer) Address() string {
	return c.address
}

// Validate checks if the Customer was properly constructed.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	c.address = address
	return nil
}
