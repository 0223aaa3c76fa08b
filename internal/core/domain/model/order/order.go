package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order in the system. It is the aggregate root that
// manages the order lifecycle from intake through dispatch to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and non-empty order number
//   - Must have a valid customer, a delivery area, and at least one item
//   - assignedTo is set if and only if status is Assigned, Picked, or Delivered
//   - Status transitions are monotonic and follow the defined workflow
//   - Can only be created through NewOrder or restored through RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable order reference
	orderNumber string

	// customer holds recipient contact details and the delivery address
	customer Customer

	// area is the delivery area tag used for partner coverage matching
	area string

	// items are the ordered line items (at least one)
	items []Item

	// status represents the current state in the order lifecycle
	status Status

	// scheduledFor is the requested delivery time, used for dispatch ordering
	scheduledFor time.Time

	// assignedTo is the dispatched partner's ID (nil while pending)
	assignedTo *kernel.UUID

	// totalAmount is the order value, the sum of all item subtotals
	totalAmount float64

	// createdAt and updatedAt are audit timestamps
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts in
// Pending status with no partner assigned; totalAmount is derived from the items.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - orderNumber: Human-readable reference (must be non-empty)
//   - customer: Recipient details (must be constructed via NewCustomer)
//   - area: Delivery area tag (must be non-empty)
//   - items: Ordered line items (at least one, each constructed via NewItem)
//   - scheduledFor: Requested delivery time
//   - now: Creation timestamp used for createdAt/updatedAt
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	area string,
	items []Item,
	scheduledFor time.Time,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		scheduledFor:  scheduledFor,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomer(customer),
		order.setArea(area),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range order.items {
		order.totalAmount += item.Subtotal()
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, this constructor restores an order to its previously
// persisted state, including status, partner assignment, stored total, and
// audit timestamps. The status/assignee consistency invariant is revalidated
// so corrupt rows cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	area string,
	items []Item,
	status Status,
	scheduledFor time.Time,
	assignedTo *kernel.UUID,
	totalAmount float64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		scheduledFor:  scheduledFor,
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomer(customer),
		order.setArea(area),
		order.setItems(items),
		order.setStatus(status),
		order.setAssignedTo(assignedTo),
	); err != nil {
		return nil, err
	}

	if err := order.status.ValidateCanHaveAssignee(order.assignedTo != nil); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order reference.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Customer returns the recipient details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Area returns the delivery area tag.
func (o *Order) Area() string {
	return o.area
}

// Items returns the ordered line items.
// The returned slice is a copy to prevent external modification.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ScheduledFor returns the requested delivery time.
func (o *Order) ScheduledFor() time.Time {
	return o.scheduledFor
}

// AssignedTo returns the dispatched partner's ID.
// Returns nil if the order is still pending.
func (o *Order) AssignedTo() *kernel.UUID {
	return o.assignedTo
}

// TotalAmount returns the order value.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign dispatches the order to a delivery partner.
//
// This method enforces the following business rules:
//   - The partner ID must be valid
//   - The order must be in Pending status (no double-assignment)
//
// On success the status becomes Assigned, assignedTo is set, and
// updatedAt is advanced to now.
func (o *Order) Assign(partnerID kernel.UUID, now time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedTo = &partnerID
	o.updatedAt = now
	return nil
}

// Progress moves the order forward along the delivery workflow
// (Assigned -> Picked -> Delivered). This is the mutation used by the
// external status-update operation; regressions and transitions out of
// Pending or Delivered are rejected.
func (o *Order) Progress(next Status, now time.Time) error {
	newStatus, err := o.status.ProgressTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the human-readable reference.
func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = orderNumber
	return nil
}

// setCustomer validates and sets the recipient details.
func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

// setArea validates and sets the delivery area tag.
func (o *Order) setArea(area string) error {
	if area == "" {
		return errs.NewValueIsRequiredError("area")
	}
	o.area = area
	return nil
}

// setItems validates and sets the line items. At least one item is required.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setAssignedTo validates and sets the partner reference during restoration.
func (o *Order) setAssignedTo(assignedTo *kernel.UUID) error {
	if assignedTo == nil {
		return nil
	}
	if err := assignedTo.Validate(); err != nil {
		return err
	}
	id := *assignedTo
	o.assignedTo = &id
	return nil
}
