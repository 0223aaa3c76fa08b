// Package order provides domain entities and business logic for delivery
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, recipient, items, and lifecycle
//   - Status: A state machine that enforces valid, monotonic status transitions
//   - Customer, Item: Value objects for recipient details and order lines
//
// Key business rules:
//   - Orders must have a valid unique identifier, customer, area, and at least one item
//   - Order status follows a defined workflow: pending -> assigned -> picked -> delivered
//   - Only a pending order can be assigned to a partner; assignment never repeats
//   - assignedTo is set if and only if the order has been dispatched
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
