// Package partner provides domain entities and business logic for delivery
// partner management. It implements the Partner aggregate root with
// availability, coverage, and concurrent-load handling.
//
// The package includes:
//   - Partner: The aggregate root that manages identity, coverage, shift, and load
//   - ShiftWindow: A value object for daily working hours, including windows that wrap midnight
//   - Performance: A value object for rating and delivery history figures
//   - Status: The active/inactive availability state
//
// Key business rules:
//   - A partner's concurrent load never exceeds MaxConcurrentLoad and never goes negative
//   - Only active partners within their shift window and covering the order's area are dispatchable
//   - A delivered order releases its load slot and counts toward the completion history
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package partner
