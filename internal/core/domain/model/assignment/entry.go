package assignment

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewSuccessEntry or NewFailureEntry constructor")

// Entry is one immutable record in the append-only assignment ledger.
// Every dispatch attempt produces exactly one entry, successful or not.
// Entries are never updated or deleted after being recorded.
//
// Invariants:
//   - A success entry always names the partner the order was assigned to
//     and never carries a failure reason
//   - A failure entry never names a partner and always carries a reason
//     from the closed FailureReason set
type Entry struct {
	// id uniquely identifies the ledger entry
	id kernel.UUID
	// orderID is the order the attempt was made for
	orderID kernel.UUID
	// partnerID is the assigned partner, present only on success
	partnerID *kernel.UUID
	// status is the outcome of the attempt
	status Status
	// reason classifies the failure, present only on failure
	reason *FailureReason
	// timestamp is the moment the attempt was recorded
	timestamp time.Time
	// guard ensures the entry was properly constructed
	guard guard.ConstructorGuard
}

// NewSuccessEntry records a dispatch attempt that assigned the order to the
// given partner at the given moment.
func NewSuccessEntry(orderID, partnerID kernel.UUID, timestamp time.Time) (*Entry, error) {
	entry := &Entry{
		status: StatusSuccess,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(kernel.NewUUID()),
		entry.setOrderID(orderID),
		entry.setPartnerID(&partnerID),
		entry.setTimestamp(timestamp),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// NewFailureEntry records a dispatch attempt that left the order pending,
// classified by the given reason.
func NewFailureEntry(orderID kernel.UUID, reason FailureReason, timestamp time.Time) (*Entry, error) {
	entry := &Entry{
		status: StatusFailed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(kernel.NewUUID()),
		entry.setOrderID(orderID),
		entry.setReason(&reason),
		entry.setTimestamp(timestamp),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// RestoreEntry reconstructs a ledger entry from persistent storage.
// The partner and reason fields must be consistent with the stored status.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	partnerID *kernel.UUID,
	status Status,
	reason *FailureReason,
	timestamp time.Time,
) (*Entry, error) {
	entry := &Entry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setOrderID(orderID),
		entry.setStatus(status),
		entry.setTimestamp(timestamp),
	); err != nil {
		return nil, err
	}

	if status.IsEqual(StatusSuccess) {
		if partnerID == nil {
			return nil, errs.NewValueIsRequiredError("partner ID")
		}
		if reason != nil {
			return nil, errs.NewValueIsInvalidError("reason on success entry")
		}
		if err := entry.setPartnerID(partnerID); err != nil {
			return nil, err
		}
		return entry, nil
	}

	if partnerID != nil {
		return nil, errs.NewValueIsInvalidError("partner ID on failure entry")
	}
	if reason == nil {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if err := entry.setReason(reason); err != nil {
		return nil, err
	}

	return entry, nil
}

// ID returns the unique identifier of the ledger entry.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order the attempt was made for.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// PartnerID returns the assigned partner, or nil for a failure entry.
func (e *Entry) PartnerID() *kernel.UUID {
	if e.partnerID == nil {
		return nil
	}
	id := *e.partnerID
	return &id
}

// Status returns the outcome of the attempt.
func (e *Entry) Status() Status {
	return e.status
}

// IsSuccess reports whether the attempt assigned the order.
func (e *Entry) IsSuccess() bool {
	return e.status.IsEqual(StatusSuccess)
}

// Reason returns the failure classification, or nil for a success entry.
func (e *Entry) Reason() *FailureReason {
	if e.reason == nil {
		return nil
	}
	reason := *e.reason
	return &reason
}

// Timestamp returns the moment the attempt was recorded.
func (e *Entry) Timestamp() time.Time {
	return e.timestamp
}

// IsEqual compares two entries by their unique identifiers.
func (e *Entry) IsEqual(other *Entry) bool {
	if other == nil {
		return false
	}
	return e.id.IsEqual(other.id)
}

// Validate checks if the Entry was properly constructed using a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *Entry) setPartnerID(partnerID *kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	id := *partnerID
	e.partnerID = &id
	return nil
}

func (e *Entry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *Entry) setReason(reason *FailureReason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	r := *reason
	e.reason = &r
	return nil
}

func (e *Entry) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	e.timestamp = timestamp
	return nil
}
