// Package assignmentrepo provides data transfer objects and mapping functions
// for the append-only dispatch ledger. Entries are written once and never
// updated; the auto-incrementing sequence column preserves insertion order.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting ledger entries.
// Seq is the insertion-order key; ID is the entry's domain identity.
type EntryDTO struct {
	Seq       int64      `gorm:"primaryKey;autoIncrement"`
	ID        uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index"`
	PartnerID *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"type:varchar(16)"`
	Reason    *string    `gorm:"type:varchar(32)"`
	Timestamp time.Time  `gorm:"index"`
}

// TableName specifies the database table name for ledger entries.
// Overrides GORM's default naming convention to use "assignments".
func (EntryDTO) TableName() string {
	return "assignments"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *assignment.Entry) EntryDTO {
	var partnerID *uuid.UUID
	if id := entry.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	var reason *string
	if r := entry.Reason(); r != nil {
		name := r.String()
		reason = &name
	}

	return EntryDTO{
		ID:        entry.ID().Bytes(),
		OrderID:   entry.OrderID().Bytes(),
		PartnerID: partnerID,
		Status:    entry.Status().String(),
		Reason:    reason,
		Timestamp: entry.Timestamp(),
	}
}

// toDomain converts a database DTO to a ledger entry using RestoreEntry.
func toDomain(dto EntryDTO) (*assignment.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		converted, convErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if convErr != nil {
			return nil, convErr
		}
		partnerID = &converted
	}

	status, err := assignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var reason *assignment.FailureReason
	if dto.Reason != nil {
		converted, convErr := assignment.FailureReasonFromString(*dto.Reason)
		if convErr != nil {
			return nil, convErr
		}
		reason = &converted
	}

	return assignment.RestoreEntry(id, orderID, partnerID, status, reason, dto.Timestamp)
}
