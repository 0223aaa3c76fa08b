// Package partnerrepo provides data transfer objects and mapping functions for partner persistence.
// This package implements the repository pattern for the partner domain aggregate, handling
// the conversion between domain entities and database representations.
package partnerrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PartnerDTO represents the database structure for persisting partner aggregates.
// The covered areas live in a native Postgres text array; the shift window is
// stored as its two "HH:MM" boundaries.
type PartnerDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name            string         `gorm:"index"`
	Email           string         `gorm:"uniqueIndex"`
	Phone           string
	Status          string         `gorm:"type:varchar(16);index"`
	CurrentLoad     int
	Areas           pq.StringArray `gorm:"type:text[]"`
	ShiftStart      string         `gorm:"type:varchar(5)"`
	ShiftEnd        string         `gorm:"type:varchar(5)"`
	Rating          float64
	CompletedOrders int
	CancelledOrders int
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "partners".
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(aggregate *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		Status:          aggregate.Status().String(),
		CurrentLoad:     aggregate.CurrentLoad(),
		Areas:           aggregate.Areas(),
		ShiftStart:      aggregate.Shift().Start().String(),
		ShiftEnd:        aggregate.Shift().End().String(),
		Rating:          aggregate.Performance().Rating(),
		CompletedOrders: aggregate.Performance().CompletedOrders(),
		CancelledOrders: aggregate.Performance().CancelledOrders(),
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
// Reconstructs the complete aggregate including load and performance using RestorePartner.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := partner.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	shift, err := partner.ParseShiftWindow(dto.ShiftStart, dto.ShiftEnd)
	if err != nil {
		return nil, err
	}

	performance, err := partner.NewPerformance(dto.Rating, dto.CompletedOrders, dto.CancelledOrders)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(
		id, dto.Name, dto.Email, dto.Phone, status, dto.CurrentLoad,
		dto.Areas, shift, performance,
	)
}
