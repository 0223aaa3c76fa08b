// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and dispatch schedule.
type OrderDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderNumber  string      `gorm:"uniqueIndex"`
	Customer     CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Area         string      `gorm:"index"`
	Items        []byte      `gorm:"type:jsonb"`
	Status       string      `gorm:"type:varchar(16);index"`
	ScheduledFor time.Time   `gorm:"index"`
	AssignedTo   *uuid.UUID  `gorm:"type:uuid;index"`
	TotalAmount  float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded recipient details within the order table.
type CustomerDTO struct {
	Name    string
	Phone   string
	Address string
}

// itemDTO is the JSON shape of one line item inside the items column.
type itemDTO struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Line items are serialized into the jsonb items column.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var assignedTo *uuid.UUID
	if id := aggregate.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		Customer: CustomerDTO{
			Name:    aggregate.Customer().Name(),
			Phone:   aggregate.Customer().Phone(),
			Address: aggregate.Customer().Address(),
		},
		Area:         aggregate.Area(),
		Items:        rawItems,
		Status:       aggregate.Status().String(),
		ScheduledFor: aggregate.ScheduledFor(),
		AssignedTo:   assignedTo,
		TotalAmount:  aggregate.TotalAmount(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and partner assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		partnerID, partnerErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}

		assignedTo = &partnerID
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Phone, dto.Customer.Address)
	if err != nil {
		return nil, err
	}

	var rawItems []itemDTO
	if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, itemErr := order.NewItem(raw.Name, raw.Quantity, raw.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, dto.OrderNumber, customer, dto.Area, items, status,
		dto.ScheduledFor, assignedTo, dto.TotalAmount, dto.CreatedAt, dto.UpdatedAt,
	)
}
