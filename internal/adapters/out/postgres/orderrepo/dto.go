// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The created_at index serves the daily order listing.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Notes     string
	CreatedAt time.Time      `gorm:"index"`
	Items     []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item grouping of an order. Position keeps
// the ledger order; the product fields are a snapshot taken at composition
// time, so later catalog changes never rewrite history.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid"`
	Title      string
	PriceCents int64
	Quantity   int
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Groupings keep their ledger position.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for position, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			Position:   position,
			ProductID:  item.Product().ID().Bytes(),
			Title:      item.Product().Title(),
			PriceCents: item.Product().Price().Cents(),
			Quantity:   item.Quantity(),
		})
	}

	return OrderDTO{
		ID:    aggregate.ID().Bytes(),
		Notes: aggregate.Notes(),
		Items: itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Items are expected to be loaded in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}

		price, priceErr := kernel.NewPrice(itemDTO.PriceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		product, productErr := menu.NewProduct(productID, itemDTO.Title, price)
		if productErr != nil {
			return nil, productErr
		}

		item, itemErr := order.NewLineItem(product, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, items, dto.Notes)
}
