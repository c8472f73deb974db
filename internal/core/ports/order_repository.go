package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving and deleting orders.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid, carry an identifier and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites an existing order aggregate, replacing its
	// groupings and notes wholesale.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its groupings in ledger order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its groupings from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
