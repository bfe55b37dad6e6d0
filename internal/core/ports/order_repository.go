package ports

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// ErrOrderIDTaken is returned by Add when the generated order identifier
// collides with an already persisted order. Callers regenerate the identifier
// and retry a bounded number of times.
var ErrOrderIDTaken = errors.New("order id already taken")

// OrderRepository defines the persistence contract for order aggregates.
// Orders are write-once: there is no update or delete operation.
type OrderRepository interface {
	// Add persists a new order as a single row with its snapshots serialized.
	// Returns ErrOrderIDTaken if the order identifier is already in use.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its human-readable identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
