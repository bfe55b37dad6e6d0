// Package queries contains read-only operations over the order store.
// Queries bypass the domain model and read projection rows directly,
// following the CQRS split: commands go through aggregates, queries
// go through SQL.
package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
		"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery constructor",
	)
	ErrStoreIDIsRequired = errors.New("store id is required")
)

// GetVendorOrdersQuery retrieves all orders that include at least one item
// sold by the given store.
//
// Example:
//
//	query, err := NewGetVendorOrdersQuery("S1")
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetVendorOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list vendor orders: %w", err)
//	}
//	fmt.Printf("Store S1 appears in %d orders\n", len(orders))
type GetVendorOrdersQuery struct {
	storeID string

	guard guard.ConstructorGuard
}

// NewGetVendorOrdersQuery creates a query for one store's orders.
// The store ID must be non-empty.
func NewGetVendorOrdersQuery(storeID string) (GetVendorOrdersQuery, error) {
	if storeID == "" {
		return GetVendorOrdersQuery{}, ErrStoreIDIsRequired
	}

	return GetVendorOrdersQuery{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVendorOrdersQueryIsNotConstructed if validation fails.
func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

// StoreID returns the store whose orders are requested.
func (q GetVendorOrdersQuery) StoreID() string {
	return q.storeID
}
