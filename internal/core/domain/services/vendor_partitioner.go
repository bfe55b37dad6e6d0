package services

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/order"
)

// ErrProductsUnavailable is returned when one or more cart lines reference
// slugs that no longer exist in the catalog.
var ErrProductsUnavailable = errors.New("products unavailable")

// ProductsUnavailableError lists the cart lines that could not be resolved
// against the catalog, by their client-submitted product names in cart order.
type ProductsUnavailableError struct {
	MissingNames []string
}

func NewProductsUnavailableError(missingNames []string) *ProductsUnavailableError {
	return &ProductsUnavailableError{MissingNames: missingNames}
}

func (e *ProductsUnavailableError) Error() string {
	return fmt.Sprintf("%s: the following products are not available: %s",
		ErrProductsUnavailable, strings.Join(e.MissingNames, ", "))
}

func (e *ProductsUnavailableError) Unwrap() error {
	return ErrProductsUnavailable
}

// VendorPartitioner is a domain service that groups validated cart lines by
// owning vendor for order persistence and notification routing.
//
// Business rules:
//   - One vendor group per cart line, in cart order, never merged
//   - Product and store names come from the catalog record, not client input
//   - A single missing line fails the whole checkout; there is no partial
//     fulfillment
type VendorPartitioner struct{}

// NewVendorPartitioner creates a new VendorPartitioner instance.
func NewVendorPartitioner() VendorPartitioner {
	return VendorPartitioner{}
}

// Partition emits one VendorGroup per cart line, preserving cart order.
//
// If any line's slug is absent from the lookup result, Partition returns a
// ProductsUnavailableError listing the human-readable product names of every
// missing line, as submitted by the client.
func (p VendorPartitioner) Partition(lines []order.CartLine, lookup catalog.Lookup) ([]order.VendorGroup, error) {
	var missingNames []string
	for _, line := range lines {
		if _, ok := lookup[line.Slug()]; !ok {
			missingNames = append(missingNames, line.ProductName())
		}
	}
	if len(missingNames) > 0 {
		return nil, NewProductsUnavailableError(missingNames)
	}

	groups := make([]order.VendorGroup, 0, len(lines))
	for _, line := range lines {
		record := lookup[line.Slug()]
		group, err := order.NewVendorGroup(record.StoreID, record.StoreName, record.ProductName, record.VendorEmail)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, nil
}
