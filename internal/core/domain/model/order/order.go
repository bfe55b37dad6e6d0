package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a completed checkout. It is created exactly
// once per successful checkout and is immutable thereafter; no update or
// delete path exists.
//
// Order maintains these invariants:
//   - The identifier matches the two-letter four-digit pattern
//   - The cart holds at least one line
//   - Exactly one vendor group exists per cart line, in cart order
//   - The total cost is the caller-supplied value, never recomputed
//   - The order date is server-assigned at creation
type Order struct {
	id            kernel.OrderID
	clientDetails ClientDetails
	cartItems     []CartLine
	totalCost     decimal.Decimal
	vendorGroups  []VendorGroup
	orderDate     time.Time

	isConstructed bool
}

// NewOrder assembles a new order from validated checkout state and stamps it
// with the current server time. The vendor groups must line up one-to-one with
// the cart lines.
func NewOrder(
	id kernel.OrderID,
	clientDetails ClientDetails,
	cartItems []CartLine,
	totalCost decimal.Decimal,
	vendorGroups []VendorGroup,
) (*Order, error) {
	return newOrder(id, clientDetails, cartItems, totalCost, vendorGroups, time.Now().UTC())
}

// RestoreOrder reconstructs an order from persistence, including its stored
// creation timestamp. Used by repository implementations only.
func RestoreOrder(
	id kernel.OrderID,
	clientDetails ClientDetails,
	cartItems []CartLine,
	totalCost decimal.Decimal,
	vendorGroups []VendorGroup,
	orderDate time.Time,
) (*Order, error) {
	if orderDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("orderDate")
	}
	return newOrder(id, clientDetails, cartItems, totalCost, vendorGroups, orderDate)
}

func newOrder(
	id kernel.OrderID,
	clientDetails ClientDetails,
	cartItems []CartLine,
	totalCost decimal.Decimal,
	vendorGroups []VendorGroup,
	orderDate time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := clientDetails.Validate(); err != nil {
		return nil, err
	}

	if len(cartItems) == 0 {
		return nil, errs.NewValueIsRequiredError("cartItems")
	}

	if len(vendorGroups) != len(cartItems) {
		return nil, errs.NewValueIsInvalidErrorWithCause("vendorDetails",
			fmt.Errorf("%d vendor groups for %d cart lines", len(vendorGroups), len(cartItems)))
	}

	if totalCost.IsNegative() {
		return nil, errs.NewValueIsInvalidError("totalCost")
	}

	return &Order{
		id:            id,
		clientDetails: clientDetails,
		cartItems:     append([]CartLine(nil), cartItems...),
		totalCost:     totalCost,
		vendorGroups:  append([]VendorGroup(nil), vendorGroups...),
		orderDate:     orderDate,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method, preventing use of directly instantiated zero values.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the human-readable order identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// ClientDetails returns the customer contact snapshot.
func (o *Order) ClientDetails() ClientDetails {
	return o.clientDetails
}

// CartItems returns the cart lines exactly as submitted, in cart order.
func (o *Order) CartItems() []CartLine {
	return append([]CartLine(nil), o.cartItems...)
}

// TotalCost returns the caller-supplied order total.
func (o *Order) TotalCost() decimal.Decimal {
	return o.totalCost
}

// VendorGroups returns one group per cart line, in cart order.
func (o *Order) VendorGroups() []VendorGroup {
	return append([]VendorGroup(nil), o.vendorGroups...)
}

// OrderDate returns the server-assigned creation timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}
