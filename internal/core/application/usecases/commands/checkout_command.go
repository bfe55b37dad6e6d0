package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCartIsEmpty        = errors.New("cart must contain at least one item")
	ErrTotalCostIsInvalid = errors.New("total cost must not be negative")
)

// CheckoutCommand represents a request to place a marketplace order.
// Carries the client's contact details, the validated cart lines and the
// client-submitted total.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(clientDetails, cartLines, totalCost)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, products, notifier, logger)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed", placed.ID())
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	clientDetails order.ClientDetails
	cartItems     []order.CartLine
	totalCost     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place an order.
// Validates that the client details are complete, the cart is not empty and
// the total is not negative. Returns the full list of violations joined.
func NewCheckoutCommand(
	clientDetails order.ClientDetails,
	cartItems []order.CartLine,
	totalCost decimal.Decimal,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setClientDetails(clientDetails),
		checkoutCommand.setCartItems(cartItems),
		checkoutCommand.setTotalCost(totalCost),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// ClientDetails returns the customer's contact and delivery details.
func (c CheckoutCommand) ClientDetails() order.ClientDetails {
	return c.clientDetails
}

// CartItems returns the cart lines in the order the client submitted them.
func (c CheckoutCommand) CartItems() []order.CartLine {
	return c.cartItems
}

// TotalCost returns the client-submitted order total.
func (c CheckoutCommand) TotalCost() decimal.Decimal {
	return c.totalCost
}

// Slugs returns the distinct product slugs across the cart, in first-seen
// order.
func (c CheckoutCommand) Slugs() []string {
	seen := make(map[string]struct{}, len(c.cartItems))
	slugs := make([]string, 0, len(c.cartItems))
	for _, item := range c.cartItems {
		if _, ok := seen[item.Slug()]; ok {
			continue
		}
		seen[item.Slug()] = struct{}{}
		slugs = append(slugs, item.Slug())
	}
	return slugs
}

func (c *CheckoutCommand) setClientDetails(clientDetails order.ClientDetails) error {
	if err := clientDetails.Validate(); err != nil {
		return err
	}

	c.clientDetails = clientDetails
	return nil
}

func (c *CheckoutCommand) setCartItems(cartItems []order.CartLine) error {
	if len(cartItems) == 0 {
		return ErrCartIsEmpty
	}

	c.cartItems = cartItems
	return nil
}

func (c *CheckoutCommand) setTotalCost(totalCost decimal.Decimal) error {
	if totalCost.IsNegative() {
		return ErrTotalCostIsInvalid
	}

	c.totalCost = totalCost
	return nil
}
